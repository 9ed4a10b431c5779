package stats

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/QuadTriangle/wsintegration/internal/hooks"
	"github.com/QuadTriangle/wsintegration/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluginThroughPipeline(t *testing.T) {
	pl := New()
	p := &hooks.Pipeline{}
	p.AddHook(pl)

	p.NotifyConnect("wss://example.org/app", 101)
	p.NotifyFrame(types.KindText, 5)
	p.NotifyFrame(types.KindText, 7)
	p.NotifyFrame(types.KindBinary, 4)
	p.NotifyFrame(types.KindPing, 0)
	p.NotifyDisconnect(errors.New("eof"))

	snap := pl.Store().Snapshot()
	assert.Equal(t, "wss://example.org/app", snap.URL)
	assert.Equal(t, 101, snap.Status)
	assert.False(t, snap.ConnectedAt.IsZero())
	assert.Equal(t, 4, snap.Total())
	assert.Equal(t, 2, snap.Frames[types.KindText])
	assert.Equal(t, 12, snap.Bytes[types.KindText])
	assert.Equal(t, 1, snap.Frames[types.KindBinary])
	require.Error(t, snap.Err)
	assert.Equal(t, "eof", snap.Err.Error())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.RecordFrame(types.KindText, 1)

	snap := s.Snapshot()
	snap.Frames[types.KindText] = 100

	assert.Equal(t, 1, s.Snapshot().Frames[types.KindText])
}

func TestSummary(t *testing.T) {
	s := NewStore()
	assert.Equal(t, "frames=0", s.Summary())

	s.RecordFrame(types.KindText, 10)
	s.RecordFrame(types.KindBinary, 4)
	s.RecordConnect("ws://x/app", 101)

	sum := s.Summary()
	assert.True(t, strings.HasPrefix(sum, "frames=2 text=1/10B binary=1/4B uptime="), sum)
}

func TestStoreConcurrentRecord(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RecordFrame(types.KindPong, 2)
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, 50, snap.Frames[types.KindPong])
	assert.Equal(t, 100, snap.Bytes[types.KindPong])
}
