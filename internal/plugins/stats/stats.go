package stats

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/QuadTriangle/wsintegration/internal/hooks"
	"github.com/QuadTriangle/wsintegration/internal/types"
)

// Stats is a point-in-time copy of what the store has seen.
type Stats struct {
	URL         string
	Status      int
	ConnectedAt time.Time
	Frames      map[types.Kind]int
	Bytes       map[types.Kind]int
	Err         error
}

// Total returns the number of frames received of every kind.
func (s Stats) Total() int {
	n := 0
	for _, c := range s.Frames {
		n += c
	}
	return n
}

// Store is the in-memory stats store. Safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	url         string
	status      int
	connectedAt time.Time
	frames      map[types.Kind]int
	bytes       map[types.Kind]int
	err         error
}

func NewStore() *Store {
	return &Store{
		frames: make(map[types.Kind]int),
		bytes:  make(map[types.Kind]int),
	}
}

func (s *Store) RecordConnect(url string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.url = url
	s.status = status
	s.connectedAt = time.Now()
}

func (s *Store) RecordFrame(kind types.Kind, size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames[kind]++
	s.bytes[kind] += size
}

func (s *Store) RecordDisconnect(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Snapshot returns a copy of the collected stats.
func (s *Store) Snapshot() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := Stats{
		URL:         s.url,
		Status:      s.status,
		ConnectedAt: s.connectedAt,
		Frames:      make(map[types.Kind]int, len(s.frames)),
		Bytes:       make(map[types.Kind]int, len(s.bytes)),
		Err:         s.err,
	}
	for k, v := range s.frames {
		out.Frames[k] = v
	}
	for k, v := range s.bytes {
		out.Bytes[k] = v
	}
	return out
}

// Summary renders the snapshot on a single line, e.g.
// "frames=3 text=2/10B binary=1/4B uptime=1.5s".
func (s *Store) Summary() string {
	snap := s.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "frames=%d", snap.Total())
	for _, k := range types.Kinds {
		if n := snap.Frames[k]; n > 0 {
			fmt.Fprintf(&b, " %s=%d/%dB", k, n, snap.Bytes[k])
		}
	}
	if !snap.ConnectedAt.IsZero() {
		fmt.Fprintf(&b, " uptime=%s", time.Since(snap.ConnectedAt).Round(time.Millisecond))
	}
	return b.String()
}

// --- Plugin wiring ---

// Plugin feeds session events into a Store.
type Plugin struct {
	hooks.NoOpSessionHook
	store *Store
}

func New() *Plugin {
	return &Plugin{store: NewStore()}
}

func (p *Plugin) Name() string { return "stats" }

// Store returns the underlying store for external consumers.
func (p *Plugin) Store() *Store { return p.store }

func (p *Plugin) OnConnect(url string, status int)  { p.store.RecordConnect(url, status) }
func (p *Plugin) OnFrame(kind types.Kind, size int) { p.store.RecordFrame(kind, size) }
func (p *Plugin) OnDisconnect(err error)            { p.store.RecordDisconnect(err) }
