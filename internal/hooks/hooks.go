package hooks

import "github.com/QuadTriangle/wsintegration/internal/types"

// SessionHook observes the lifecycle of the websocket session.
type SessionHook interface {
	OnConnect(url string, status int)
	OnFrame(kind types.Kind, size int)
	OnDisconnect(err error)
}

// NoOpSessionHook is a convenience embed for hooks that only need one method.
type NoOpSessionHook struct{}

func (NoOpSessionHook) OnConnect(_ string, _ int)   {}
func (NoOpSessionHook) OnFrame(_ types.Kind, _ int) {}
func (NoOpSessionHook) OnDisconnect(_ error)        {}

// Pipeline runs registered hooks in order. Zero-value is ready to use,
// and a nil *Pipeline silently drops every notification.
type Pipeline struct {
	hooks []SessionHook
}

func (p *Pipeline) AddHook(h SessionHook) { p.hooks = append(p.hooks, h) }

func (p *Pipeline) NotifyConnect(url string, status int) {
	if p == nil {
		return
	}
	for _, h := range p.hooks {
		h.OnConnect(url, status)
	}
}

func (p *Pipeline) NotifyFrame(kind types.Kind, size int) {
	if p == nil {
		return
	}
	for _, h := range p.hooks {
		h.OnFrame(kind, size)
	}
}

func (p *Pipeline) NotifyDisconnect(err error) {
	if p == nil {
		return
	}
	for _, h := range p.hooks {
		h.OnDisconnect(err)
	}
}
