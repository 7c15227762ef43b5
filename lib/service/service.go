package service

import (
	"github.com/ValentinKolb/hKV/lib/command"
	"github.com/ValentinKolb/hKV/lib/store"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("service")

// --------------------------------------------------------------------------
// Hook Types
// --------------------------------------------------------------------------

// ReceivedHook observes an incoming request before it is dispatched.
// Every hook receives its own deep copy, changes to it are discarded.
type ReceivedHook func(req command.CommandRequest)

// ExecutedHook observes the response produced by dispatch.
// Every hook receives its own deep copy, changes to it are discarded.
type ExecutedHook func(resp command.CommandResponse)

// BeforeSendHook may modify the response before it is returned. Each hook sees the
// modifications of the hooks registered before it.
type BeforeSendHook func(resp *command.CommandResponse)

// AfterSendHook runs once the response is final.
type AfterSendHook func()

// --------------------------------------------------------------------------
// Service
// --------------------------------------------------------------------------

// serviceInner is shared by all copies of a Service and never modified after Build
type serviceInner struct {
	store        store.IStore
	onReceived   []ReceivedHook
	onExecuted   []ExecutedHook
	onBeforeSend []BeforeSendHook
	onAfterSend  []AfterSendHook
}

// Service wraps one store and four ordered hook lists.
//
// A Service is a small value that can be copied freely; all copies share the same store
// and the same hooks.
//
// Thread-safety: Execute can be called from any number of goroutines. The hook lists are
// immutable after construction, concurrency of the storage calls is handled by the store.
type Service struct {
	inner *serviceInner
}

// New creates a service without hooks.
func New(s store.IStore) Service {
	return NewBuilder(s).Build()
}

// Store returns the store of the service.
func (s Service) Store() store.IStore {
	return s.inner.store
}

// Execute processes a single request.
//
// The order is fixed: on-received hooks, dispatch, on-executed hooks, on-before-send hooks.
// After the response is final (right before Execute returns it) the on-after-send hooks
// run. Hooks of one list run in registration order.
func (s Service) Execute(req command.CommandRequest) command.CommandResponse {
	Logger.Debugf("Got request: %s", req)
	for _, f := range s.inner.onReceived {
		f(req.Clone())
	}

	resp := command.Dispatch(req, s.inner.store)
	Logger.Debugf("Executed response: %s", resp)
	for _, f := range s.inner.onExecuted {
		f(resp.Clone())
	}

	for _, f := range s.inner.onBeforeSend {
		f(&resp)
	}
	if len(s.inner.onBeforeSend) > 0 {
		Logger.Debugf("Modified response: %s", resp)
	}

	defer func() {
		for _, f := range s.inner.onAfterSend {
			f()
		}
	}()
	return resp
}

// --------------------------------------------------------------------------
// Builder
// --------------------------------------------------------------------------

// Builder collects hooks for a Service. Hooks are appended in the order the methods are
// called. A Builder is not safe for concurrent use; the Service it builds is.
type Builder struct {
	inner serviceInner
}

// NewBuilder creates a builder for a service backed by s.
func NewBuilder(s store.IStore) *Builder {
	return &Builder{inner: serviceInner{store: s}}
}

// OnReceived appends hooks that observe incoming requests.
func (b *Builder) OnReceived(f ...ReceivedHook) *Builder {
	b.inner.onReceived = append(b.inner.onReceived, f...)
	return b
}

// OnExecuted appends hooks that observe dispatch results.
func (b *Builder) OnExecuted(f ...ExecutedHook) *Builder {
	b.inner.onExecuted = append(b.inner.onExecuted, f...)
	return b
}

// OnBeforeSend appends hooks that may modify the response.
func (b *Builder) OnBeforeSend(f ...BeforeSendHook) *Builder {
	b.inner.onBeforeSend = append(b.inner.onBeforeSend, f...)
	return b
}

// OnAfterSend appends hooks that run after the response is final.
func (b *Builder) OnAfterSend(f ...AfterSendHook) *Builder {
	b.inner.onAfterSend = append(b.inner.onAfterSend, f...)
	return b
}

// Use lets a Plugin register its hooks.
func (b *Builder) Use(p Plugin) *Builder {
	p.Register(b)
	return b
}

// Build creates the service. The hook lists are copied, so later calls on the builder do
// not affect services that were already built.
func (b *Builder) Build() Service {
	inner := &serviceInner{
		store:        b.inner.store,
		onReceived:   append([]ReceivedHook(nil), b.inner.onReceived...),
		onExecuted:   append([]ExecutedHook(nil), b.inner.onExecuted...),
		onBeforeSend: append([]BeforeSendHook(nil), b.inner.onBeforeSend...),
		onAfterSend:  append([]AfterSendHook(nil), b.inner.onAfterSend...),
	}
	return Service{inner: inner}
}
