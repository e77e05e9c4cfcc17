package test

import (
	"context"
	"sync"

	"github.com/vkravets/chairshop/internal/adapter/novaposhta"
)

// CarrierCall records one request made against the carrier stub.
type CarrierCall struct {
	Method string
	Props  map[string]string
}

// CarrierStub replaces the Nova Poshta client in usecase tests.
type CarrierStub struct {
	CallFn func(ctx context.Context, method string, props map[string]string) (*novaposhta.Response, error)

	mu    sync.Mutex
	calls []CarrierCall
}

// Call records the invocation and delegates to CallFn.
func (s *CarrierStub) Call(ctx context.Context, method string, props map[string]string) (*novaposhta.Response, error) {
	s.mu.Lock()
	s.calls = append(s.calls, CarrierCall{Method: method, Props: props})
	s.mu.Unlock()

	if s.CallFn != nil {
		return s.CallFn(ctx, method, props)
	}
	return &novaposhta.Response{Success: true}, nil
}

// Calls returns a copy of the recorded invocations.
func (s *CarrierStub) Calls() []CarrierCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CarrierCall, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns how many requests the stub has seen.
func (s *CarrierStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
