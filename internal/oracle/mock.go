package oracle

import (
	"context"
	"sync"
)

// MockVerdict is a canned response for the MockClient.
type MockVerdict struct {
	Result *Result
	Err    error
}

// MockClient is a deterministic Client for testing.
// It returns canned verdicts in FIFO order and records all requests.
type MockClient struct {
	mu       sync.Mutex
	verdicts []MockVerdict
	Calls    []Request
}

// NewMockClient creates a MockClient with the given canned verdicts.
func NewMockClient(verdicts ...MockVerdict) *MockClient {
	return &MockClient{verdicts: verdicts}
}

// Grade returns the next canned verdict or ErrOracleUnavailable if the
// queue is empty.
func (m *MockClient) Grade(_ context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.verdicts) == 0 {
		return nil, &ErrOracleUnavailable{Err: nil}
	}

	v := m.verdicts[0]
	m.verdicts = m.verdicts[1:]

	if v.Err != nil {
		return nil, v.Err
	}

	result := *v.Result
	if result.Model == "" {
		result.Model = "mock"
	}
	return &result, nil
}

// ModelID returns "mock".
func (m *MockClient) ModelID() string {
	return "mock"
}

// AddVerdict appends a canned verdict to the queue.
func (m *MockClient) AddVerdict(v MockVerdict) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verdicts = append(m.verdicts, v)
}

// CallCount returns the number of Grade calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
