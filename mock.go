package questionbank

import (
	"context"
	"sync"
)

// MockCall records one Complete invocation made against a MockClient.
type MockCall struct {
	Model  string
	Prompt string
}

// MockResponse is a canned response for the MockClient.
type MockResponse struct {
	Content string
	Err     error
}

// MockClient is a deterministic Client for testing. It returns canned
// responses in FIFO order and records all calls.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []MockCall
}

// NewMockClient creates a MockClient with the given canned responses.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

// Complete returns the next canned response or ErrProviderUnavailable
// if the queue is empty.
func (m *MockClient) Complete(_ context.Context, model, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Model: model, Prompt: prompt})

	if len(m.responses) == 0 {
		return "", &ErrProviderUnavailable{}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Content, nil
}

// AddResponse appends a canned response to the queue.
func (m *MockClient) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Complete calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
