package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Varun9213/nextflow-chat-bot/internal/domain"
)

// MockClient synthesizes replies without touching any provider. It is
// deterministic and never fails, so the degraded-reply path is unreachable
// in mock mode.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Complete(_ context.Context, req domain.CompletionRequest) (string, error) {
	reply := fmt.Sprintf("(MOCK) I received: %q. %s", req.UserMessage, req.RetrievalNote)
	if strings.Contains(strings.ToLower(req.UserMessage), "version") {
		reply += " Example: check `nextflow -v` locally."
	}
	return reply, nil
}
