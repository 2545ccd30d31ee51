package llm_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Varun9213/nextflow-chat-bot/internal/adapters/llm"
	"github.com/Varun9213/nextflow-chat-bot/internal/domain"
)

func TestMockReplyFormat(t *testing.T) {
	client := llm.NewMockClient()

	reply, err := client.Complete(context.Background(), domain.CompletionRequest{
		UserMessage:   "How do I install?",
		RetrievalNote: "Found relevant docs: install.md",
	})
	if err != nil {
		t.Fatalf("mock client must never fail: %v", err)
	}

	want := `(MOCK) I received: "How do I install?". Found relevant docs: install.md`
	if reply != want {
		t.Fatalf("expected %q, got %q", want, reply)
	}
}

func TestMockReplyVersionHint(t *testing.T) {
	client := llm.NewMockClient()

	reply, err := client.Complete(context.Background(), domain.CompletionRequest{
		UserMessage: "What is the latest VERSION?",
	})
	if err != nil {
		t.Fatalf("mock client must never fail: %v", err)
	}

	if !strings.HasSuffix(reply, " Example: check `nextflow -v` locally.") {
		t.Fatalf("expected version hint suffix, got %q", reply)
	}
}

func TestMockReplyIsDeterministic(t *testing.T) {
	client := llm.NewMockClient()
	req := domain.CompletionRequest{UserMessage: "hello", RetrievalNote: ""}

	first, _ := client.Complete(context.Background(), req)
	for i := 0; i < 5; i++ {
		if got, _ := client.Complete(context.Background(), req); got != first {
			t.Fatalf("mock reply not deterministic: %q vs %q", first, got)
		}
	}
}
