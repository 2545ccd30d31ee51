package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/Varun9213/nextflow-chat-bot/internal/adapters/llm"
	"github.com/Varun9213/nextflow-chat-bot/internal/app/retrieval"
	"github.com/Varun9213/nextflow-chat-bot/internal/domain"
	"github.com/Varun9213/nextflow-chat-bot/internal/observability"
)

type Service struct {
	client    domain.CompletionClient
	sessions  domain.SessionStore
	retriever *retrieval.Retriever
}

func NewService(
	client domain.CompletionClient,
	sessions domain.SessionStore,
	retriever *retrieval.Retriever,
) *Service {
	return &Service{
		client:    client,
		sessions:  sessions,
		retriever: retriever,
	}
}

type ChatInput struct {
	Message   string
	SessionID string
}

type ChatOutput struct {
	Reply     string
	SessionID string
	Sources   []string
}

// Chat runs one exchange: validate, append the user turn, retrieve, assemble
// the prompt, complete, append the reply. A completion failure is absorbed
// into a degraded reply and still counts as a successful exchange; the only
// error callers ever see is domain.ErrEmptyMessage, which leaves the session
// untouched.
func (s *Service) Chat(ctx context.Context, in ChatInput) (*ChatOutput, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, domain.ErrEmptyMessage
	}

	sessionID := s.sessions.GetOrCreate(domain.SessionID(in.SessionID))

	log := observability.LoggerFromContext(ctx).With("session_id", sessionID)
	log.Info("handling chat message")

	s.sessions.Append(sessionID, domain.RoleUser, message)

	sources := s.retriever.FindDocs(message, 0)
	note := llm.RetrievalNote(sources)
	log.Info("retrieval done", "sources", sources)

	history := s.sessions.History(sessionID)
	messages := llm.BuildMessages(history, sources)

	reply, err := s.client.Complete(ctx, domain.CompletionRequest{
		Messages:      messages,
		UserMessage:   message,
		RetrievalNote: note,
	})
	if err != nil {
		log.Error("completion failed, degrading", "error", err)
		reply = degradedReply(note)
	}

	s.sessions.Append(sessionID, domain.RoleAssistant, reply)
	log.Info("chat completed")

	return &ChatOutput{
		Reply:     reply,
		SessionID: string(sessionID),
		Sources:   sources,
	}, nil
}

// degradedReply is returned with HTTP success when the upstream call fails.
// It never carries raw error text.
func degradedReply(note string) string {
	return fmt.Sprintf(
		"Sorry — I couldn't get an answer from the model. %s. "+
			"You can check the docs listed above or try again. (Error logged.)",
		note,
	)
}
