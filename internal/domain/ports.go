package domain

import "context"

// CompletionRequest carries everything a completion client may need: the
// assembled message list for a real provider, plus the raw user message and
// retrieval note for deterministic offline replies.
type CompletionRequest struct {
	Messages      []Turn
	UserMessage   string
	RetrievalNote string
}

// CompletionClient defines how the core application obtains a reply.
// The mock and live variants both satisfy it, so either can be injected.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// SessionStore defines session history persistence. It never rejects an
// unknown id: GetOrCreate initializes an empty history on demand.
type SessionStore interface {
	GetOrCreate(id SessionID) SessionID
	Append(id SessionID, role Role, content string)
	History(id SessionID) []Turn
}

// DocumentSource exposes the loaded corpus in its fixed enumeration order.
type DocumentSource interface {
	Docs() []Document
}
