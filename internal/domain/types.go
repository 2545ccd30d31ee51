package domain

type SessionID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Turn is one message exchanged within a session. Immutable once appended.
type Turn struct {
	Role    Role
	Content string
}

// Document is one file from the docs directory, loaded once at startup.
type Document struct {
	Title string // filename, unique within the store
	Text  string
}
