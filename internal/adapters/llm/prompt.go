package llm

import (
	"strings"

	"github.com/Varun9213/nextflow-chat-bot/internal/domain"
)

const systemPrompt = "You are a concise assistant focused on Nextflow documentation Q&A " +
	"and light pragmatic troubleshooting. Prioritize doc answers (70%) and " +
	"pragmatic steps (30%). If you found docs to cite, mention them in a 'Sources' " +
	"section at the end and be explicit about uncertainty. If unknown, suggest how to verify."

// maxHistoryTurns bounds how much conversation is forwarded upstream.
const maxHistoryTurns = 12

// BuildMessages assembles the message list for a completion call: the fixed
// system instruction, an optional system message listing the retrieved doc
// titles, then the most recent turns of history in chronological order.
// Older turns are dropped silently. Pure function of its inputs.
func BuildMessages(history []domain.Turn, sources []string) []domain.Turn {
	recent := history
	if len(recent) > maxHistoryTurns {
		recent = recent[len(recent)-maxHistoryTurns:]
	}

	messages := make([]domain.Turn, 0, len(recent)+2)
	messages = append(messages, domain.Turn{Role: domain.RoleSystem, Content: systemPrompt})
	if len(sources) > 0 {
		messages = append(messages, domain.Turn{
			Role:    domain.RoleSystem,
			Content: "Relevant docs: " + strings.Join(sources, "; "),
		})
	}
	return append(messages, recent...)
}

// RetrievalNote renders the human-readable summary of retrieved titles,
// or "" when there are none.
func RetrievalNote(sources []string) string {
	if len(sources) == 0 {
		return ""
	}
	return "Found relevant docs: " + strings.Join(sources, ", ")
}
