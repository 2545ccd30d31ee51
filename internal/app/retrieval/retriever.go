// Package retrieval ranks documents against a query by keyword overlap.
package retrieval

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Varun9213/nextflow-chat-bot/internal/domain"
)

const defaultMaxHits = 3

var wordPattern = regexp.MustCompile(`\w+`)

type Retriever struct {
	source domain.DocumentSource
}

func New(source domain.DocumentSource) *Retriever {
	return &Retriever{source: source}
}

type hit struct {
	score int
	title string
}

// FindDocs returns the titles of the best-matching documents, at most
// maxHits of them (3 when maxHits <= 0).
//
// A document's score is the sum, over the word tokens of the lower-cased
// query, of how often each token occurs as a substring of the lower-cased
// document text. A document qualifies when its score is positive, or when
// any whitespace-split fragment of the query appears in the text. The
// fragment check is intentionally looser than the scoring tokenizer (it
// keeps punctuation), so some zero-scoring documents still surface; that
// asymmetry is load-bearing and must not be collapsed into one tokenizer.
//
// Ties keep the store's enumeration order.
func (r *Retriever) FindDocs(query string, maxHits int) []string {
	if maxHits <= 0 {
		maxHits = defaultMaxHits
	}

	q := strings.ToLower(query)
	tokens := wordPattern.FindAllString(q, -1)
	fragments := strings.Fields(q)

	var hits []hit
	for _, doc := range r.source.Docs() {
		text := strings.ToLower(doc.Text)

		score := 0
		for _, tok := range tokens {
			score += strings.Count(text, tok)
		}

		if score > 0 || anyFragmentIn(fragments, text) {
			hits = append(hits, hit{score: score, title: doc.Title})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > maxHits {
		hits = hits[:maxHits]
	}

	titles := make([]string, 0, len(hits))
	for _, h := range hits {
		titles = append(titles, h.title)
	}
	return titles
}

func anyFragmentIn(fragments []string, text string) bool {
	for _, f := range fragments {
		if strings.Contains(text, f) {
			return true
		}
	}
	return false
}
