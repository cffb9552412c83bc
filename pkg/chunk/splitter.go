// Package chunk splits extracted document text into ordered candidate
// passages for relevance scoring.
package chunk

import (
	"regexp"
	"strings"
)

// Chunk is one bounded span of extracted text, ephemeral and derived fresh per
// request. Index preserves document order, which the scorers rely on for
// first-match-wins and tie-breaking semantics.
type Chunk struct {
	Text  string
	Index int
}

const (
	// StrategyParagraph splits on blank lines or sentence boundaries.
	StrategyParagraph = "paragraph"
	// StrategySimple is the older policy: split on any newline or period.
	StrategySimple = "simple"

	// DefaultMinLength filters out noise fragments (headers, bullets).
	DefaultMinLength = 24
)

var (
	paragraphRe = regexp.MustCompile(`\n{2,}|\. `)
	simpleRe    = regexp.MustCompile(`[\n.]`)
)

// Splitter is a pure, deterministic chunker. The zero value is not usable;
// construct with NewSplitter.
type Splitter struct {
	pattern   *regexp.Regexp
	minLength int
}

func NewSplitter(strategy string, minLength int) *Splitter {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	pattern := paragraphRe
	if strategy == StrategySimple {
		pattern = simpleRe
	}
	return &Splitter{pattern: pattern, minLength: minLength}
}

// Split breaks text into trimmed, ordered chunks, discarding fragments shorter
// than the minimum length. An empty result is valid; the caller owns the
// degrade-to-snippet path.
func (s *Splitter) Split(text string) []Chunk {
	fragments := s.pattern.Split(text, -1)

	chunks := make([]Chunk, 0, len(fragments))
	for _, fragment := range fragments {
		trimmed := strings.TrimSpace(fragment)
		if len([]rune(trimmed)) < s.minLength {
			continue
		}
		chunks = append(chunks, Chunk{Text: trimmed, Index: len(chunks)})
	}
	return chunks
}
