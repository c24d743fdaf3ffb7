package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/ternarybob/respondo/internal/models"
)

// separators tried in order when a span exceeds the piece budget. Each
// level splits on a weaker boundary than the one before it.
var separators = []string{"\n\n", "\n", ". ", " "}

// Service splits extracted text into chunks of at most size bytes, with
// the trailing overlap bytes of each chunk repeated at the start of the
// next so sentence fragments at chunk borders stay searchable. A single
// token no separator can break is emitted whole even past the size
// limit; nothing is ever truncated.
type Service struct {
	size    int
	overlap int
}

// NewService creates a chunker. overlap must be smaller than size, which
// config validation guarantees at startup.
func NewService(size, overlap int) *Service {
	return &Service{
		size:    size,
		overlap: overlap,
	}
}

// Chunk splits text into overlapping chunks tagged with sourceFile.
// Whitespace-only input produces no chunks; input that already fits in a
// single chunk is returned whole.
func (s *Service) Chunk(text, sourceFile string) []models.Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if len(text) <= s.size {
		return []models.Chunk{{
			Content:    strings.TrimSpace(text),
			SourceFile: sourceFile,
		}}
	}

	// Pieces are capped below size so that prepending the previous
	// piece's overlap never pushes a chunk past the limit. The one
	// exception is a separator-free token longer than the budget: it is
	// emitted whole rather than truncated and takes no overlap prefix.
	budget := s.size - s.overlap
	pieces := split(text, budget, 0)

	chunks := make([]models.Chunk, 0, len(pieces))
	prev := ""
	for _, piece := range pieces {
		content := piece
		if prev != "" && s.overlap > 0 && len(piece) <= budget {
			content = tail(prev, s.overlap) + piece
		}
		prev = piece

		trimmed := strings.TrimSpace(content)
		if trimmed == "" {
			continue
		}
		chunks = append(chunks, models.Chunk{
			Content:    trimmed,
			SourceFile: sourceFile,
		})
	}
	return chunks
}

// split breaks text into pieces of at most limit bytes, preferring the
// strongest separator that produces a split and falling back level by
// level. Separators stay attached to the preceding part so the original
// text is reconstructable from the pieces. A token no separator can
// break is returned whole even when it exceeds the limit.
func split(text string, limit int, sepIdx int) []string {
	if len(text) <= limit {
		return []string{text}
	}
	if sepIdx >= len(separators) {
		return []string{text}
	}

	parts := strings.SplitAfter(text, separators[sepIdx])
	if len(parts) == 1 {
		return split(text, limit, sepIdx+1)
	}

	var pieces []string
	var current strings.Builder
	for _, part := range parts {
		if len(part) > limit {
			if current.Len() > 0 {
				pieces = append(pieces, current.String())
				current.Reset()
			}
			pieces = append(pieces, split(part, limit, sepIdx+1)...)
			continue
		}
		if current.Len()+len(part) > limit {
			pieces = append(pieces, current.String())
			current.Reset()
		}
		current.WriteString(part)
	}
	if current.Len() > 0 {
		pieces = append(pieces, current.String())
	}
	return pieces
}

// tail returns the last n bytes of text, advanced to a rune boundary.
func tail(text string, n int) string {
	if len(text) <= n {
		return text
	}
	cut := len(text) - n
	for cut < len(text) && !utf8.RuneStart(text[cut]) {
		cut++
	}
	return text[cut:]
}
