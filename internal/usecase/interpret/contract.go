package interpret

import (
	"context"

	"github.com/syntax922/immich-search/internal/domain"
)

// Recognizer segments query text into candidate entity spans. Implementations
// are swappable (LLM-backed, lexical, cached) and their labels are treated as
// hints, not truth: the interpreter re-validates every span it consumes.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]domain.Span, error)
}
