package contextfilter

import (
	"propfirm-assistant/internal/intent"
	pkgLog "propfirm-assistant/pkg/log"
)

// Filter reduces raw database rows to the fields relevant to a detected
// intent, with a minimum-content safeguard against over-reduction.
type Filter struct {
	l          pkgLog.Logger
	classifier *intent.Classifier
	minTokens  int
}

// New creates a Filter. A non-positive minTokens falls back to the default
// floor.
func New(l pkgLog.Logger, classifier *intent.Classifier, minTokens int) *Filter {
	if minTokens <= 0 {
		minTokens = MinContextTokens
	}
	return &Filter{
		l:          l,
		classifier: classifier,
		minTokens:  minTokens,
	}
}
