package commands

import (
	"go.uber.org/zap"

	"github.com/temirov/foldertree/internal/types"
)

// TreeBuilder builds folder trees using the configured ignore set.
type TreeBuilder struct {
	IgnoredNames types.IgnoredNames
	Logger       *zap.Logger
}

// NewTreeBuilder returns a builder that skips ignoredNames and reports unreadable
// directories through logger. A nil logger discards diagnostics.
func NewTreeBuilder(ignoredNames types.IgnoredNames, logger *zap.Logger) *TreeBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeBuilder{
		IgnoredNames: ignoredNames,
		Logger:       logger,
	}
}

func (treeBuilder *TreeBuilder) diagnostics() *zap.Logger {
	if treeBuilder.Logger == nil {
		return zap.NewNop()
	}
	return treeBuilder.Logger
}
