package scoring

import (
	"bizmatch/internal/catalog"
)

// Engine turns a finished answer set into a profile and a ranked set of
// business recommendations. All methods are pure functions over the static
// catalog, so one engine is shared by every session.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a scoring engine over the given catalog
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}
