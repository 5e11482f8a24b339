package analyzer

import (
	"context"
	"errors"
)

type Provider interface {
	Analyze(ctx context.Context, input Input, options *AnalyzeOptions) (*Result, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")
)

type Input struct {
	URL string

	File *File
}

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type AnalyzeOptions struct {
	// Layout requests role- and table-aware analysis. Without it the
	// result degrades to plain page text.
	Layout bool
}

type Result struct {
	Model string

	Pages []PageRecord
}

// PageRecord is the contract consumed by downstream chunking and
// embedding: one record per page, with the page's reconstructed text and
// its start offset in the concatenation of all page texts.
type PageRecord struct {
	Number int    `json:"page_number"`
	Offset int    `json:"offset"`
	Text   string `json:"page_text"`
}
