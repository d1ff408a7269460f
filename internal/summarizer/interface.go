package summarizer

import "context"

// Summarizer reads VTT transcripts and produces LLM-generated markdown
// summaries alongside the converted documents.
type Summarizer interface {
	SummarizeAll(ctx context.Context, srcDir, destDir string) error
}
