package converter

import "context"

// Stats aggregates the outcome of a batch run.
type Stats struct {
	Converted int
	Failed    int
}

// Converter turns WebVTT files into Markdown documents. Files are always
// processed one at a time; a batch never runs conversions concurrently.
type Converter interface {
	// ConvertFile converts a single VTT file and returns the output path.
	ConvertFile(ctx context.Context, inputPath string) (string, error)

	// ConvertDir converts every matching file under dir sequentially.
	// Per-file failures are logged and counted, never aborting the batch.
	ConvertDir(ctx context.Context, dir string) (Stats, error)
}
