package anonymizer

// Anonymizer maintains a stable mapping from original speaker names to
// anonymized labels for the duration of one file's conversion.
type Anonymizer interface {
	// Resolve returns the label for name, generating and recording one on
	// first sight. Resolving the same name twice returns the same label.
	Resolve(name string) string

	// Mapping returns a snapshot of the original -> label pairs seen so far.
	Mapping() map[string]string
}
