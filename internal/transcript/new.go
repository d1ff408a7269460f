package transcript

import (
	"github.com/nguyentantai21042004/vttmd/internal/anonymizer"
)

type implParser struct {
	anon anonymizer.Anonymizer
}

// New creates a Parser. A nil anonymizer disables anonymization and speaker
// labels are the literal names from the voice tags.
func New(anon anonymizer.Anonymizer) Parser {
	return &implParser{anon: anon}
}
