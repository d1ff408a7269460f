package transcript

import "sort"

// Utterance is one flushed speaker turn: consecutive cues from the same
// speaker merged into a single paragraph.
type Utterance struct {
	Speaker string
	Text    string
}

// Result is the output of parsing one VTT document.
type Result struct {
	Utterances []Utterance
	Speakers   map[string]bool
	Anonymized bool
}

// Participants returns the speaker labels sorted lexicographically.
func (r *Result) Participants() []string {
	labels := make([]string, 0, len(r.Speakers))
	for label := range r.Speakers {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Metadata is the derived front-matter block, computed once per file.
// Field order here is the YAML output order.
type Metadata struct {
	Title            string            `yaml:"title"`
	Date             string            `yaml:"date"`
	Type             string            `yaml:"type"`
	Keywords         string            `yaml:"keywords"`
	SourceFile       string            `yaml:"source_file"`
	DocumentID       string            `yaml:"document_id"`
	RelatedDocuments []string          `yaml:"related_documents,omitempty"`
	DocumentLinks    map[string]string `yaml:"document_links,omitempty"`
	Participants     string            `yaml:"participants"`
}
