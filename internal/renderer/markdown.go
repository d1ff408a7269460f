package renderer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/vttmd/internal/transcript"
)

const disclaimer = "*This document was automatically generated from a WebVTT transcript.*"

// RenderMarkdown serializes one converted transcript: YAML front matter,
// title heading, disclaimer banner, participants section and one
// bold-speaker paragraph per utterance. A transcript with no recognized
// speakers still renders (front matter and banner only).
func RenderMarkdown(meta transcript.Metadata, res transcript.Result) (string, error) {
	front, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(front)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", meta.Title)
	b.WriteString(disclaimer + "\n\n")

	if len(res.Speakers) > 0 {
		b.WriteString("## Participants\n\n")
		for _, p := range res.Participants() {
			if res.Anonymized {
				fmt.Fprintf(&b, "- %s (anonymized)\n", p)
			} else {
				fmt.Fprintf(&b, "- %s\n", p)
			}
		}
		b.WriteString("\n")
	}

	for _, u := range res.Utterances {
		fmt.Fprintf(&b, "**%s:** %s\n\n", u.Speaker, u.Text)
	}

	return b.String(), nil
}
