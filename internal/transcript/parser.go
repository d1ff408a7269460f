package transcript

import "strings"

// Parse runs the two-state turn machine over the line sequence.
// A turn is flushed at most once, only with non-empty accumulated text,
// on speaker change or end of input. Consecutive lines attributed to the
// same speaker merge into one utterance.
func (p *implParser) Parse(lines []string) Result {
	res := Result{
		Speakers:   make(map[string]bool),
		Anonymized: p.anon != nil,
	}

	var (
		open      bool
		speaker   string
		fragments []string
	)

	flush := func() {
		text := strings.TrimSpace(strings.Join(fragments, " "))
		if open && text != "" {
			res.Utterances = append(res.Utterances, Utterance{Speaker: speaker, Text: text})
		}
		fragments = fragments[:0]
	}

	for _, line := range lines {
		c := classify(line, open)

		switch c.kind {
		case kindSpeakerTagged, kindSpeakerColon:
			label := c.speaker
			if p.anon != nil {
				label = p.anon.Resolve(c.speaker)
			}
			if open && label != speaker {
				flush()
			}
			open = true
			speaker = label
			res.Speakers[label] = true
			if c.text != "" {
				fragments = append(fragments, c.text)
			}

		case kindContinuation:
			fragments = append(fragments, c.text)

		case kindDiscard, kindUnrecognized:
			// skipped; VTT dialects vary and unknown lines are not errors
		}
	}

	flush()
	return res
}
