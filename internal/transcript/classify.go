package transcript

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

type lineKind int

const (
	kindDiscard lineKind = iota
	kindSpeakerTagged
	kindContinuation
	kindSpeakerColon
	kindUnrecognized
)

type classified struct {
	kind    lineKind
	speaker string
	text    string
}

var (
	reTiming       = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3}\s*-->\s*\d{2}:\d{2}:\d{2}\.\d{3}`)
	reTimestamp    = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d{3})?$`)
	reCueID        = regexp.MustCompile(`^([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})(/\d+-\d+)?$`)
	reVoiceTag     = regexp.MustCompile(`^<v\s+([^>]*)>(.*)$`)
	reSpeakerColon = regexp.MustCompile(`^([A-Za-z][A-Za-z ]*):\s*(.+)$`)
)

// classify applies the five-way line precedence. openTurn selects between
// the continuation rule and the speaker-colon fallback: continuations only
// extend an open turn, the colon fallback only opens one.
func classify(line string, openTurn bool) classified {
	trimmed := strings.TrimSpace(line)

	if isStructural(trimmed) {
		return classified{kind: kindDiscard}
	}

	if m := reVoiceTag.FindStringSubmatch(trimmed); m != nil {
		speaker := strings.TrimSpace(m[1])
		if speaker != "" {
			return classified{kind: kindSpeakerTagged, speaker: speaker, text: cleanText(m[2])}
		}
		// A voice tag without a name is not a speaker line; the payload is
		// still usable as a continuation below.
	}

	if openTurn {
		if text := cleanText(trimmed); text != "" {
			return classified{kind: kindContinuation, text: text}
		}
		return classified{kind: kindUnrecognized}
	}

	if m := reSpeakerColon.FindStringSubmatch(trimmed); m != nil {
		if text := cleanText(m[2]); text != "" {
			return classified{kind: kindSpeakerColon, speaker: strings.TrimSpace(m[1]), text: text}
		}
	}

	return classified{kind: kindUnrecognized}
}

func isStructural(trimmed string) bool {
	if trimmed == "" {
		return true
	}
	if trimmed == "WEBVTT" || strings.HasPrefix(trimmed, "WEBVTT ") || strings.HasPrefix(trimmed, "WEBVTT\t") {
		return true
	}
	if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") {
		return true
	}
	if reTiming.MatchString(trimmed) || reTimestamp.MatchString(trimmed) {
		return true
	}
	return isCueIdentifier(trimmed)
}

// isCueIdentifier recognizes an 8-4-4-4-12 cue identifier, optionally
// followed by a /start-end suffix. The regex finds the candidate; uuid.Parse
// is the authority on whether it really is one.
func isCueIdentifier(trimmed string) bool {
	m := reCueID.FindStringSubmatch(trimmed)
	if m == nil {
		return false
	}
	_, err := uuid.Parse(m[1])
	return err == nil
}
