package anonymizer

import (
	"fmt"
	"strings"
	"unicode"
)

// Resolve returns the stable label for an original speaker name.
// The empty name never enters the mapping; the parser does not produce it,
// and recording it could break the one-label-per-name invariant.
func (a *implAnonymizer) Resolve(name string) string {
	if name == "" {
		return ""
	}

	if label, ok := a.forward[name]; ok {
		return label
	}

	var label string
	if a.useParticipantIDs {
		label = fmt.Sprintf("P%d", len(a.forward)+1)
	} else {
		label = a.uniqueInitials(name)
	}

	a.forward[name] = label
	a.labels[label] = true
	return label
}

// uniqueInitials derives an initials label and disambiguates collisions with
// a numeric suffix starting at 2.
func (a *implAnonymizer) uniqueInitials(name string) string {
	base := initials(name)
	if !a.labels[base] {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s%d", base, n)
		if !a.labels[candidate] {
			return candidate
		}
	}
}

func initials(name string) string {
	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		return firstUpper(tokens[0]) + "1"
	case 2:
		return firstUpper(tokens[0]) + firstUpper(tokens[1])
	default:
		return firstUpper(tokens[0]) + firstUpper(tokens[len(tokens)-1])
	}
}

func firstUpper(token string) string {
	for _, r := range token {
		return string(unicode.ToUpper(r))
	}
	return ""
}

func (a *implAnonymizer) Mapping() map[string]string {
	snapshot := make(map[string]string, len(a.forward))
	for original, label := range a.forward {
		snapshot[original] = label
	}
	return snapshot
}
