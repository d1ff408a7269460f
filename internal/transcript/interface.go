package transcript

// Parser turns the raw line sequence of one VTT document into an ordered
// utterance list plus the set of speaker labels encountered.
type Parser interface {
	Parse(lines []string) Result
}
