package anonymizer

type implAnonymizer struct {
	useParticipantIDs bool
	forward           map[string]string
	labels            map[string]bool
}

// New creates an Anonymizer with an empty mapping. Each converted file gets
// its own instance; sharing one across files changes the output.
func New(useParticipantIDs bool) Anonymizer {
	return &implAnonymizer{
		useParticipantIDs: useParticipantIDs,
		forward:           make(map[string]string),
		labels:            make(map[string]bool),
	}
}
