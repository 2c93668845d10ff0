package termtypes

// OutputKind classifies a transcript entry for coloring.
type OutputKind int

const (
	// OutputInfo is the default kind.
	OutputInfo OutputKind = iota
	// OutputSuccess is produced only by a directory change.
	OutputSuccess
	// OutputError marks not-found, usage and fault messages.
	OutputError
)

// String returns the lower-case name of the kind.
func (k OutputKind) String() string {
	switch k {
	case OutputSuccess:
		return "success"
	case OutputError:
		return "error"
	default:
		return "info"
	}
}

// TranscriptEntry is one command/output pair shown in the terminal view.
type TranscriptEntry struct {
	Command string     `json:"command" yaml:"command"`
	Output  string     `json:"output" yaml:"output"`
	Kind    OutputKind `json:"kind" yaml:"kind"`
}
