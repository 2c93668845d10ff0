package termtypes

// NodeKind tags a virtual filesystem node.
type NodeKind int

const (
	// NodeDirectory is a directory with ordered children.
	NodeDirectory NodeKind = iota
	// NodePlainFile is a file whose content comes from a static lookup.
	NodePlainFile
	// NodeExecutable is a file whose "execution" fetches remote content.
	NodeExecutable
)

// String returns the lower-case name of the kind.
func (k NodeKind) String() string {
	switch k {
	case NodeDirectory:
		return "directory"
	case NodePlainFile:
		return "file"
	case NodeExecutable:
		return "executable"
	default:
		return "unknown"
	}
}

// ExecutableExtension is the remote filename suffix that turns a directory
// listing entry into an executable node.
const ExecutableExtension = ".md"
