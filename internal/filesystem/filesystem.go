// Package filesystem implements the virtual filesystem shown by the terminal.
//
// The tree is rooted at the visitor's home directory. Paths are display paths
// of the form /home/<user>/<child>/...; the first two segments are always
// consumed as the implicit root, so the tree never depends on the username.
package filesystem

import (
	"strings"

	"termfolio/pkg/termtypes"
)

// rootKey is the sentinel name the home directory is stored under.
const rootKey = "~"

// Node is one entry of the virtual tree.
type Node struct {
	Kind termtypes.NodeKind
	Name string

	// SourceName is the remote filename fetched when an executable runs.
	SourceName string
	// Description is shown in listings and search output for executables.
	Description string

	order    []string
	children map[string]*Node
}

// NewDirectory creates an empty directory node.
func NewDirectory(name string) *Node {
	return &Node{
		Kind:     termtypes.NodeDirectory,
		Name:     name,
		children: make(map[string]*Node),
	}
}

// NewPlainFile creates a plain file node.
func NewPlainFile(name string) *Node {
	return &Node{Kind: termtypes.NodePlainFile, Name: name}
}

// NewExecutable creates an executable node fetched from sourceName.
func NewExecutable(name, sourceName, description string) *Node {
	return &Node{
		Kind:        termtypes.NodeExecutable,
		Name:        name,
		SourceName:  sourceName,
		Description: description,
	}
}

// IsDir reports whether n is a directory.
func (n *Node) IsDir() bool {
	return n != nil && n.Kind == termtypes.NodeDirectory
}

// Add appends child to n, replacing an existing child of the same name in place.
// It is a no-op on non-directories.
func (n *Node) Add(child *Node) {
	if !n.IsDir() || child == nil {
		return
	}
	if _, exists := n.children[child.Name]; !exists {
		n.order = append(n.order, child.Name)
	}
	n.children[child.Name] = child
}

// Child returns the child called name.
func (n *Node) Child(name string) (*Node, bool) {
	if !n.IsDir() {
		return nil, false
	}
	child, ok := n.children[name]
	return child, ok
}

// Children returns the children of n in insertion order.
func (n *Node) Children() []*Node {
	if !n.IsDir() {
		return nil
	}
	result := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		result = append(result, n.children[name])
	}
	return result
}

// Len returns the number of children.
func (n *Node) Len() int {
	if !n.IsDir() {
		return 0
	}
	return len(n.order)
}

// Entry is a listing summary of a node.
type Entry struct {
	Name string
	Kind termtypes.NodeKind
}

// Display renders the entry with its kind marker: "name/" for directories,
// "*name" for executables and the bare name for plain files.
func (e Entry) Display() string {
	switch e.Kind {
	case termtypes.NodeDirectory:
		return e.Name + "/"
	case termtypes.NodeExecutable:
		return "*" + e.Name
	default:
		return e.Name
	}
}

// Skeleton describes the initial tree.
type Skeleton struct {
	Directories []string
	PlainFiles  []string
}

// DefaultSkeleton is home with the two dynamic directories and the static files.
var DefaultSkeleton = Skeleton{
	Directories: []string{"portfolio", "blog"},
	PlainFiles:  []string{"about.txt", "contact.txt", "resume.txt"},
}

// FileSystem is the virtual tree. It is not safe for concurrent use; the
// terminal event loop owns it.
type FileSystem struct {
	root *Node
}

// New builds a tree from skeleton. Directories come before plain files.
func New(skeleton Skeleton) *FileSystem {
	root := NewDirectory(rootKey)
	for _, dir := range skeleton.Directories {
		root.Add(NewDirectory(dir))
	}
	for _, file := range skeleton.PlainFiles {
		root.Add(NewPlainFile(file))
	}
	return &FileSystem{root: root}
}

// NewDefault builds the default skeleton tree.
func NewDefault() *FileSystem {
	return New(DefaultSkeleton)
}

// Root returns the home directory node.
func (f *FileSystem) Root() *Node {
	return f.root
}

// Resolve walks path from the root. The first two non-empty segments are
// skipped unconditionally; a path with two or fewer segments is the root.
func (f *FileSystem) Resolve(path string) (*Node, bool) {
	segments := splitPath(path)
	current := f.root
	for i := 2; i < len(segments); i++ {
		next, ok := current.Child(segments[i])
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// List returns the entries of node in insertion order.
func (f *FileSystem) List(node *Node) []Entry {
	children := node.Children()
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		entries = append(entries, Entry{Name: child.Name, Kind: child.Kind})
	}
	return entries
}

// ListPath resolves path and lists it.
func (f *FileSystem) ListPath(path string) ([]Entry, bool) {
	node, ok := f.Resolve(path)
	if !ok || !node.IsDir() {
		return nil, false
	}
	return f.List(node), true
}

// MergeDirectory replaces or creates the top-level directory name with one
// executable per filename carrying the executable extension. The extension
// is stripped for the display name and the first of any duplicates wins.
// An existing child keeps its position among its siblings.
func (f *FileSystem) MergeDirectory(name string, filenames []string) {
	dir := NewDirectory(name)
	for _, filename := range filenames {
		if !strings.HasSuffix(filename, termtypes.ExecutableExtension) {
			continue
		}
		display := strings.TrimSuffix(filename, termtypes.ExecutableExtension)
		if display == "" {
			continue
		}
		if _, exists := dir.Child(display); exists {
			continue
		}
		dir.Add(NewExecutable(display, filename, name+" post: "+display))
	}
	f.root.Add(dir)
}

// Find searches every node beneath the root for names containing query,
// case-insensitively. Matches are returned depth first with parents before
// their children, each as a full display path under home.
func (f *FileSystem) Find(home, query string) []string {
	needle := strings.ToLower(query)
	var matches []string
	var walk func(node *Node, prefix string)
	walk = func(node *Node, prefix string) {
		for _, child := range node.Children() {
			path := prefix + "/" + child.Name
			if strings.Contains(strings.ToLower(child.Name), needle) {
				matches = append(matches, path)
			}
			if child.IsDir() {
				walk(child, path)
			}
		}
	}
	walk(f.root, strings.TrimSuffix(home, "/"))
	return matches
}

// Lookup returns the child of dir called name.
func Lookup(dir *Node, name string) (*Node, bool) {
	return dir.Child(name)
}

// LookupFold returns the first child of dir whose name equals name ignoring case.
func LookupFold(dir *Node, name string) (*Node, bool) {
	if child, ok := dir.Child(name); ok {
		return child, true
	}
	for _, child := range dir.Children() {
		if strings.EqualFold(child.Name, name) {
			return child, true
		}
	}
	return nil, false
}

func splitPath(path string) []string {
	raw := strings.Split(path, "/")
	segments := raw[:0]
	for _, s := range raw {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
