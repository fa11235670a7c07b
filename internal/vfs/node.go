package vfs

import (
	"sort"
	"time"
)

// DefaultMode is the permission string stamped on new nodes. Modes are
// cosmetic: nothing enforces them.
const DefaultMode = "rwxr-xr-x"

// Node is a single entry in the virtual tree. Files carry content,
// directories carry children keyed by name.
type Node struct {
	Name     string           `json:"name"`
	Content  string           `json:"content,omitempty"`
	Dir      bool             `json:"is_directory"`
	Mode     string           `json:"permissions"`
	Size     int64            `json:"size"`
	Modified time.Time        `json:"modified"`
	Children map[string]*Node `json:"children,omitempty"`
}

// NewDir creates an empty directory node.
func NewDir(name string) *Node {
	return &Node{
		Name:     name,
		Dir:      true,
		Mode:     DefaultMode,
		Modified: time.Now(),
		Children: make(map[string]*Node),
	}
}

// NewFile creates a file node with the given content.
func NewFile(name, content string) *Node {
	return &Node{
		Name:     name,
		Content:  content,
		Mode:     DefaultMode,
		Size:     int64(len(content)),
		Modified: time.Now(),
	}
}

// SetContent replaces file content and refreshes size and mtime.
func (n *Node) SetContent(content string) {
	n.Content = content
	n.Size = int64(len(content))
	n.Modified = time.Now()
}

// AppendContent appends to file content and refreshes size and mtime.
func (n *Node) AppendContent(content string) {
	n.SetContent(n.Content + content)
}

// Clone returns a deep copy of the node and its subtree.
func (n *Node) Clone() *Node {
	c := *n
	if n.Children != nil {
		c.Children = make(map[string]*Node, len(n.Children))
		for name, child := range n.Children {
			c.Children[name] = child.Clone()
		}
	}
	return &c
}

// SortedChildren returns the node's children ordered by name.
func (n *Node) SortedChildren() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		out = append(out, child)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TotalSize returns the recursive byte size of the subtree.
func (n *Node) TotalSize() int64 {
	if !n.Dir {
		return n.Size
	}
	var total int64
	for _, child := range n.Children {
		total += child.TotalSize()
	}
	return total
}
