package model

import "strings"

// NodeKind classifies an entry returned by the file-access service.
// The numeric values are part of the HTTP wire format.
type NodeKind int

const (
	NodeFile NodeKind = iota
	NodeDirectory
	NodeOther
)

func (k NodeKind) String() string {
	switch k {
	case NodeFile:
		return "file"
	case NodeDirectory:
		return "directory"
	default:
		return "other"
	}
}

// Node is a single entry of a directory listing.
type Node struct {
	Name string   `json:"name"`
	Kind NodeKind `json:"type"`
}

// IsDir reports whether the node is a directory.
func (n Node) IsDir() bool {
	return n.Kind == NodeDirectory
}

// IsHidden reports whether the node name starts with a dot.
// The synthetic "." and ".." entries are hidden too.
func (n Node) IsHidden() bool {
	return strings.HasPrefix(n.Name, ".")
}

// IsImplied reports whether the node is one of the synthetic "." / ".." entries.
func (n Node) IsImplied() bool {
	return n.Name == "." || n.Name == ".."
}

// PathSymbol returns the short name shown in the prompt for a working path:
// the home glyph at the root, otherwise the last segment.
func PathSymbol(path []string) string {
	if len(path) == 0 {
		return IconHome
	}
	return path[len(path)-1]
}

// PathString joins path segments with a slash. The root is the empty string.
func PathString(path []string) string {
	return strings.Join(path, "/")
}

// SplitPath splits a slash separated operand into segments, dropping empty ones
// (so "docs//a/" and "docs/a" address the same node).
func SplitPath(s string) []string {
	var segments []string
	for _, part := range strings.Split(s, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// JoinPath returns a fresh slice holding base followed by rest.
func JoinPath(base []string, rest ...string) []string {
	out := make([]string, 0, len(base)+len(rest))
	out = append(out, base...)
	return append(out, rest...)
}

// ResolvePath applies a slash separated operand to a working path.
// "." segments are skipped, ".." drops one segment (never above the root),
// and a leading "/" or "~" starts from the root.
func ResolvePath(base []string, operand string) []string {
	var out []string
	switch {
	case operand == IconHome:
		return []string{}
	case strings.HasPrefix(operand, IconHome+"/"):
		operand = operand[len(IconHome)+1:]
		out = []string{}
	case strings.HasPrefix(operand, "/"):
		out = []string{}
	default:
		out = JoinPath(base)
	}

	for _, segment := range SplitPath(operand) {
		switch segment {
		case ".":
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, segment)
		}
	}
	return out
}
