package files

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"termfolio/internal/model"
)

// withImplied appends the synthetic "." and ".." directories to a listing.
func withImplied(nodes []model.Node) []model.Node {
	return append(nodes,
		model.Node{Name: "..", Kind: model.NodeDirectory},
		model.Node{Name: ".", Kind: model.NodeDirectory},
	)
}

// SortNodes orders a listing the way it is displayed: one leading dot is
// ignored, case does not matter and digit runs compare numerically
// ("file2" before "file10").
func SortNodes(nodes []model.Node) {
	// A collator is not safe for concurrent use, so build one per call.
	c := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
	sort.SliceStable(nodes, func(i, j int) bool {
		a := strings.TrimPrefix(nodes[i].Name, ".")
		b := strings.TrimPrefix(nodes[j].Name, ".")
		if r := c.CompareString(a, b); r != 0 {
			return r < 0
		}
		// Tie break keeps the order total ("a" vs ".a", "Readme" vs "readme").
		return nodes[i].Name < nodes[j].Name
	})
}
