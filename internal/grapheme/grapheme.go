package grapheme

// Grapheme segmentation and terminal display widths. Every positional
// operation in the editor goes through Graphemes so that cursor columns are
// always measured in terminal cells, never in bytes or runes.

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is a single user-perceived character within a line.
type Cluster struct {
	Offset int    // Byte offset of the cluster in the line.
	Col    int    // Display column where the cluster starts.
	Text   string // The cluster itself.
	Width  int    // Number of terminal cells it occupies.
}

// End returns the display column just after the cluster.
func (c Cluster) End() int {
	return c.Col + c.Width
}

// Graphemes splits text into clusters, accumulating byte offsets and display
// columns along the way.
func Graphemes(text string) []Cluster {
	if text == "" {
		return nil
	}
	out := make([]Cluster, 0, len(text))
	g := uniseg.NewGraphemes(text)
	col := 0
	for g.Next() {
		start, _ := g.Positions()
		s := g.Str()
		w := ClusterWidth(s)
		out = append(out, Cluster{Offset: start, Col: col, Text: s, Width: w})
		col += w
	}
	return out
}

// Width returns the display width of text. It always equals the End of the
// last cluster returned by Graphemes.
func Width(text string) int {
	if text == "" {
		return 0
	}
	total := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		total += ClusterWidth(g.Str())
	}
	return total
}

// ClusterWidth returns the number of cells a single cluster occupies.
//
// runewidth measures some multi-rune clusters (flags, emoji with a
// presentation selector) by their first rune only, so for those the wider
// of runewidth and uniseg wins. Clusters that measure zero cells on their
// own (a combining mark with no base, a tab, control characters) are given
// one cell so the cursor can always step over them.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	w := runewidth.StringWidth(cluster)
	if w == 0 || utf8.RuneCountInString(cluster) > 1 {
		w = max(w, uniseg.StringWidth(cluster))
	}
	return max(w, 1)
}

// At returns the cluster whose column span contains display column x.
func At(text string, x int) (Cluster, bool) {
	if x < 0 {
		return Cluster{}, false
	}
	for _, c := range Graphemes(text) {
		if x < c.End() {
			return c, true
		}
	}
	return Cluster{}, false
}

// Last returns the final cluster of text.
func Last(text string) (Cluster, bool) {
	clusters := Graphemes(text)
	if len(clusters) == 0 {
		return Cluster{}, false
	}
	return clusters[len(clusters)-1], true
}
