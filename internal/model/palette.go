package model

// ClusterColors is the fixed fallback palette for clusters. A cluster's
// color is chosen by its creation-order position modulo the palette
// length, so the first clusters on a fresh board always get the same
// colors.
var ClusterColors = []string{
	"orange",
	"pink",
	"amber",
	"blue",
	"purple",
	"green",
	"indigo",
	"red",
}

// DefaultClusterIcon is used when a cluster is created without an icon.
const DefaultClusterIcon = "📌"

// ColorFor returns the palette color for a cluster created at the given
// position (the number of clusters that existed before it).
func ColorFor(position int) string {
	if position < 0 {
		position = 0
	}
	return ClusterColors[position%len(ClusterColors)]
}
