package datanode

import "github.com/agnivade/levenshtein"

// Suggest returns the known keyword closest to got, if any is within a
// length-scaled edit distance. It is used to annotate "unrecognized
// keyword" diagnostics with a likely correction.
func Suggest(got string, known []string) (string, bool) {
	best := ""
	bestDist := -1
	for _, k := range known {
		if k == "" || k == got {
			continue
		}
		dist := levenshtein.ComputeDistance(got, k)
		if dist > suggestLimit(len(k)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && k < best) {
			best = k
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
