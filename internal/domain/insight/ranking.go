package insight

import "sort"

// rankDimensions returns dims ordered by score descending. The sort is
// stable over the declared dimension order, so equal scores keep that
// order; the tie-break is explicit and documented rather than an accident
// of map iteration.
func rankDimensions(scores ScoreVector, dims []string) []string {
	ranked := make([]string, len(dims))
	copy(ranked, dims)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

// topDimensions returns the n highest-scoring dimensions in rank order.
func topDimensions(scores ScoreVector, dims []string, n int) []string {
	ranked := rankDimensions(scores, dims)
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// highestDimension returns the single top-ranked dimension.
func highestDimension(scores ScoreVector, dims []string) string {
	return rankDimensions(scores, dims)[0]
}

// missingDimensions reports declared dimensions absent from the vector,
// in declared order.
func missingDimensions(dims []string, scores ScoreVector) []string {
	var missing []string
	for _, d := range dims {
		if _, ok := scores[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}

// containsDimension reports whether dim appears in set.
func containsDimension(set []string, dim string) bool {
	for _, d := range set {
		if d == dim {
			return true
		}
	}
	return false
}

// bothIn reports whether a and b both appear in set. Combination rules
// use this to detect co-dominant dimension pairs.
func bothIn(set []string, a, b string) bool {
	return containsDimension(set, a) && containsDimension(set, b)
}
