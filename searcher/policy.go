package searcher

import "math"

// ucb1 scores the children of one parent. The exploration numerator depends
// only on the parent, so it is computed once per selection.
type ucb1 struct {
	numerator float64
}

func newUCB1(totalVisits int) ucb1 {
	if totalVisits <= 0 {
		panic("ucb1: children have no visits")
	}
	return ucb1{numerator: C_SQUARED * math.Log(float64(totalVisits))}
}

// score rates a child whose value w was accumulated from the child's side,
// so the parent sees it negated: -w/n + sqrt(c^2*ln(N)/n).
func (u ucb1) score(w, n int) float64 {
	if n <= 0 {
		panic("ucb1: child has no visits")
	}
	visits := float64(n)
	return float64(-w)/visits + math.Sqrt(u.numerator/visits)
}
