package scoring

import "sort"

// RankedCandidate pairs a candidate with its computed score.
type RankedCandidate struct {
	Ident string  `json:"ident"`
	Score float64 `json:"score"`

	Candidate Candidate `json:"-"`
}

// Rank scores every candidate and returns them sorted descending. The sort
// is stable: equal scores keep the input enumeration order.
func (r *Rule) Rank(candidates []Candidate) []RankedCandidate {
	out := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, RankedCandidate{
			Ident:     c.Ident(),
			Score:     r.Score(c),
			Candidate: c,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
