package bench

import "sort"

type Result struct {
	Contender string  `json:"contender"`
	Ops       float64 `json:"ops"`
	RME       float64 `json:"rme"`
	Calls     int     `json:"calls"`
}

// Ranking keeps results ordered from fastest to slowest.
type Ranking struct {
	results []Result
}

func (r *Ranking) Insert(res Result) {
	idx := sort.Search(len(r.results), func(i int) bool {
		return res.Ops > r.results[i].Ops
	})

	r.results = append(r.results, Result{})
	copy(r.results[idx+1:], r.results[idx:])
	r.results[idx] = res
}

// Results returns the ranked results. Ties keep insertion order.
func (r *Ranking) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

func (r *Ranking) Len() int {
	return len(r.results)
}
