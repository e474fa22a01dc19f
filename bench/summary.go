// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/katalvlaran/chroma/coloring"
)

// Summary aggregates the rows of one variant across all graphs.
type Summary struct {
	Strategy    coloring.Strategy
	Interchange bool
	Runs        int
	MinColors   int
	MaxColors   int
	MeanColors  float64
	Swaps       int
	Elapsed     time.Duration
}

// Summarize groups rows by variant, in first-appearance order.
func Summarize(rows []Row) []Summary {
	type key struct {
		s  coloring.Strategy
		ic bool
	}
	pos := make(map[key]int)
	var out []Summary
	for _, r := range rows {
		k := key{r.Strategy, r.Interchange}
		i, ok := pos[k]
		if !ok {
			i = len(out)
			pos[k] = i
			out = append(out, Summary{
				Strategy:    r.Strategy,
				Interchange: r.Interchange,
				MinColors:   r.ColorsUsed,
				MaxColors:   r.ColorsUsed,
			})
		}
		s := &out[i]
		s.Runs++
		s.MinColors = min(s.MinColors, r.ColorsUsed)
		s.MaxColors = max(s.MaxColors, r.ColorsUsed)
		s.MeanColors += float64(r.ColorsUsed)
		s.Swaps += r.Swaps
		s.Elapsed += r.Elapsed
	}
	for i := range out {
		out[i].MeanColors /= float64(out[i].Runs)
	}

	return out
}
