package scenario

import (
	"fmt"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/heuristic"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/movingai"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/pathfind"
)

// FromEntries builds a scenario running alg on every MovingAI benchmark entry
// over m. Runs are named "<mapName>#<line>" and carry no expectation: the
// published optimal lengths are octile, not any-angle.
func FromEntries(mapName string, m *gridmap.Map, entries []movingai.Entry, alg pathfind.Algorithm, k int) *Scenario {
	sc := &Scenario{
		Maps: map[string]*gridmap.Map{mapName: m},
		Runs: make([]Run, 0, len(entries)),
	}
	for i, e := range entries {
		sc.Runs = append(sc.Runs, Run{
			Name:      fmt.Sprintf("%s#%d", mapName, i+1),
			MapName:   mapName,
			Map:       m,
			Algorithm: alg,
			K:         k,
			Heuristic: heuristic.Euclidean,
			Task:      pathfind.Task{Start: e.Start, Goal: e.Goal},
		})
	}

	return sc
}
