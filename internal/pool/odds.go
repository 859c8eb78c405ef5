package pool

import (
	"math"
	"sort"

	"github.com/KirkDiggler/genesys-dice/internal/aggregator"
	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

// MaxOddsDice bounds the pool size accepted by Odds
const MaxOddsDice = 40

// Outcome is one distinct net result and its chance in percent
type Outcome struct {
	Summary string  `json:"summary"`
	Percent float64 `json:"percent"`
}

// Odds is the full outcome distribution of a pool
type Odds struct {
	SuccessPercent float64   `json:"successPercent"`
	Outcomes       []Outcome `json:"outcomes"`
}

// state is what decides a summary once all dice are rolled
type state struct {
	success, advantage, triumph, despair int
}

// Odds computes the exact outcome distribution of the pool. Percentile dice
// carry no symbols and are left out.
func (p *Pool) Odds() (*Odds, error) {
	var dice []*genesys.Die
	for _, t := range p.Dice() {
		d, _ := genesys.Lookup(t)
		if d.IsNumeric() {
			continue
		}
		dice = append(dice, d)
	}
	if len(dice) == 0 {
		return nil, errors.InvalidArgument("pool has no narrative dice")
	}
	if len(dice) > MaxOddsDice {
		return nil, errors.ResourceExhaustedf("pool has %d dice, at most %d are supported", len(dice), MaxOddsDice)
	}

	dist := map[state]float64{{}: 1}
	for _, d := range dice {
		weight := 1 / float64(len(d.Faces))
		next := make(map[state]float64, len(dist)*len(d.Faces))
		for st, prob := range dist {
			for _, face := range d.Faces {
				next[st.add(face)] += prob * weight
			}
		}
		dist = next
	}

	byRoll := make(map[string]float64)
	var success float64
	for st, prob := range dist {
		tally := st.tally()
		if tally.Success() {
			success += prob
		}
		byRoll[tally.Summary()] += prob
	}

	outcomes := make([]Outcome, 0, len(byRoll))
	for summary, prob := range byRoll {
		outcomes = append(outcomes, Outcome{Summary: summary, Percent: percent(prob)})
	}
	sort.Slice(outcomes, func(i, j int) bool {
		if outcomes[i].Percent != outcomes[j].Percent {
			return outcomes[i].Percent > outcomes[j].Percent
		}
		return outcomes[i].Summary < outcomes[j].Summary
	})

	return &Odds{
		SuccessPercent: percent(success),
		Outcomes:       outcomes,
	}, nil
}

func (s state) add(face genesys.Face) state {
	for _, sym := range face {
		switch sym {
		case genesys.SymbolSuccess:
			s.success++
		case genesys.SymbolFailure:
			s.success--
		case genesys.SymbolAdvantage:
			s.advantage++
		case genesys.SymbolThreat:
			s.advantage--
		case genesys.SymbolTriumph:
			s.triumph++
			s.success++
		case genesys.SymbolDespair:
			s.despair++
			s.success--
		}
	}
	return s
}

// tally converts the folded state back into net form for summaries
func (s state) tally() aggregator.ResultTally {
	return aggregator.ResultTally{
		TotalTriumph: s.triumph,
		TotalDespair: s.despair,
		NetSuccess:   s.success,
		NetFailure:   -s.success,
		NetAdvantage: s.advantage,
		NetThreat:    -s.advantage,
	}
}

func percent(p float64) float64 {
	return math.Round(p*10000) / 100
}
