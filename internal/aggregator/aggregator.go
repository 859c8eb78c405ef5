// Package aggregator reduces rolled narrative dice to a result tally.
//
// Aggregate is a pure function: it has no I/O, keeps no state between calls
// and never fails. Unknown face characters are ignored rather than reported.
package aggregator

import (
	"strings"

	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
)

// DieResult is a rolled die able to report its denomination and the
// labels of the faces it landed on
type DieResult interface {
	Denomination() string
	FaceLabels() []string
}

// RolledDie is the plain value form of a DieResult
type RolledDie struct {
	Type   string   `json:"denomination" yaml:"denomination"`
	Labels []string `json:"faces" yaml:"faces"`
}

// Denomination implements DieResult
func (d RolledDie) Denomination() string { return d.Type }

// FaceLabels implements DieResult
func (d RolledDie) FaceLabels() []string { return d.Labels }

var _ DieResult = RolledDie{}

// BonusSymbols are flat symbol counts applied on top of the dice, keyed by
// symbol code ("s", "a", ...). A nil map behaves as empty.
type BonusSymbols map[string]int

// Get returns the bonus for a symbol, 0 when absent
func (b BonusSymbols) Get(sym genesys.Symbol) int {
	if b == nil {
		return 0
	}
	return b[sym.String()]
}

// DenominationFaces is the face labels rolled for one denomination
type DenominationFaces struct {
	Denomination string   `json:"denomination"`
	Labels       []string `json:"labels"`
}

// ResultTally is the outcome of a roll. Success includes triumph and failure
// includes despair.
type ResultTally struct {
	TotalSuccess   int `json:"totalSuccess"`
	TotalFailures  int `json:"totalFailures"`
	TotalAdvantage int `json:"totalAdvantage"`
	TotalThreat    int `json:"totalThreat"`
	TotalTriumph   int `json:"totalTriumph"`
	TotalDespair   int `json:"totalDespair"`

	NetSuccess   int `json:"netSuccess"`
	NetFailure   int `json:"netFailure"`
	NetAdvantage int `json:"netAdvantage"`
	NetThreat    int `json:"netThreat"`

	// Faces is grouped by denomination in first-rolled order
	Faces        []DenominationFaces `json:"faces"`
	ExtraSymbols BonusSymbols        `json:"extraSymbols,omitempty"`
}

// counts is the fold accumulator
type counts struct {
	advantage, success, triumph, threat, failure, despair int
}

func (c *counts) add(sym genesys.Symbol, n int) {
	switch sym {
	case genesys.SymbolAdvantage:
		c.advantage += n
	case genesys.SymbolSuccess:
		c.success += n
	case genesys.SymbolTriumph:
		c.triumph += n
	case genesys.SymbolThreat:
		c.threat += n
	case genesys.SymbolFailure:
		c.failure += n
	case genesys.SymbolDespair:
		c.despair += n
	}
}

// Aggregate tallies the symbols on the rolled dice plus any bonus symbols
func Aggregate(dice []DieResult, bonus BonusSymbols) ResultTally {
	faces := groupFaces(dice)

	var c counts
	for _, group := range faces {
		for _, label := range group.Labels {
			for _, r := range label {
				if r == rune(genesys.SymbolBlank) {
					continue
				}
				c.add(genesys.Symbol(r), 1)
			}
		}
	}

	for _, sym := range genesys.Symbols {
		c.add(sym, bonus.Get(sym))
	}

	c.success += c.triumph
	c.failure += c.despair

	netSuccess := c.success - c.failure
	netAdvantage := c.advantage - c.threat

	return ResultTally{
		TotalSuccess:   c.success,
		TotalFailures:  c.failure,
		TotalAdvantage: c.advantage,
		TotalThreat:    c.threat,
		TotalTriumph:   c.triumph,
		TotalDespair:   c.despair,
		NetSuccess:     netSuccess,
		NetFailure:     -netSuccess,
		NetAdvantage:   netAdvantage,
		NetThreat:      -netAdvantage,
		Faces:          faces,
		ExtraSymbols:   bonus,
	}
}

// groupFaces collects labels per denomination, appending when a denomination
// is seen again
func groupFaces(dice []DieResult) []DenominationFaces {
	groups := make([]DenominationFaces, 0, len(dice))
	index := make(map[string]int, len(dice))

	for _, die := range dice {
		if die == nil {
			continue
		}
		name := die.Denomination()
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, DenominationFaces{Denomination: name, Labels: []string{}})
		}
		groups[i].Labels = append(groups[i].Labels, die.FaceLabels()...)
	}

	return groups
}

// Success reports whether the roll succeeded
func (t ResultTally) Success() bool {
	return t.NetSuccess > 0
}

// Summary renders the net outcome as glyphs, e.g. "❂ ✷ ▲ ▲".
// Triumph and despair are always shown; the rest are shown after cancelling.
func (t ResultTally) Summary() string {
	var parts []string
	repeat := func(sym genesys.Symbol, n int) {
		for i := 0; i < n; i++ {
			parts = append(parts, sym.Glyph())
		}
	}

	repeat(genesys.SymbolTriumph, t.TotalTriumph)
	repeat(genesys.SymbolSuccess, max(t.NetSuccess, 0))
	repeat(genesys.SymbolAdvantage, max(t.NetAdvantage, 0))
	repeat(genesys.SymbolDespair, t.TotalDespair)
	repeat(genesys.SymbolFailure, max(t.NetFailure, 0))
	repeat(genesys.SymbolThreat, max(t.NetThreat, 0))

	return strings.Join(parts, " ")
}

// Labels returns all face labels for a denomination
func (t ResultTally) Labels(denomination string) []string {
	for _, g := range t.Faces {
		if g.Denomination == denomination {
			return g.Labels
		}
	}
	return nil
}
