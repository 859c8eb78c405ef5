// Package roller throws a dice pool and resolves each die to its face labels
package roller

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/genesys-dice/internal/aggregator"
	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/pool"
)

// Roll is the raw outcome of throwing a pool
type Roll struct {
	// Dice holds one entry per symbol die thrown, in pool order
	Dice []aggregator.RolledDie

	// Percentile holds the values of any percentile dice
	Percentile []int
}

// DieResults returns the rolled dice as aggregator input
func (r *Roll) DieResults() []aggregator.DieResult {
	results := make([]aggregator.DieResult, len(r.Dice))
	for i, d := range r.Dice {
		results[i] = d
	}
	return results
}

// Config holds the dependencies for a Roller
type Config struct {
	// DiceRoller picks face indices; dice.DefaultRoller when nil
	DiceRoller dice.Roller
}

// Roller throws pools of narrative dice
type Roller struct {
	dice dice.Roller
}

// New creates a Roller
func New(cfg *Config) *Roller {
	var r dice.Roller = dice.DefaultRoller
	if cfg != nil && cfg.DiceRoller != nil {
		r = cfg.DiceRoller
	}
	return &Roller{dice: r}
}

// Roll throws every die in the pool
func (r *Roller) Roll(p *pool.Pool) (*Roll, error) {
	if p == nil || p.IsEmpty() {
		return nil, errors.InvalidArgument("dice pool is empty")
	}

	out := &Roll{}
	for _, t := range p.Dice() {
		die, ok := genesys.Lookup(t)
		if !ok {
			return nil, errors.Internalf("unknown die type %s", t).WithDie(string(t))
		}

		value, err := r.dice.Roll(die.FaceCount())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s die", t)
		}
		if value < 1 || value > die.FaceCount() {
			return nil, errors.Internalf("roller returned %d for a %d sided die", value, die.FaceCount())
		}

		if die.IsNumeric() {
			out.Percentile = append(out.Percentile, value)
			continue
		}

		out.Dice = append(out.Dice, aggregator.RolledDie{
			Type:   string(t),
			Labels: []string{die.Faces[value-1].Label()},
		})
	}

	return out, nil
}
