package pool

import (
	"strings"

	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

// Effect is an optional effect that changes the pool, for example a
// critical injury adding a setback die. Difficulty is written in short codes
// and a leading "-" removes the dice instead of adding them.
type Effect struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Difficulty  string `json:"difficulty" yaml:"difficulty"`
}

func (e Effect) parse() (Modifier, []genesys.DieType, error) {
	codes := strings.TrimSpace(e.Difficulty)
	modifier := ModifierAdd
	if strings.HasPrefix(codes, "-") {
		modifier = ModifierRemove
		codes = codes[1:]
	}
	if codes == "" {
		return "", nil, errors.InvalidArgumentf("effect %q has no dice", e.Name)
	}

	parsed, err := Parse(codes)
	if err != nil {
		return "", nil, errors.Wrapf(err, "invalid difficulty for effect %q", e.Name)
	}
	return modifier, parsed.Dice(), nil
}

// Apply changes the pool by the effect and records it
func (p *Pool) Apply(e Effect) error {
	modifier, dice, err := e.parse()
	if err != nil {
		return err
	}
	for _, t := range dice {
		p.Modify(t, modifier)
	}
	p.effects = append(p.effects, e)
	return nil
}

// Revert undoes a previously applied effect
func (p *Pool) Revert(e Effect) error {
	idx := -1
	for i, applied := range p.effects {
		if applied == e {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.NotFoundf("effect %q is not applied", e.Name)
	}

	modifier, dice, err := e.parse()
	if err != nil {
		return err
	}
	for _, t := range dice {
		p.Modify(t, modifier.Opposite())
	}
	p.effects = append(p.effects[:idx], p.effects[idx+1:]...)
	return nil
}

// Effects returns the effects applied to the pool
func (p *Pool) Effects() []Effect {
	return append([]Effect(nil), p.effects...)
}
