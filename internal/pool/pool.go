// Package pool models a narrative dice pool: which dice are thrown, how
// effects add, remove, upgrade or downgrade them, and how the pool is
// written out for other tools.
package pool

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

// MaxDice bounds how many dice a parsed pool may hold
const MaxDice = 100

// Modifier changes a pool by one die
type Modifier string

// Pool modifiers
const (
	ModifierAdd       Modifier = "add"
	ModifierUpgrade   Modifier = "upgrade"
	ModifierRemove    Modifier = "remove"
	ModifierDowngrade Modifier = "downgrade"
)

// Opposite returns the modifier that reverts m
func (m Modifier) Opposite() Modifier {
	switch m {
	case ModifierAdd:
		return ModifierRemove
	case ModifierRemove:
		return ModifierAdd
	case ModifierUpgrade:
		return ModifierDowngrade
	case ModifierDowngrade:
		return ModifierUpgrade
	}
	return m
}

// Pool is a set of dice counts by type
type Pool struct {
	counts  map[genesys.DieType]int
	effects []Effect
}

// New creates an empty pool
func New() *Pool {
	return &Pool{counts: make(map[genesys.DieType]int)}
}

// Parse builds a pool from short codes such as "PAADD". Codes are
// case-insensitive and whitespace is ignored.
func Parse(codes string) (*Pool, error) {
	p := New()
	for _, r := range codes {
		if unicode.IsSpace(r) {
			continue
		}
		t, ok := genesys.FromShortCode(r)
		if !ok {
			return nil, errors.InvalidArgumentf("%q is not a valid die short code", string(r)).
				WithPool(codes)
		}
		p.counts[t]++
		if p.Size() > MaxDice {
			return nil, tooManyDice().WithPool(codes)
		}
	}
	return p, nil
}

// ParseFormula builds a pool from a Foundry style formula such as
// "1dp+2da+2di"
func ParseFormula(formula string) (*Pool, error) {
	p := New()
	for _, term := range strings.Split(formula, "+") {
		term = strings.TrimSpace(strings.ToLower(term))
		if term == "" {
			continue
		}
		idx := strings.IndexFunc(term, func(r rune) bool { return !unicode.IsDigit(r) })
		if idx < 0 {
			return nil, errors.InvalidArgumentf("invalid formula term: %s", term)
		}

		count := 1
		if idx > 0 {
			n, err := strconv.Atoi(term[:idx])
			if err != nil || n > MaxDice {
				return nil, errors.InvalidArgumentf("die count in term %s must be between 0 and %d", term, MaxDice).
					WithPool(formula)
			}
			count = n
		}

		t, ok := genesys.FromFoundryTag(term[idx:])
		if !ok {
			return nil, errors.InvalidArgumentf("unknown die in term: %s", term)
		}
		p.counts[t] += count
		if p.Size() > MaxDice {
			return nil, tooManyDice().WithPool(formula)
		}
	}
	return p, nil
}

func tooManyDice() *errors.Error {
	return errors.InvalidArgumentf("dice pool has more than %d dice", MaxDice)
}

// Count returns how many dice of a type are in the pool
func (p *Pool) Count(t genesys.DieType) int {
	return p.counts[t]
}

// Size returns the total number of dice in the pool
func (p *Pool) Size() int {
	n := 0
	for _, c := range p.counts {
		n += c
	}
	return n
}

// IsEmpty reports whether the pool has no dice
func (p *Pool) IsEmpty() bool {
	return p.Size() == 0
}

// Dice lists every die in canonical order, one entry per die
func (p *Pool) Dice() []genesys.DieType {
	dice := make([]genesys.DieType, 0, p.Size())
	for _, t := range genesys.DieTypes {
		for i := 0; i < p.counts[t]; i++ {
			dice = append(dice, t)
		}
	}
	return dice
}

// Modify applies a single modifier to the pool. Upgrading a die type that is
// not in the pool adds one; downgrading a die with nothing to downgrade to
// removes it.
func (p *Pool) Modify(t genesys.DieType, m Modifier) {
	die, ok := genesys.Lookup(t)
	if !ok {
		return
	}

	switch m {
	case ModifierAdd:
		p.counts[t]++
	case ModifierUpgrade:
		if die.Upgrade != "" && p.counts[t] > 0 {
			p.counts[t]--
			p.counts[die.Upgrade]++
		} else {
			p.counts[t]++
		}
	case ModifierRemove:
		if p.counts[t] > 0 {
			p.counts[t]--
		}
	case ModifierDowngrade:
		if p.counts[t] == 0 {
			return
		}
		p.counts[t]--
		if die.Downgrade != "" {
			p.counts[die.Downgrade]++
		}
	}
}

// String renders the pool as short codes in canonical order
func (p *Pool) String() string {
	var b strings.Builder
	for _, t := range genesys.DieTypes {
		d, _ := genesys.Lookup(t)
		b.WriteString(strings.Repeat(d.ShortCode, p.counts[t]))
	}
	return b.String()
}

// Formula renders the pool as a Foundry roll formula, skipping dice Foundry
// does not know about
func (p *Pool) Formula() string {
	terms := make([]string, 0, len(genesys.DieTypes))
	for _, t := range genesys.DieTypes {
		d, _ := genesys.Lookup(t)
		if d.FoundryTag == "" || p.counts[t] == 0 {
			continue
		}
		terms = append(terms, fmt.Sprintf("%d%s", p.counts[t], d.FoundryTag))
	}
	return strings.Join(terms, "+")
}

// FoundryMacro renders a chat command that runs the dice macro in Foundry
func (p *Pool) FoundryMacro(title, description string) string {
	args := []string{"roll=" + p.Formula()}

	if title = strings.TrimSpace(title); title != "" {
		args = append(args, "title="+strings.ReplaceAll(title, " ", "|"))
	}
	if description = strings.TrimSpace(description); description != "" {
		escaped := strings.ReplaceAll(description, " ", "|")
		escaped = strings.ReplaceAll(escaped, "\n", `\n`)
		args = append(args, "description="+escaped)
	}

	return "/macro dice " + strings.Join(args, " ")
}

// Clone returns an independent copy of the pool
func (p *Pool) Clone() *Pool {
	c := New()
	for t, n := range p.counts {
		c.counts[t] = n
	}
	c.effects = append(c.effects, p.effects...)
	return c
}
