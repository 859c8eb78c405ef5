package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/genesys-dice/internal/aggregator"
	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/presentation"
)

func tally(labels ...string) aggregator.ResultTally {
	return aggregator.Aggregate([]aggregator.DieResult{
		aggregator.RolledDie{Type: "ability", Labels: labels},
	}, nil)
}

func TestFormatDescription(t *testing.T) {
	t.Run("title and text", func(t *testing.T) {
		got := presentation.FormatDescription("Pick the lock", "Quietly\nplease")
		assert.Equal(t, "<label>Pick the lock</label><br>Quietly<br>please<br>", string(got))
	})

	t.Run("no title", func(t *testing.T) {
		got := presentation.FormatDescription("  ", "just text")
		assert.Equal(t, "just text", string(got))
	})

	t.Run("escapes user text", func(t *testing.T) {
		got := presentation.FormatDescription("<b>", "a < b")
		assert.Equal(t, "<label>&lt;b&gt;</label><br>a &lt; b<br>", string(got))
	})

	t.Run("die icons", func(t *testing.T) {
		got := string(presentation.FormatDescription("", "Add {S} and {B}"))
		assert.Contains(t, got, string(presentation.DieIcon(genesys.DieSetback)))
		assert.Contains(t, got, string(presentation.DieIcon(genesys.DieBoost)))
		assert.NotContains(t, got, "{S}")
	})
}

func TestUnescapeMacroArg(t *testing.T) {
	assert.Equal(t, "Pick the lock\nnow", presentation.UnescapeMacroArg(`Pick|the|lock\nnow`))
}

func TestPoolIcons(t *testing.T) {
	got := string(presentation.PoolIcons("PA%"))
	assert.Contains(t, got, "#fff200")
	assert.Contains(t, got, "#41ad49")
	assert.NotContains(t, got, "%")
	assert.Empty(t, presentation.PoolIcons("%"))
}

func TestDefaultDescriptions(t *testing.T) {
	assert.Equal(t, "Simple check", presentation.DefaultSkillDescription(presentation.RollContext{}))
	assert.Equal(t, "Rolling Brawn",
		presentation.DefaultSkillDescription(presentation.RollContext{Characteristic: genesys.Brawn}))
	assert.Equal(t, "Rolling Athletics (Br) [super]",
		presentation.DefaultSkillDescription(presentation.RollContext{
			Characteristic: genesys.Brawn, Skill: "Athletics", SuperChar: true,
		}))
	assert.Equal(t, "Rolling Athletics",
		presentation.DefaultSkillDescription(presentation.RollContext{
			Characteristic: genesys.NoCharacteristic, Skill: "Athletics",
		}))
	assert.Equal(t, "Attacking with Sword using Melee (Br)",
		presentation.DefaultAttackDescription("Sword", presentation.RollContext{
			Characteristic: genesys.Brawn, Skill: "Melee",
		}))
	assert.Equal(t, "Attacking with Sword",
		presentation.DefaultAttackDescription("Sword", presentation.RollContext{}))
}

func TestComputeDamage(t *testing.T) {
	sword := presentation.Weapon{Name: "Sword", BaseDamage: 2, DamageCharacteristic: genesys.Brawn, Critical: 2}

	dmg := presentation.ComputeDamage(sword, 3, tally("ss", "s"))
	assert.Equal(t, presentation.Damage{Total: 8, Formula: "Br + 2"}, dmg)

	rifle := presentation.Weapon{Name: "Rifle", BaseDamage: 9}
	dmg = presentation.ComputeDamage(rifle, 3, aggregator.Aggregate(nil, aggregator.BonusSymbols{"f": 2}))
	assert.Equal(t, presentation.Damage{Total: 9, Formula: "9"}, dmg)
}

func TestRenderSkill(t *testing.T) {
	msg, err := presentation.RenderSkill(presentation.SkillInput{
		Speaker:     "Kira",
		Pool:        "A%",
		Description: presentation.FormatDescription("Climb", ""),
		Tally:       tally("s", "aa"),
		Percentile:  []int{37},
	})
	require.NoError(t, err)

	assert.Equal(t, presentation.KindSkill, msg.Kind)
	assert.Equal(t, "Kira", msg.Speaker)
	assert.Contains(t, msg.Content, "<label>Climb</label>")
	assert.Contains(t, msg.Content, "Net success: 1")
	assert.Contains(t, msg.Content, "Net advantage: 2")
	assert.Contains(t, msg.Content, "<span>37</span>")
	assert.Contains(t, msg.Content, `data-denomination="ability"`)
	assert.Contains(t, msg.Content, `<div class="roll-dice">`+string(presentation.PoolIcons("A"))+`</div>`)
	assert.Nil(t, msg.Damage)
}

func TestRenderAttack(t *testing.T) {
	weapon := presentation.Weapon{
		Name:                 "Sword",
		BaseDamage:           2,
		DamageCharacteristic: genesys.Brawn,
		Critical:             3,
		Qualities:            []presentation.Quality{{Name: "Defensive", Rating: 1}},
	}

	t.Run("hit shows damage", func(t *testing.T) {
		msg, err := presentation.RenderAttack(presentation.AttackInput{
			Tally:               tally("ss"),
			Weapon:              weapon,
			CharacteristicValue: 3,
		})
		require.NoError(t, err)

		require.NotNil(t, msg.Damage)
		assert.Equal(t, 7, msg.Damage.Total)
		assert.Contains(t, msg.Content, "Damage: 7")
		assert.Contains(t, msg.Content, "Critical: 3")
		assert.Contains(t, msg.Content, "Defensive")
	})

	t.Run("miss hides damage", func(t *testing.T) {
		msg, err := presentation.RenderAttack(presentation.AttackInput{
			Tally:  tally("a"),
			Weapon: weapon,
		})
		require.NoError(t, err)
		assert.NotContains(t, msg.Content, "Damage:")
	})

	t.Run("miss with damage shown", func(t *testing.T) {
		msg, err := presentation.RenderAttack(presentation.AttackInput{
			Tally:               tally("a"),
			Weapon:              weapon,
			ShowDamageOnFailure: true,
		})
		require.NoError(t, err)
		assert.Contains(t, msg.Content, "Damage: 2")
	})

	t.Run("weapon required", func(t *testing.T) {
		_, err := presentation.RenderAttack(presentation.AttackInput{})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
