package genesys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
)

func TestFaceCounts(t *testing.T) {
	expected := map[genesys.DieType]int{
		genesys.DieBoost:       6,
		genesys.DieSetback:     6,
		genesys.DieAbility:     8,
		genesys.DieDifficulty:  8,
		genesys.DieProficiency: 12,
		genesys.DieChallenge:   12,
		genesys.DiePercentile:  100,
	}

	for dieType, count := range expected {
		d, ok := genesys.Lookup(dieType)
		require.True(t, ok, dieType)
		assert.Equal(t, count, d.FaceCount(), dieType)
	}
}

func TestFaceLabelsAreCanonical(t *testing.T) {
	for _, dieType := range genesys.DieTypes {
		d, _ := genesys.Lookup(dieType)
		for _, face := range d.Faces {
			for _, sym := range face {
				assert.True(t, sym.IsCanonical(), "%s has face %q", dieType, face.Label())
			}
		}
	}
}

func TestFace_LabelAndGlyphs(t *testing.T) {
	assert.Equal(t, " ", genesys.Face{}.Label())
	assert.Equal(t, "□", genesys.Face{}.Glyphs())

	face := genesys.Face{genesys.SymbolSuccess, genesys.SymbolAdvantage}
	assert.Equal(t, "sa", face.Label())
	assert.Equal(t, "✷ ▲", face.Glyphs())
}

func TestFromShortCode(t *testing.T) {
	testCases := []struct {
		code     rune
		expected genesys.DieType
		ok       bool
	}{
		{'P', genesys.DieProficiency, true},
		{'a', genesys.DieAbility, true},
		{'B', genesys.DieBoost, true},
		{'c', genesys.DieChallenge, true},
		{'D', genesys.DieDifficulty, true},
		{'s', genesys.DieSetback, true},
		{'%', genesys.DiePercentile, true},
		{'T', genesys.DiePercentile, true},
		{'X', "", false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.code), func(t *testing.T) {
			got, ok := genesys.FromShortCode(tc.code)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFromFoundryTag(t *testing.T) {
	got, ok := genesys.FromFoundryTag("DP")
	assert.True(t, ok)
	assert.Equal(t, genesys.DieProficiency, got)

	_, ok = genesys.FromFoundryTag("d6")
	assert.False(t, ok)
}

func TestUpgradeChain(t *testing.T) {
	boost, _ := genesys.Lookup(genesys.DieBoost)
	assert.Equal(t, genesys.DieAbility, boost.Upgrade)

	ability, _ := genesys.Lookup(genesys.DieAbility)
	assert.Equal(t, genesys.DieProficiency, ability.Upgrade)
	assert.Equal(t, genesys.DieBoost, ability.Downgrade)

	setback, _ := genesys.Lookup(genesys.DieSetback)
	assert.Equal(t, genesys.DieDifficulty, setback.Upgrade)
}

func TestSymbolFromName(t *testing.T) {
	sym, ok := genesys.SymbolFromName("Success")
	assert.True(t, ok)
	assert.Equal(t, genesys.SymbolSuccess, sym)

	sym, ok = genesys.SymbolFromName(" h ")
	assert.True(t, ok)
	assert.Equal(t, genesys.SymbolThreat, sym)

	_, ok = genesys.SymbolFromName("blank")
	assert.False(t, ok)
	_, ok = genesys.SymbolFromName("z")
	assert.False(t, ok)
}

func TestCharacteristic(t *testing.T) {
	assert.Equal(t, "Br", genesys.Brawn.Abbr())
	assert.Equal(t, "Willpower", genesys.Willpower.Title())
	assert.False(t, genesys.NoCharacteristic.IsSet())
	assert.Equal(t, "", genesys.NoCharacteristic.Title())
}
