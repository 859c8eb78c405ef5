package pool_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/pool"
)

type PoolTestSuite struct {
	suite.Suite
}

func TestPoolTestSuite(t *testing.T) {
	suite.Run(t, new(PoolTestSuite))
}

func (s *PoolTestSuite) TestParse() {
	p, err := pool.Parse(" paADd ")
	s.Require().NoError(err)

	s.Equal(1, p.Count(genesys.DieProficiency))
	s.Equal(2, p.Count(genesys.DieAbility))
	s.Equal(2, p.Count(genesys.DieDifficulty))
	s.Equal(5, p.Size())
	s.Equal("PAADD", p.String())
}

func (s *PoolTestSuite) TestParse_InvalidCode() {
	_, err := pool.Parse("PAX")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), `"X"`)
}

func (s *PoolTestSuite) TestParseFormula() {
	p, err := pool.ParseFormula("1dp+2da + di")
	s.Require().NoError(err)
	s.Equal("PAAD", p.String())
	s.Equal("1dp+2da+1di", p.Formula())

	_, err = pool.ParseFormula("2d6")
	s.True(errors.IsInvalidArgument(err))
}

func (s *PoolTestSuite) TestParseFormula_DieCountBounds() {
	testCases := []struct {
		name    string
		formula string
	}{
		{"count past int64", "9223372036854775807dp+1da"},
		{"count past the cap", "101da"},
		{"terms add up past the cap", "60da+41di"},
		{"count that does not parse", "99999999999999999999dp"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p, err := pool.ParseFormula(tc.formula)
			s.Require().Error(err)
			s.Nil(p)
			s.True(errors.IsInvalidArgument(err))
		})
	}

	p, err := pool.ParseFormula("60da+40di")
	s.Require().NoError(err)
	s.Equal(pool.MaxDice, p.Size())
	s.Len(p.Dice(), pool.MaxDice)
}

func (s *PoolTestSuite) TestParse_TooManyDice() {
	_, err := pool.Parse(strings.Repeat("A", pool.MaxDice+1))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "more than 100 dice")

	p, err := pool.Parse(strings.Repeat("A", pool.MaxDice))
	s.Require().NoError(err)
	s.Equal(pool.MaxDice, p.Size())
}

func (s *PoolTestSuite) TestModify() {
	testCases := []struct {
		name     string
		start    string
		die      genesys.DieType
		modifier pool.Modifier
		want     string
	}{
		{"add", "A", genesys.DieAbility, pool.ModifierAdd, "AA"},
		{"upgrade ability", "AA", genesys.DieAbility, pool.ModifierUpgrade, "PA"},
		{"upgrade with none adds", "D", genesys.DieAbility, pool.ModifierUpgrade, "AD"},
		{"upgrade proficiency adds", "P", genesys.DieProficiency, pool.ModifierUpgrade, "PP"},
		{"remove", "DD", genesys.DieDifficulty, pool.ModifierRemove, "D"},
		{"remove none", "A", genesys.DieSetback, pool.ModifierRemove, "A"},
		{"downgrade challenge", "C", genesys.DieChallenge, pool.ModifierDowngrade, "D"},
		{"downgrade boost removes", "AB", genesys.DieBoost, pool.ModifierDowngrade, "A"},
		{"downgrade none", "A", genesys.DieDifficulty, pool.ModifierDowngrade, "A"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p, err := pool.Parse(tc.start)
			s.Require().NoError(err)
			p.Modify(tc.die, tc.modifier)
			s.Equal(tc.want, p.String())
		})
	}
}

func (s *PoolTestSuite) TestEffects() {
	p, err := pool.Parse("AADD")
	s.Require().NoError(err)

	injury := pool.Effect{Name: "Injured", Difficulty: "S"}
	aimed := pool.Effect{Name: "Aimed", Difficulty: "-D"}

	s.Require().NoError(p.Apply(injury))
	s.Require().NoError(p.Apply(aimed))
	s.Equal("AADS", p.String())
	s.Len(p.Effects(), 2)

	s.Require().NoError(p.Revert(aimed))
	s.Equal("AADDS", p.String())

	err = p.Revert(aimed)
	s.True(errors.IsNotFound(err))

	err = p.Apply(pool.Effect{Name: "Bad", Difficulty: "-"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *PoolTestSuite) TestFoundryMacro() {
	p, err := pool.Parse("PAD%")
	s.Require().NoError(err)

	s.Equal(`/macro dice roll=1dp+1da+1di title=Pick|the|lock description=Quietly\nplease`,
		p.FoundryMacro(" Pick the lock ", "Quietly\nplease"))
	s.Equal("/macro dice roll=1dp+1da+1di", p.FoundryMacro("", ""))
}

func (s *PoolTestSuite) TestClone() {
	p, err := pool.Parse("AD")
	s.Require().NoError(err)

	c := p.Clone()
	c.Modify(genesys.DieAbility, pool.ModifierUpgrade)

	s.Equal("AD", p.String())
	s.Equal("PD", c.String())
}

func TestOdds_SingleDie(t *testing.T) {
	p, err := pool.Parse("A")
	require.NoError(t, err)

	odds, err := p.Odds()
	require.NoError(t, err)

	assert.Equal(t, 50.0, odds.SuccessPercent)
	require.Len(t, odds.Outcomes, 6)
	assert.Equal(t, pool.Outcome{Summary: "▲", Percent: 25}, odds.Outcomes[0])
	assert.Equal(t, pool.Outcome{Summary: "✷", Percent: 25}, odds.Outcomes[1])
}

func TestOdds_Boost(t *testing.T) {
	p, err := pool.Parse("B")
	require.NoError(t, err)

	odds, err := p.Odds()
	require.NoError(t, err)
	assert.Equal(t, 33.33, odds.SuccessPercent)
}

func TestOdds_SumsToHundred(t *testing.T) {
	p, err := pool.Parse("PAACD")
	require.NoError(t, err)

	odds, err := p.Odds()
	require.NoError(t, err)

	total := 0.0
	for _, o := range odds.Outcomes {
		total += o.Percent
	}
	assert.InDelta(t, 100.0, total, 0.5)
	assert.Greater(t, odds.SuccessPercent, 0.0)
	assert.Less(t, odds.SuccessPercent, 100.0)
}

func TestOdds_Errors(t *testing.T) {
	p, err := pool.Parse("%")
	require.NoError(t, err)
	_, err = p.Odds()
	assert.True(t, errors.IsInvalidArgument(err))

	big := pool.New()
	for i := 0; i <= pool.MaxOddsDice; i++ {
		big.Modify(genesys.DieBoost, pool.ModifierAdd)
	}
	_, err = big.Odds()
	assert.True(t, errors.IsResourceExhausted(err))
}
