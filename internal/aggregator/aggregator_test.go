package aggregator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/genesys-dice/internal/aggregator"
)

func die(denomination string, labels ...string) aggregator.DieResult {
	return aggregator.RolledDie{Type: denomination, Labels: labels}
}

func TestAggregate_AbilityDie(t *testing.T) {
	tally := aggregator.Aggregate([]aggregator.DieResult{
		die("ability", "s", "a s", "  "),
	}, nil)

	assert.Equal(t, 1, tally.TotalAdvantage)
	assert.Equal(t, 2, tally.TotalSuccess)
	assert.Equal(t, 0, tally.TotalTriumph)
	assert.Equal(t, 0, tally.TotalThreat)
	assert.Equal(t, 0, tally.TotalFailures)
	assert.Equal(t, 0, tally.TotalDespair)
	assert.Equal(t, 2, tally.NetSuccess)
	assert.Equal(t, -2, tally.NetFailure)
	assert.Equal(t, 1, tally.NetAdvantage)
	assert.Equal(t, -1, tally.NetThreat)
	assert.True(t, tally.Success())
}

func TestAggregate_DespairFoldsIntoFailureWithBonus(t *testing.T) {
	bonus := aggregator.BonusSymbols{"f": 1}
	tally := aggregator.Aggregate([]aggregator.DieResult{
		die("challenge", "f d"),
	}, bonus)

	assert.Equal(t, 3, tally.TotalFailures)
	assert.Equal(t, 1, tally.TotalDespair)
	assert.Equal(t, 3, tally.NetFailure)
	assert.Equal(t, -3, tally.NetSuccess)
	assert.Equal(t, bonus, tally.ExtraSymbols)
	assert.False(t, tally.Success())
}

func TestAggregate_Empty(t *testing.T) {
	tally := aggregator.Aggregate(nil, nil)

	assert.Equal(t, aggregator.ResultTally{Faces: []aggregator.DenominationFaces{}}, tally)
}

func TestAggregate_DenominationWithoutResults(t *testing.T) {
	tally := aggregator.Aggregate([]aggregator.DieResult{
		die("boost"),
		die("ability", "s"),
	}, nil)

	require.Len(t, tally.Faces, 2)
	assert.Equal(t, "boost", tally.Faces[0].Denomination)
	assert.Empty(t, tally.Faces[0].Labels)
	assert.Equal(t, 1, tally.TotalSuccess)
}

func TestAggregate_MergesSameDenomination(t *testing.T) {
	tally := aggregator.Aggregate([]aggregator.DieResult{
		die("ability", "s", "a"),
		die("difficulty", "h"),
		die("ability", "ss"),
	}, nil)

	require.Len(t, tally.Faces, 2)
	assert.Equal(t, []string{"s", "a", "ss"}, tally.Labels("ability"))
	assert.Equal(t, []string{"h"}, tally.Labels("difficulty"))
	assert.Equal(t, 3, tally.TotalSuccess)
	assert.Equal(t, 0, tally.NetAdvantage)
}

func TestAggregate_IgnoresUnknownCharacters(t *testing.T) {
	tally := aggregator.Aggregate([]aggregator.DieResult{
		die("ability", "sx", "?a", "42"),
	}, nil)

	assert.Equal(t, 1, tally.TotalSuccess)
	assert.Equal(t, 1, tally.TotalAdvantage)
	assert.Equal(t, 0, tally.TotalFailures)
}

func TestAggregate_TriumphCountsAsSuccess(t *testing.T) {
	tally := aggregator.Aggregate([]aggregator.DieResult{
		die("proficiency", "t", "s"),
		die("challenge", "f"),
	}, aggregator.BonusSymbols{"t": 1, "s": 1})

	// raw s = 2, raw t = 2
	assert.Equal(t, 4, tally.TotalSuccess)
	assert.Equal(t, 2, tally.TotalTriumph)
	assert.Equal(t, 3, tally.NetSuccess)
}

func TestAggregate_NetsAreSymmetric(t *testing.T) {
	cases := [][]aggregator.DieResult{
		{die("ability", "s", "aa")},
		{die("difficulty", "ff", "hh", "fh")},
		{die("proficiency", "t"), die("challenge", "d", "hh")},
		{},
	}

	for _, dice := range cases {
		tally := aggregator.Aggregate(dice, aggregator.BonusSymbols{"h": 2})
		assert.Equal(t, tally.NetSuccess, -tally.NetFailure)
		assert.Equal(t, tally.NetAdvantage, -tally.NetThreat)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	dice := []aggregator.DieResult{
		die("ability", "s", "sa"),
		die("setback", "f", " "),
	}
	bonus := aggregator.BonusSymbols{"a": 2}

	first := aggregator.Aggregate(dice, bonus)

	var wg sync.WaitGroup
	results := make([]aggregator.ResultTally, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = aggregator.Aggregate(dice, bonus)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, first, r)
	}
}

func TestResultTally_Summary(t *testing.T) {
	tally := aggregator.Aggregate([]aggregator.DieResult{
		die("proficiency", "t"),
		die("ability", "sa"),
		die("difficulty", "h"),
	}, nil)

	assert.Equal(t, "❂ ✷ ✷", tally.Summary())
}
