package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/genesys-dice/internal/roller"
)

// fixedDice returns the queued values in order
type fixedDice struct {
	values []int
}

func (f *fixedDice) Roll(_ int) (int, error) {
	v := f.values[0]
	f.values = f.values[1:]
	return v, nil
}

func (f *fixedDice) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = f.Roll(size)
	}
	return out, nil
}

// execute runs the root command with fresh flag values
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rollDetails = false
	rollBonus = map[string]int{}
	rollEffects = nil
	macroTitle = ""
	macroDescription = ""
	savedDescription = ""
	savedEffects = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func stubRoller(t *testing.T, values ...int) {
	t.Helper()
	original := newRoller
	newRoller = func() *roller.Roller {
		return roller.New(&roller.Config{DiceRoller: &fixedDice{values: values}})
	}
	t.Cleanup(func() { newRoller = original })
}

func TestRollCommand(t *testing.T) {
	// ability lands on "ss", difficulty on "f"
	stubRoller(t, 4, 2)

	out, err := execute(t, "roll", "AD", "-d")
	require.NoError(t, err)
	assert.Contains(t, out, ": ✷ ✷\n")
	assert.Contains(t, out, ": ⨯\n")
	assert.Contains(t, out, "\n✷\n")
}

func TestRollCommand_BonusAndPercentile(t *testing.T) {
	// ability lands on blank, percentile on 42
	stubRoller(t, 1, 42)

	out, err := execute(t, "roll", "A%", "--bonus", "triumph=1")
	require.NoError(t, err)
	assert.Equal(t, "❂ ✷\n%: 42\n", out)
}

func TestRollCommand_Errors(t *testing.T) {
	_, err := execute(t, "roll", "AX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid die short code")

	_, err = execute(t, "roll", "A", "--effect", "Gone:-A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dice pool is empty")

	_, err = execute(t, "roll", strings.Repeat("A", 101))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than 100 dice")

	_, err = execute(t, "roll", "A", "--bonus", "luck=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bonus.luck: is invalid: unknown symbol")
}

func TestFacesCommand(t *testing.T) {
	out, err := execute(t, "faces")
	require.NoError(t, err)
	assert.Contains(t, out, "Proficiency")
	assert.Contains(t, out, "❂")
	assert.Contains(t, out, "1-100")
}

func TestOddsCommand(t *testing.T) {
	out, err := execute(t, "odds", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "Results for dice A (6)")
	assert.Contains(t, out, "Success Rate")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "12.5")
}

func TestMacroCommand(t *testing.T) {
	out, err := execute(t, "macro", "PAD", "--title", "Pick the lock", "--effect", "Dark:S")
	require.NoError(t, err)
	assert.Equal(t, "/macro dice roll=1dp+1da+1di+1ds title=Pick|the|lock\n", out)
}

func TestSavedCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rolls.yaml")

	out, err := execute(t, "saved", "add", "Climb", "aad", "--saved-rolls", path, "--description", "Up the wall")
	require.NoError(t, err)
	assert.Equal(t, "Saved Climb (AAD)\n", out)

	out, err = execute(t, "saved", "list", "--saved-rolls", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Climb")
	assert.Contains(t, out, "Up the wall")

	_, err = execute(t, "saved", "remove", "Climb", "--saved-rolls", path)
	require.NoError(t, err)

	_, err = execute(t, "saved", "remove", "Climb", "--saved-rolls", path)
	require.Error(t, err)
}
