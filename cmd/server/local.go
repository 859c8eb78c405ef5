package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/genesys-dice/internal/aggregator"
	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
	"github.com/KirkDiggler/genesys-dice/internal/orchestrators/dice"
	"github.com/KirkDiggler/genesys-dice/internal/pool"
	"github.com/KirkDiggler/genesys-dice/internal/roller"
)

// newRoller is replaced in tests with a predictable roller
var newRoller = func() *roller.Roller {
	return roller.New(&roller.Config{})
}

var (
	rollDetails bool
	rollBonus   map[string]int
	rollEffects []string

	macroTitle       string
	macroDescription string
)

var rollCmd = &cobra.Command{
	Use:   "roll [dice]",
	Short: "Roll a pool and print the net result",
	Long: `Roll a pool of narrative dice locally. Examples:

  roll PAADD
  roll AAD -d --bonus s=1
  roll PAD --effect "Dark:S" --effect "Aim:-S"`,
	Args: cobra.ExactArgs(1),
	RunE: runRoll,
}

var facesCmd = &cobra.Command{
	Use:   "faces",
	Short: "Print the faces of every die",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), facesTable())
		return err
	},
}

var oddsCmd = &cobra.Command{
	Use:   "odds [dice]",
	Short: "Print every result of a pool with its probability",
	Args:  cobra.ExactArgs(1),
	RunE:  runOdds,
}

var macroCmd = &cobra.Command{
	Use:   "macro [dice]",
	Short: "Print the Foundry chat macro that rolls a pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPool(args[0], rollEffects)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), p.FoundryMacro(macroTitle, macroDescription))
		return err
	},
}

func init() {
	rollCmd.Flags().BoolVarP(&rollDetails, "details", "d", false, "Print the faces rolled by each die")
	rollCmd.Flags().StringToIntVar(&rollBonus, "bonus", nil, "Bonus symbols, e.g. s=1,advantage=2")
	for _, c := range []*cobra.Command{rollCmd, oddsCmd, macroCmd} {
		c.Flags().StringArrayVar(&rollEffects, "effect", nil, `Effect as "name:dice"; prefix dice with "-" to remove them`)
	}

	macroCmd.Flags().StringVar(&macroTitle, "title", "", "Chat card title")
	macroCmd.Flags().StringVar(&macroDescription, "description", "", "Chat card description")
}

// parseEffect reads "name:dice"; the name is optional
func parseEffect(s string) pool.Effect {
	name, codes, found := strings.Cut(s, ":")
	if !found {
		return pool.Effect{Name: s, Difficulty: s}
	}
	return pool.Effect{Name: name, Difficulty: codes}
}

// buildPool applies the same pool rules as the server
func buildPool(codes string, effects []string) (*pool.Pool, error) {
	parsed := make([]pool.Effect, len(effects))
	for i, e := range effects {
		parsed[i] = parseEffect(e)
	}
	return dice.BuildPool(codes, "", parsed)
}

// labelGlyphs renders a face label ("sa", " ") with display glyphs
func labelGlyphs(label string) string {
	if strings.TrimSpace(label) == "" {
		return genesys.SymbolBlank.Glyph()
	}
	parts := make([]string, 0, len(label))
	for _, r := range label {
		if g := genesys.Symbol(r).Glyph(); g != "" {
			parts = append(parts, g)
		}
	}
	return strings.Join(parts, " ")
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func runRoll(cmd *cobra.Command, args []string) error {
	p, err := buildPool(args[0], rollEffects)
	if err != nil {
		return err
	}
	bonus, err := dice.NormalizeBonus(rollBonus)
	if err != nil {
		return err
	}

	roll, err := newRoller().Roll(p)
	if err != nil {
		return err
	}
	tally := aggregator.Aggregate(roll.DieResults(), bonus)

	out := cmd.OutOrStdout()
	if rollDetails {
		for _, group := range tally.Faces {
			d, _ := genesys.Lookup(genesys.DieType(group.Denomination))
			glyphs := make([]string, len(group.Labels))
			for i, label := range group.Labels {
				glyphs[i] = labelGlyphs(label)
			}
			fmt.Fprintf(out, "%s: %s\n", dieStyle(d.Color).Render(title(group.Denomination)), strings.Join(glyphs, " | "))
		}
		for _, v := range roll.Percentile {
			fmt.Fprintf(out, "Percentile: %d\n", v)
		}
	}

	summary := tally.Summary()
	if summary == "" {
		summary = "-"
	}
	fmt.Fprintln(out, summary)
	if !rollDetails && len(roll.Percentile) > 0 {
		values := make([]string, len(roll.Percentile))
		for i, v := range roll.Percentile {
			values[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(out, "%%: %s\n", strings.Join(values, ", "))
	}
	return nil
}

func facesTable() string {
	t := &table{headers: []string{"Die", "Code", "Faces"}}
	for _, dieType := range genesys.DieTypes {
		d, _ := genesys.Lookup(dieType)
		faces := fmt.Sprintf("1-%d", d.Sides)
		if !d.IsNumeric() {
			glyphs := make([]string, len(d.Faces))
			for i, f := range d.Faces {
				glyphs[i] = f.Glyphs()
			}
			faces = strings.Join(glyphs, " | ")
		}
		t.addRow(dieStyle(d.Color).Render(title(string(dieType))), d.ShortCode, faces)
	}
	return t.render()
}

func runOdds(cmd *cobra.Command, args []string) error {
	p, err := buildPool(args[0], rollEffects)
	if err != nil {
		return err
	}
	odds, err := p.Odds()
	if err != nil {
		return err
	}

	t := &table{
		title:   fmt.Sprintf("Results for dice %s (%d)", p.String(), len(odds.Outcomes)),
		headers: []string{"Result", "%"},
		footer:  []string{"Success Rate", formatPercent(odds.SuccessPercent) + "%"},
	}
	for _, o := range odds.Outcomes {
		summary := o.Summary
		if summary == "" {
			summary = "-"
		}
		t.addRow(summary, formatPercent(o.Percent))
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), t.render())
	return err
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
