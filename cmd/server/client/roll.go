package client

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/handlers/api/v1alpha1"
)

var (
	speaker     string
	title       string
	description string
	bonus       map[string]int
)

var rollCmd = &cobra.Command{
	Use:   "roll [dice] [entity-id] [context]",
	Short: "Roll a pool and post it to a roll session",
	Long: `Roll dice on the server and see the posted result. Examples:

  roll PAADD char-123 scene-1
  roll AAD char-456 combat --bonus s=1 --title "Pick|the|lock"`,
	Args: cobra.ExactArgs(3),
	RunE: rollPool,
}

var rollSavedCmd = &cobra.Command{
	Use:   "roll-saved [name] [entity-id] [context]",
	Short: "Roll a saved pool and post it to a roll session",
	Args:  cobra.ExactArgs(3),
	RunE:  rollSaved,
}

func init() {
	for _, c := range []*cobra.Command{rollCmd, rollSavedCmd} {
		c.Flags().StringVar(&speaker, "speaker", "", "Name shown on the chat card")
		c.Flags().StringToIntVar(&bonus, "bonus", nil, "Bonus symbols, e.g. s=1,advantage=2")
	}
	rollCmd.Flags().StringVar(&title, "title", "", "Chat card title")
	rollCmd.Flags().StringVar(&description, "description", "", "Chat card description")
}

func toBonus(in map[string]int) map[string]int32 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]int32, len(in))
	for k, v := range in {
		out[k] = int32(v) // #nosec G115 // symbol counts are small
	}
	return out
}

func rollPool(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollPool(ctx, &v1alpha1.RollPoolRequest{
		EntityID:    args[1],
		Context:     args[2],
		Speaker:     speaker,
		Pool:        args[0],
		Bonus:       toBonus(bonus),
		Title:       title,
		Description: description,
	})
	if err != nil {
		return errors.Wrap(errors.FromGRPCError(err), "failed to roll dice")
	}

	printRollResponse(cmd.OutOrStdout(), resp)
	return nil
}

func rollSaved(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollSaved(ctx, &v1alpha1.RollSavedRequest{
		EntityID: args[1],
		Context:  args[2],
		Speaker:  speaker,
		Name:     args[0],
		Bonus:    toBonus(bonus),
	})
	if err != nil {
		return errors.Wrap(errors.FromGRPCError(err), "failed to roll saved dice")
	}

	printRollResponse(cmd.OutOrStdout(), resp)
	return nil
}

func printRollResponse(w io.Writer, resp *v1alpha1.RollPoolResponse) {
	fmt.Fprintf(w, "\n🎲 Dice Roll Results:\n")
	fmt.Fprintf(w, "===================\n")
	printRoll(w, resp.Roll)

	fmt.Fprintf(w, "\nTotal rolls in session: %d\n", len(resp.Rolls))
}

func printRoll(w io.Writer, roll *v1alpha1.Roll) {
	fmt.Fprintf(w, "  Roll ID: %s\n", roll.RollID)
	fmt.Fprintf(w, "  Pool: %s (%s)\n", roll.Pool, roll.Formula)
	for _, group := range roll.Tally.Faces {
		fmt.Fprintf(w, "  %s: %v\n", group.Denomination, group.Labels)
	}
	fmt.Fprintf(w, "  Net success: %d  Net advantage: %d  Triumph: %d  Despair: %d\n",
		roll.Tally.NetSuccess, roll.Tally.NetAdvantage, roll.Tally.TotalTriumph, roll.Tally.TotalDespair)
	fmt.Fprintf(w, "  Result: %s\n", roll.Tally.Summary())
	if len(roll.Percentile) > 0 {
		fmt.Fprintf(w, "  Percentile: %v\n", roll.Percentile)
	}
	if roll.Damage != nil {
		fmt.Fprintf(w, "  Damage: %d (%s)\n", roll.Damage.Total, roll.Damage.Formula)
	}
}
