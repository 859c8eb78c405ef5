package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/handlers/api/v1alpha1"
)

var sessionCmd = &cobra.Command{
	Use:   "session [entity-id] [context]",
	Short: "Show the rolls posted to a roll session",
	Args:  cobra.ExactArgs(2),
	RunE:  getRollSession,
}

var clearSessionCmd = &cobra.Command{
	Use:   "clear-session [entity-id] [context]",
	Short: "Remove a roll session",
	Args:  cobra.ExactArgs(2),
	RunE:  clearRollSession,
}

func getRollSession(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetRollSession(ctx, &v1alpha1.GetRollSessionRequest{
		EntityID: args[0],
		Context:  args[1],
	})
	if err != nil {
		return errors.Wrap(errors.FromGRPCError(err), "failed to get roll session")
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\n📜 Roll Session:\n")
	fmt.Fprintf(w, "================\n")
	fmt.Fprintf(w, "Created: %s\n", time.Unix(resp.CreatedAt, 0).Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Expires: %s\n", time.Unix(resp.ExpiresAt, 0).Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Total Rolls: %d\n", len(resp.Rolls))

	for i, roll := range resp.Rolls {
		fmt.Fprintf(w, "\n🎲 Roll %d:\n", i+1)
		printRoll(w, roll)
	}
	return nil
}

func clearRollSession(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ClearRollSession(ctx, &v1alpha1.ClearRollSessionRequest{
		EntityID: args[0],
		Context:  args[1],
	})
	if err != nil {
		return errors.Wrap(errors.FromGRPCError(err), "failed to clear roll session")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d rolls)\n", resp.Message, resp.RollsCleared)
	return nil
}
