package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	savedroll "github.com/KirkDiggler/genesys-dice/internal/repositories/saved_roll"
)

var (
	savedRollsPath   string
	savedDescription string
	savedEffects     []string
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved rolls",
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved rolls",
	Args:  cobra.NoArgs,
	RunE:  runSavedList,
}

var savedAddCmd = &cobra.Command{
	Use:   "add [name] [dice]",
	Short: "Save a pool under a name, replacing any roll with the same name",
	Args:  cobra.ExactArgs(2),
	RunE:  runSavedAdd,
}

var savedRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a saved roll",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openSavedRolls(cmd)
		if err != nil {
			return err
		}
		return repo.Delete(context.Background(), args[0])
	},
}

func init() {
	addSavedRollsFlag(savedCmd)
	savedAddCmd.Flags().StringVar(&savedDescription, "description", "", "Description shown on the chat card")
	savedAddCmd.Flags().StringArrayVar(&savedEffects, "effect", nil, `Effect as "name:dice"`)

	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedAddCmd)
	savedCmd.AddCommand(savedRemoveCmd)
}

func addSavedRollsFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savedRollsPath, "saved-rolls", savedroll.DefaultFileName,
		"Saved rolls YAML file or directory (GENESYS_DICE_SAVED_ROLLS_PATH)")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// openSavedRolls opens the YAML file named by the flag, or by the
// environment when the flag is not set
func openSavedRolls(cmd *cobra.Command) (savedroll.Repository, error) {
	settings := *cfg
	if cmd.Flags().Changed("saved-rolls") {
		settings.SavedRollsPath = savedRollsPath
	}

	repo, err := savedroll.NewYAMLRepository(&savedroll.Config{Path: settings.SavedRollsFile(isDir)})
	if err != nil {
		return nil, fmt.Errorf("failed to open saved rolls: %w", err)
	}
	return repo, nil
}

func runSavedList(cmd *cobra.Command, _ []string) error {
	repo, err := openSavedRolls(cmd)
	if err != nil {
		return err
	}
	rolls, err := repo.List(context.Background())
	if err != nil {
		return err
	}

	t := &table{headers: []string{"Name", "Dice", "Effects", "Description"}}
	for _, r := range rolls {
		effects := make([]string, len(r.Effects))
		for i, e := range r.Effects {
			effects[i] = e.Name + ":" + e.Difficulty
		}
		t.addRow(r.Name, r.Dice, strings.Join(effects, ", "), r.Description)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), t.render())
	return err
}

func runSavedAdd(cmd *cobra.Command, args []string) error {
	repo, err := openSavedRolls(cmd)
	if err != nil {
		return err
	}

	roll := savedroll.SavedRoll{
		Name:        args[0],
		Dice:        strings.ToUpper(args[1]),
		Description: savedDescription,
	}
	for _, e := range savedEffects {
		roll.Effects = append(roll.Effects, parseEffect(e))
	}

	if err := repo.Save(context.Background(), roll); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", roll.Name, roll.Dice)
	return err
}
