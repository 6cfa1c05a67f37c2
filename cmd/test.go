package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydrate-cli/hydrate/internal/reminder"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a single test notification.",
	Long:  `Send a single test notification and report whether delivery worked.`,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	store, err := newConfigStore()
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	cfg.CustomMessage = "It works! Time to drink some water."

	reminders, err := reminderLogbook()
	if err != nil {
		return err
	}
	lifecycle, err := lifecycleLogbook()
	if err != nil {
		return err
	}

	loop := reminder.NewLoop(cfg, reminder.NewNotifier(), reminders, lifecycle)
	if err := loop.RunOnce(cmd.Context()); err != nil {
		return fmt.Errorf("test notification failed: %w", err)
	}

	fmt.Println("Test notification sent.")
	return nil
}
