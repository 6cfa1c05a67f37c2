package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hydrate-cli/hydrate/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the reminder settings.",
	Long: `Change the reminder settings. With flags the given fields are updated
directly; without flags an interactive form is opened. A running daemon
keeps its current settings until it is restarted.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().Int("interval", config.DefaultIntervalMinutes, "Reminder interval in minutes.")
	configCmd.Flags().Bool("sound", true, "Play a sound with each reminder.")
	configCmd.Flags().String("message", "", "Custom reminder message (empty rotates the built-in set).")
	configCmd.Flags().String("icon", "", "Path to the notification icon.")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	store, err := newConfigStore()
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("interval") {
		v, _ := flags.GetInt("interval")
		if v < 1 {
			return fmt.Errorf("interval must be a positive number of minutes")
		}
		cfg.IntervalMinutes = v
		changed = true
	}
	if flags.Changed("sound") {
		cfg.SoundEnabled, _ = flags.GetBool("sound")
		changed = true
	}
	if flags.Changed("message") {
		cfg.CustomMessage, _ = flags.GetString("message")
		changed = true
	}
	if flags.Changed("icon") {
		cfg.IconPath, _ = flags.GetString("icon")
		changed = true
	}

	if !changed {
		if err := editConfigForm(&cfg); err != nil {
			return err
		}
	}

	if err := store.Save(cfg); err != nil {
		return err
	}
	fmt.Println("Settings saved.")

	if sup, err := newSupervisor(); err == nil && sup.IsRunning() {
		fmt.Println("The running daemon keeps its old settings; run 'hydrate restart' to apply.")
	}
	return nil
}

func editConfigForm(cfg *config.Config) error {
	interval := strconv.Itoa(cfg.IntervalMinutes)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Reminder interval (minutes)").
				Value(&interval).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("enter a positive number of minutes")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Play a sound with each reminder?").
				Value(&cfg.SoundEnabled),
			huh.NewInput().
				Title("Custom message").
				Description("Leave empty to rotate through the built-in messages.").
				Value(&cfg.CustomMessage),
			huh.NewInput().
				Title("Notification icon path").
				Value(&cfg.IconPath),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(interval))
	if err != nil || n < 1 {
		return fmt.Errorf("interval must be a positive number of minutes")
	}
	cfg.IntervalMinutes = n
	return nil
}
