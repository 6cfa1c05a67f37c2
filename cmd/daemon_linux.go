//go:build linux

package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hydrate-cli/hydrate/internal/fileutil"
)

const daemonServiceName = "hydrate.service"

func init() {
	daemonInstallCmd.Flags().Bool("print", false, "Print the service configuration to stdout instead of installing it.")
	daemonInstallCmd.RunE = runInstallDaemon
	daemonUninstallCmd.RunE = runUninstallDaemon
}

func servicePath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "systemd", "user", daemonServiceName)
}

func runInstallDaemon(cmd *cobra.Command, args []string) error {
	executable, err := os.Executable()
	if err != nil {
		return err
	}

	service := fmt.Sprintf(daemonServiceTemplate, executable)
	if print, _ := cmd.Flags().GetBool("print"); print {
		fmt.Fprint(os.Stdout, service)
		fmt.Fprintln(os.Stderr, "WARNING: Service configuration printed but not installed.")
		return nil
	}

	path := servicePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := fileutil.AtomicWriteFile(path, []byte(service), 0644); err != nil {
		return err
	}

	if err := exec.Command("systemctl", "--user", "enable", "--now", daemonServiceName).Run(); err != nil {
		return err
	}

	fmt.Printf("Successfully installed hydrate daemon service. Configuration file created at: %s\n", path)
	return nil
}

func runUninstallDaemon(cmd *cobra.Command, args []string) error {
	// Ignore errors, as the service may not be running
	_ = exec.Command("systemctl", "--user", "disable", "--now", daemonServiceName).Run()

	if err := os.Remove(servicePath()); err != nil && !os.IsNotExist(err) {
		return err
	}

	fmt.Println("Successfully uninstalled hydrate daemon service.")
	return nil
}

const daemonServiceTemplate = `[Unit]
Description=hydrate water reminder daemon

[Service]
ExecStart=%s daemon run
Restart=always
Environment="HYDRATE_LOG_LEVEL=info"

[Install]
WantedBy=default.target
`
