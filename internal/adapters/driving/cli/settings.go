package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show effective settings",
	Long: `Shows the settings evship runs with: values from the config file,
EVSHIP_* environment overrides and built-in defaults. The password is never shown.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(cmd); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	if path := settingsService.Path(); path != "" {
		cmd.Printf("Config: %s\n", path)
	}
	cmd.Println()

	cmd.Println("[Files]")
	cmd.Printf("  Sources:   %s\n", settings.SourcesFile)
	cmd.Printf("  Error log: %s\n", settings.ErrorLog)
	cmd.Println()

	idx := settings.Index
	cmd.Println("[Index]")
	cmd.Printf("  URL: %s\n", idx.URL)
	if idx.Username != "" {
		cmd.Printf("  Username: %s\n", idx.Username)
		if idx.Password != "" {
			cmd.Printf("  Password: (set)\n")
		} else {
			cmd.Printf("  Password: (not set)\n")
		}
	} else {
		cmd.Printf("  Auth: none\n")
	}
	if idx.Name != "" {
		cmd.Printf("  Index: %s\n", idx.Name)
	} else {
		cmd.Printf("  Index: %s-YYYY.MM (monthly)\n", idx.Prefix)
	}
	cmd.Printf("  Timeout: %s\n", idx.Timeout)
	if idx.RequestsPerSecond > 0 {
		cmd.Printf("  Rate limit: %g requests/s\n", idx.RequestsPerSecond)
	} else {
		cmd.Printf("  Rate limit: unlimited\n")
	}
	if idx.Gzip {
		cmd.Printf("  Gzip: yes\n")
	} else {
		cmd.Printf("  Gzip: no\n")
	}
	cmd.Println()

	cmd.Println("[Metrics]")
	if settings.Metrics.Enabled() {
		cmd.Printf("  Textfile: %s\n", settings.Metrics.Textfile)
	} else {
		cmd.Printf("  Textfile: (disabled)\n")
	}

	return nil
}

func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
