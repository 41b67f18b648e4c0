package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/sorra/internal/logger"
	"github.com/mark3labs/sorra/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ █▀█ █▀█ █▀█ ▄▀█"
	logoText2 = "▄▄█ █▄█ █▀▄ █▀▄ █▀█"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sorra",
	Short: "Set up your Sorra job-matching profile from the terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

sorra walks you through building your job-matching profile: basic details,
an optional resume, and your job preferences. The finished profile is
exported as YAML or JSON for the Sorra dashboard to pick up.`

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(setupCmd)
}
