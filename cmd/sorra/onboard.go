package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/sorra/internal/config"
	"github.com/mark3labs/sorra/internal/handoff"
	"github.com/mark3labs/sorra/internal/logger"
	"github.com/mark3labs/sorra/internal/onboarding"
	"github.com/mark3labs/sorra/internal/profile"
	tuionboarding "github.com/mark3labs/sorra/internal/tui/onboarding"
	"github.com/spf13/cobra"
)

var onboardFlags struct {
	output    string
	format    string
	resumeDir string
	from      string
}

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Run the onboarding wizard",
	Long: `Run the full-screen onboarding wizard.

The wizard collects your basic information, an optional resume (PDF, DOC or
DOCX up to 5MB) and your job preferences. When you leave the completion
screen the profile is written to --output (stdout by default).`,
	RunE: runOnboard,
}

func init() {
	onboardCmd.Flags().StringVarP(&onboardFlags.output, "output", "o", "", "File or directory to write the profile to (default: stdout)")
	onboardCmd.Flags().StringVarP(&onboardFlags.format, "format", "f", "", "Export format: yaml or json (default: from config)")
	onboardCmd.Flags().StringVar(&onboardFlags.resumeDir, "resume-dir", "", "Directory the resume browser opens in (default: working directory)")
	onboardCmd.Flags().StringVar(&onboardFlags.from, "from", "", "Pre-fill the wizard from a previously exported profile")
}

// applyOnboardFlags overrides cfg with the flags set on cmd, then validates.
func applyOnboardFlags(cmd *cobra.Command, cfg *config.Config) error {
	// Flags take precedence over config
	if cmd.Flags().Changed("output") {
		cfg.Output = onboardFlags.output
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = strings.ToLower(onboardFlags.format)
	}
	if cmd.Flags().Changed("resume-dir") {
		cfg.ResumeDir = onboardFlags.resumeDir
	}
	return cfg.Validate()
}

func runOnboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyOnboardFlags(cmd, cfg); err != nil {
		return err
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	var draft profile.Draft
	if onboardFlags.from != "" {
		rec, err := handoff.ReadFile(onboardFlags.from)
		if err != nil {
			return fmt.Errorf("failed to read previous profile: %w", err)
		}
		draft = rec.Draft()
		logger.Info("onboard: pre-filled from %s", onboardFlags.from)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := tuionboarding.Run(ctx, tuionboarding.Options{Config: cfg, Draft: draft})
	if errors.Is(err, onboarding.ErrCancelled) {
		fmt.Fprintln(os.Stderr, "Onboarding cancelled. Nothing was saved.")
		return nil
	}
	if err != nil {
		return err
	}

	rec := handoff.FromDraft(res.DraftID, res.Draft, time.Now())
	dest, err := handoff.Deliver(cfg, rec)
	if err != nil {
		return fmt.Errorf("failed to export profile: %w", err)
	}

	if dest != "stdout" {
		fmt.Fprintf(os.Stderr, "Profile saved to: %s\n", dest)
	}
	fmt.Fprintf(os.Stderr, "Head to your dashboard: %s\n", cfg.DashboardURL)

	return nil
}
