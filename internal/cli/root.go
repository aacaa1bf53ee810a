package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/skel-labs/skel/internal/bootstrap"
	"github.com/skel-labs/skel/internal/branding"
	"github.com/skel-labs/skel/internal/config"
	"github.com/skel-labs/skel/internal/project"
	"github.com/skel-labs/skel/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	noColor bool
	verbose bool
)

// Exit statuses returned by ExitCode.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitConflict   = 3
	ExitSubprocess = 4
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print extra detail")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates new Django projects with an optional TypeScript/webpack
frontend from a bundled template, then sets up the virtualenv, installs
dependencies and initializes git.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
// The error, if any, has already been printed.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		p := ui.NewPrinter(os.Stdout, os.Stderr, !noColor, verbose)
		p.Errorf("%v", err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var validationErr *project.ValidationError
	var conflictErr *project.ConflictError
	var subErr *bootstrap.SubprocessError
	switch {
	case errors.As(err, &validationErr):
		return ExitValidation
	case errors.As(err, &conflictErr):
		return ExitConflict
	case errors.As(err, &subErr):
		return ExitSubprocess
	default:
		return ExitFailure
	}
}

// legacyShorthands maps two-letter switches, which pflag cannot express, to
// their long forms.
var legacyShorthands = map[string]string{
	"-nf": "--no-frontend",
	"-ng": "--no-git",
}

// normalizeArgs rewrites legacy switches. Arguments after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	rewrite := true
	for i, a := range args {
		if a == "--" {
			rewrite = false
		}
		if long, ok := legacyShorthands[a]; ok && rewrite {
			a = long
		}
		out[i] = a
	}
	return out
}

func printerFor(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), !noColor, verbose)
}
