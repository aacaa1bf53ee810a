package cli

import (
	"errors"

	"github.com/skel-labs/skel/internal/bootstrap"
	"github.com/skel-labs/skel/internal/config"
	"github.com/skel-labs/skel/internal/template"
	"github.com/spf13/cobra"
)

// newDoctor is replaced in tests.
var newDoctor = func() *bootstrap.Doctor { return &bootstrap.Doctor{} }

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that python, npm and git are available",
	Long: `Check that the tools used to set up a new project are on PATH and
recent enough, and that the active template loads.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := config.Current()
		p := printerFor(cmd)
		out := cmd.OutOrStdout()

		ok := newDoctor().Check(cmd.Context(), out, bootstrap.Tools(bootstrap.Options{
			Python: s.Python,
			NPM:    s.NPM,
			Git:    s.Git,
		}))

		p.Plain("Template check:")
		if b, err := template.Open(s.TemplateDir); err != nil {
			p.Plain("  [FAIL] %v", err)
			ok = false
		} else {
			p.Plain("  [ OK ] %s %s (%s)", b.Manifest.Name, b.Manifest.Version, b.Source)
		}

		if !ok {
			return errors.New("some checks failed")
		}
		p.Successf("All checks passed.")
		return nil
	},
}
