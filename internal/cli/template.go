package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skel-labs/skel/internal/config"
	"github.com/skel-labs/skel/internal/template"
	"github.com/spf13/cobra"
)

func init() {
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateValidateCmd)
	rootCmd.AddCommand(templateCmd)
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Inspect project templates",
}

var templateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active template manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := template.Open(config.Current().TemplateDir)
		if err != nil {
			return err
		}
		m := b.Manifest
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Name:        %s\n", m.Name)
		fmt.Fprintf(out, "Version:     %s\n", m.Version)
		if m.Description != "" {
			fmt.Fprintf(out, "Description: %s\n", m.Description)
		}
		fmt.Fprintf(out, "Source:      %s\n", b.Source)
		fmt.Fprintf(out, "Descriptors: %s", m.Descriptors.Project)
		if m.Descriptors.Package != "" {
			fmt.Fprintf(out, ", %s", m.Descriptors.Package)
		}
		fmt.Fprintln(out)
		printGroup(cmd, "Base", m.Base)
		printGroup(cmd, "Frontend", m.Frontend)
		return nil
	},
}

func printGroup(cmd *cobra.Command, title string, g template.Group) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, d := range g.Directories {
		if len(d.Exclude) > 0 {
			fmt.Fprintf(out, "  %s/ (excluding %s)\n", d.Path, strings.Join(d.Exclude, ", "))
		} else {
			fmt.Fprintf(out, "  %s/\n", d.Path)
		}
	}
	for _, f := range g.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(g.Directories) == 0 && len(g.Files) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
}

var templateValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a template bundle",
	Long: `Validate the template.yaml of a bundle directory against the schema and
check that every file and directory it lists exists. Without [dir], the
configured template_dir or the built-in template is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.Current().TemplateDir
		if len(args) == 1 {
			dir = args[0]
		}

		p := printerFor(cmd)
		b, err := template.Open(dir)
		if err != nil {
			var manifestErr *template.ManifestError
			if errors.As(err, &manifestErr) {
				for _, issue := range manifestErr.Issues {
					p.Plain("  %s", issue)
				}
			}
			return err
		}
		p.Successf("%s: %s %s is valid", b.Source, b.Manifest.Name, b.Manifest.Version)
		return nil
	},
}
