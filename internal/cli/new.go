package cli

import (
	"io"

	"github.com/skel-labs/skel/internal/bootstrap"
	"github.com/skel-labs/skel/internal/branding"
	"github.com/skel-labs/skel/internal/config"
	"github.com/skel-labs/skel/internal/platform"
	"github.com/skel-labs/skel/internal/project"
	"github.com/skel-labs/skel/internal/scaffold"
	"github.com/skel-labs/skel/internal/template"
	"github.com/skel-labs/skel/internal/ui"
	"github.com/spf13/cobra"
)

type newOptions struct {
	description string
	noFrontend  bool
	noGit       bool
	force       bool
	ask         bool
	templateDir string
	noInstall   bool
	dryRun      bool
}

var newOpts newOptions

// Replaced in tests.
var (
	newRunner = func(stdout, stderr io.Writer) bootstrap.Runner {
		return &bootstrap.ExecRunner{Stdout: stdout, Stderr: stderr}
	}
	confirmReuse = ui.ConfirmReuse
)

func init() {
	f := newCmd.Flags()
	f.StringVarP(&newOpts.description, "description", "d", "", "Project description written to pyproject.toml")
	f.BoolVar(&newOpts.noFrontend, "no-frontend", false, "Skip frontend files and npm install (legacy: -nf)")
	f.BoolVar(&newOpts.noGit, "no-git", false, "Skip git init (legacy: -ng)")
	f.BoolVarP(&newOpts.force, "force", "f", false, "Write into an existing destination directory")
	f.BoolVar(&newOpts.ask, "ask", false, "Ask before writing into an existing destination directory")
	f.StringVar(&newOpts.templateDir, "template-dir", "", "Use a template bundle directory instead of the built-in one")
	f.BoolVar(&newOpts.noInstall, "no-install", false, "Copy files only; skip venv, npm, pip and git")
	f.BoolVar(&newOpts.dryRun, "dry-run", false, "Print the setup commands instead of running them")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <project_name> [directory]",
	Short: "Create a new project",
	Long: `Create a new project from the template.

The project is written to [directory], or ./<project_name> when omitted.
After copying, a virtualenv is created in .venv, npm and pip install the
dependencies, and a git repository is initialized.`,
	Example: `  ` + branding.CLIName() + ` new shop
  ` + branding.CLIName() + ` new shop ~/code/shop -d "Online shop" --no-frontend`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	var dir string
	if len(args) > 1 {
		dir = args[1]
	}
	p := printerFor(cmd)
	settings := config.Current()

	if err := project.ValidateName(name); err != nil {
		return err
	}
	path, err := project.ResolveDestination(name, dir)
	if err != nil {
		return err
	}

	templateDir := newOpts.templateDir
	if templateDir == "" {
		templateDir = settings.TemplateDir
	}
	bundle, err := template.Open(templateDir)
	if err != nil {
		return err
	}
	p.Debugf("Using template %s %s (%s)", bundle.Manifest.Name, bundle.Manifest.Version, bundle.Source)

	prep := project.PrepareOptions{Force: newOpts.force}
	if newOpts.ask {
		prep.Confirm = confirmReuse
	}
	dest, err := project.Prepare(path, prep)
	if err != nil {
		return err
	}
	if dest.Existed {
		p.Warnf("writing into existing directory %s", dest.Path)
	}

	p.Stepf("Creating %s in %s", name, dest.Path)
	result, err := scaffold.Generate(cmd.OutOrStdout(), bundle, scaffold.Options{
		ProjectName:  name,
		Description:  newOpts.description,
		SkipFrontend: newOpts.noFrontend,
	}, dest.Path)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		p.Warnf("%s", w)
	}
	p.Debugf("Wrote %d files", len(result.Files))

	bopts := bootstrap.Options{
		Dir:          dest.Path,
		VenvDir:      settings.VenvDir,
		Python:       settings.Python,
		NPM:          settings.NPM,
		Git:          settings.Git,
		SkipFrontend: newOpts.noFrontend,
		SkipGit:      newOpts.noGit,
	}

	switch {
	case newOpts.noInstall:
		p.Successf("Created %s.", name)
		printNextSteps(p, dest.Path, bopts, true)
		return nil
	case newOpts.dryRun:
		p.Successf("Created %s. Setup commands (not run):", name)
		for _, step := range bootstrap.Plan(bopts) {
			p.Plain("  %s", p.Command(step.Command))
		}
		return nil
	}

	p.Stepf("Setting up %s", name)
	b := &bootstrap.Bootstrapper{
		Runner: newRunner(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		Out:    cmd.OutOrStdout(),
	}
	if err := b.Run(cmd.Context(), bopts); err != nil {
		return err
	}

	p.Successf("Created %s.", name)
	printNextSteps(p, dest.Path, bopts, false)
	return nil
}

func printNextSteps(p *ui.Printer, dir string, opts bootstrap.Options, needInstall bool) {
	venv := opts.VenvDir
	if venv == "" {
		venv = ".venv"
	}
	python := platform.VenvPython(venv)

	p.Plain("")
	p.Plain("Next steps:")
	p.Plain("  cd %s", dir)
	if needInstall {
		for _, step := range bootstrap.Plan(opts) {
			if step.Name == bootstrap.StepPip {
				p.Plain("  %s -m pip install -e .[dev]", python)
				continue
			}
			p.Plain("  %s", step)
		}
	}
	if !opts.SkipFrontend {
		p.Plain("  npm run dev")
	}
	p.Plain("  %s src/manage.py runserver", python)
}
