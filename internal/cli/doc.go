// Package cli defines the Cobra command tree for the skel CLI. Each file
// in this package registers one top-level command (new, template, doctor,
// config, version) with the root command. Command implementations delegate
// to internal packages and only handle flag parsing, output and prompting.
package cli
