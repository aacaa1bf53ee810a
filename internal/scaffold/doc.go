// Package scaffold writes a new project from a template bundle. It powers
// "skel new": the .env secret, the rewritten pyproject.toml and package.json,
// the src/ tree and config files, and (unless the frontend is skipped) the
// assets/, deployment/ and webpack tooling.
package scaffold
