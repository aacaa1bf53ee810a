// Package template loads the project template bundle: the files a new project
// is generated from, plus the template.yaml manifest that lists which
// directories and files make up the backend and frontend parts. The default
// bundle is embedded in the binary; a directory on disk can replace it.
// Manifests are validated against an embedded JSON Schema before use.
package template
