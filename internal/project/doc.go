// Package project validates the identity of a new project and prepares the
// directory it will be generated into. Nothing in this package writes files
// other than creating the destination directory itself.
package project
