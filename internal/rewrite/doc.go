// Package rewrite performs section-scoped, line-oriented substitutions on
// descriptor files. A Rewriter walks its input once, tracking the section the
// current line belongs to, and replaces the first line of a section that
// matches each Rule. Every other byte, line endings included, is copied
// through unchanged.
package rewrite
