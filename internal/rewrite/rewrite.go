package rewrite

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Rule replaces the first line inside Section that matches Pattern with Line.
// An empty Section means "outside any section", which is the whole file for
// formats without section headers.
type Rule struct {
	Section string
	Pattern *regexp.Regexp
	// Line builds the replacement from the matched line (without its line
	// ending). The returned text must not contain a line ending.
	Line func(matched string) string
}

// HeaderFunc reports whether line opens a new section and, if so, its name.
type HeaderFunc func(line string) (name string, ok bool)

// Rewriter applies Rules to a line stream.
type Rewriter struct {
	// Header detects section headers. Nil means the input has no sections.
	Header HeaderFunc
	Rules  []Rule
}

// Report describes what a rewrite did.
type Report struct {
	Applied []int // Indexes into Rules of the rules that fired.
	Lines   int
}

// Fired reports whether rule i replaced a line.
func (r Report) Fired(i int) bool {
	for _, a := range r.Applied {
		if a == i {
			return true
		}
	}
	return false
}

// Rewrite copies in to out, replacing matched lines.
func (rw *Rewriter) Rewrite(in io.Reader, out io.Writer) (Report, error) {
	var (
		report  Report
		current string // empty until the first header
		fired   = make([]bool, len(rw.Rules))
		br      = bufio.NewReader(in)
		bw      = bufio.NewWriter(out)
	)

	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return report, fmt.Errorf("reading line %d: %w", report.Lines+1, readErr)
		}
		if raw == "" && readErr != nil {
			break
		}
		report.Lines++

		body, eol := splitEOL(raw)
		if rw.Header != nil {
			if name, ok := rw.Header(body); ok {
				current = name
			}
		}

		replaced := false
		for i, rule := range rw.Rules {
			if fired[i] || rule.Section != current || !rule.Pattern.MatchString(body) {
				continue
			}
			if _, err := bw.WriteString(rule.Line(body) + eol); err != nil {
				return report, fmt.Errorf("writing line %d: %w", report.Lines, err)
			}
			fired[i] = true
			report.Applied = append(report.Applied, i)
			replaced = true
			break
		}
		if !replaced {
			if _, err := bw.WriteString(raw); err != nil {
				return report, fmt.Errorf("writing line %d: %w", report.Lines, err)
			}
		}

		if readErr != nil {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return report, fmt.Errorf("flushing output: %w", err)
	}
	return report, nil
}

// RewriteString is a convenience wrapper around Rewrite.
func (rw *Rewriter) RewriteString(s string) (string, Report, error) {
	var sb strings.Builder
	report, err := rw.Rewrite(strings.NewReader(s), &sb)
	return sb.String(), report, err
}

// splitEOL separates a line from its terminator ("\n", "\r\n" or none).
func splitEOL(line string) (body, eol string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	}
	return line, ""
}
