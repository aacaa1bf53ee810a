package rewrite

import (
	"regexp"
	"strings"
)

// ProjectSection is the pyproject.toml table holding the package identity.
const ProjectSection = "project"

var (
	tomlNameKey        = regexp.MustCompile(`^name *=`)
	tomlDescriptionKey = regexp.MustCompile(`^description *=`)
)

// TOMLHeader recognizes "[table]" and "[[array.table]]" header lines.
func TOMLHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(trimmed, "]") {
		return "", false
	}
	return strings.TrimSpace(strings.Trim(trimmed, "[]")), true
}

// PyProject returns a Rewriter that sets name and description in the
// [project] table of a pyproject.toml.
func PyProject(name, description string) *Rewriter {
	return &Rewriter{
		Header: TOMLHeader,
		Rules: []Rule{
			{
				Section: ProjectSection,
				Pattern: tomlNameKey,
				Line:    func(string) string { return "name = " + QuoteTOML(name) },
			},
			{
				Section: ProjectSection,
				Pattern: tomlDescriptionKey,
				Line:    func(string) string { return "description = " + QuoteTOML(description) },
			},
		},
	}
}

// QuoteTOML renders s as a TOML basic string.
func QuoteTOML(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
