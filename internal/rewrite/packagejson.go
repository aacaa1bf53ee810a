package rewrite

import (
	"regexp"
	"strconv"
)

var jsonNameKey = regexp.MustCompile(`^(\s*)"name"`)

// PackageJSON returns a Rewriter that sets the first "name" entry of a
// package.json, keeping its indentation.
func PackageJSON(name string) *Rewriter {
	return &Rewriter{
		Rules: []Rule{{
			Pattern: jsonNameKey,
			Line: func(matched string) string {
				indent := jsonNameKey.FindStringSubmatch(matched)[1]
				return indent + `"name": ` + strconv.Quote(name) + ","
			},
		}},
	}
}
