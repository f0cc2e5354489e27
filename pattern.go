package esendpoints

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/monzo/terrors"
)

// pathPartExpr matches a single path segment. Path parts never span a separator.
const pathPartExpr = `[^/]+`

// BuildPattern compiles a route template such as "/_nodes/{node_id}/shutdown" into an anchored regular expression
// with one named capture per placeholder, returning it alongside a map from capture name to the placeholder's
// original name.
//
// Capture names are the placeholder names with every character outside [A-Za-z0-9] replaced by '0', so the template
// above compiles to `^/_nodes/(?<node0id>[^/]+)/shutdown$` with the mapping {"node0id": "node_id"}.
//
// A malformed template (an unterminated or empty placeholder, or a stray '}') or one in which two placeholders map
// to the same capture name is rejected. Templates come from a trusted table, so either is a defect in that table.
func BuildPattern(template string) (*regexp.Regexp, map[string]string, error) {
	captures := map[string]string{}
	expr := strings.Builder{}
	expr.WriteByte('^')

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if err := writeLiteral(&expr, template, rest); err != nil {
				return nil, nil, err
			}
			break
		}
		if err := writeLiteral(&expr, template, rest[:open]); err != nil {
			return nil, nil, err
		}

		rest = rest[open+1:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, nil, malformedTemplate(template, "unterminated path part")
		}
		name := rest[:end]
		rest = rest[end+1:]
		switch {
		case name == "":
			return nil, nil, malformedTemplate(template, "empty path part")
		case strings.IndexByte(name, '{') >= 0:
			return nil, nil, malformedTemplate(template, "nested path part")
		}

		capture := captureName(name)
		if other, ok := captures[capture]; ok {
			return nil, nil, terrors.InternalService(ErrDuplicatePathPart,
				fmt.Sprintf("Path parts %q and %q both compile to capture %q", other, name, capture),
				map[string]string{
					"template":  template,
					"path_part": name})
		}
		captures[capture] = name
		expr.WriteString("(?<")
		expr.WriteString(capture)
		expr.WriteByte('>')
		expr.WriteString(pathPartExpr)
		expr.WriteByte(')')
	}
	expr.WriteByte('$')

	re, err := regexp.Compile(expr.String())
	if err != nil {
		// Not expected: literals are quoted and capture names are alphanumeric
		return nil, nil, terrors.WrapWithCode(err, map[string]string{
			"template": template}, terrors.ErrInternalService+"."+ErrMalformedTemplate)
	}
	return re, captures, nil
}

func writeLiteral(expr *strings.Builder, template, literal string) error {
	if strings.IndexByte(literal, '}') >= 0 {
		return malformedTemplate(template, "unbalanced '}'")
	}
	expr.WriteString(regexp.QuoteMeta(literal))
	return nil
}

// captureName maps a path part name onto a valid, deterministic capture group name
func captureName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '0'
		}
	}, name)
}

func malformedTemplate(template, reason string) error {
	return terrors.InternalService(ErrMalformedTemplate,
		fmt.Sprintf("Malformed route template %q: %s", template, reason),
		map[string]string{
			"template": template})
}
