package esendpoints

import (
	"regexp"
)

// A Route is one path shape of an endpoint: its template and the anchored pattern compiled from it.
type Route struct {
	template string
	pattern  *regexp.Regexp
	// capture group name -> path part name
	captures map[string]string
}

// NewRoute compiles a route template. See BuildPattern for the template syntax.
func NewRoute(template string) (Route, error) {
	pattern, captures, err := BuildPattern(template)
	if err != nil {
		return Route{}, err
	}
	return Route{
		template: template,
		pattern:  pattern,
		captures: captures}, nil
}

// Template returns the template the route was compiled from, eg. "/{index}/_search".
func (r Route) Template() string {
	return r.template
}

// Pattern returns the compiled pattern. It is safe for concurrent use but must not be modified.
func (r Route) Pattern() *regexp.Regexp {
	return r.pattern
}

// PathPartNames returns the names of the route's path parts, in the order they appear in the template.
func (r Route) PathPartNames() []string {
	names := make([]string, 0, len(r.captures))
	for _, capture := range r.pattern.SubexpNames() {
		if name, ok := r.captures[capture]; ok {
			names = append(names, name)
		}
	}
	return names
}

// match calls fn with each path part extracted from path, in template order. It returns false (having made no calls)
// if the path doesn't have this route's shape.
func (r Route) match(path string, fn func(name, value string)) bool {
	m := r.pattern.FindStringSubmatch(path)
	if m == nil {
		return false
	}
	for i, capture := range r.pattern.SubexpNames() {
		if name, ok := r.captures[capture]; ok {
			fn(name, m[i])
		}
	}
	return true
}
