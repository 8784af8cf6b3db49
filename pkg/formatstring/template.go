package formatstring

import (
	"regexp"
	"strings"
)

// Names available to every template through the render context. They are
// never turned into input sockets.
var builtinContext = map[string]struct{}{
	"datetime": {},
	"now":      {},
	"random":   {},
	"math":     {},
}

var (
	jinjaExprRe   = regexp.MustCompile(`\{\{\s*([\w.]+)(?:\|[\w\s]+)?(?:\.[^()]+\(\))?\s*\}\}`)
	simpleFieldRe = regexp.MustCompile(`\{(\w+)\}`)
	jinjaBlockRe  = regexp.MustCompile(`\{%.*?%\}`)
	blockVarRe    = regexp.MustCompile(`\b(\w+)\|`)
	jinjaKeywords = map[string]struct{}{"if": {}, "else": {}, "elif": {}, "for": {}, "in": {}}
)

// ExtractKeys returns the variable names a template requires, in first
// occurrence order, deduplicated. Both simple {name} fields and Jinja-style
// {{ name }} expressions are recognized; names from the builtin render
// context are excluded.
func ExtractKeys(template string) []string {
	var keys []string
	seen := make(map[string]struct{})

	add := func(raw string) {
		name := strings.TrimSpace(strings.SplitN(strings.SplitN(raw, "|", 2)[0], ".", 2)[0])
		if name == "" {
			return
		}
		if _, builtin := builtinContext[name]; builtin {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		keys = append(keys, name)
	}

	for _, m := range jinjaExprRe.FindAllStringSubmatch(template, -1) {
		add(m[1])
	}
	for _, m := range simpleFieldRe.FindAllStringSubmatch(template, -1) {
		add(m[1])
	}
	// Filtered variables inside {% ... %} control structures.
	for _, block := range jinjaBlockRe.FindAllString(template, -1) {
		for _, m := range blockVarRe.FindAllStringSubmatch(block, -1) {
			name := m[1]
			if strings.HasPrefix(name, "end") {
				continue
			}
			if _, kw := jinjaKeywords[name]; kw {
				continue
			}
			add(name)
		}
	}

	return keys
}
