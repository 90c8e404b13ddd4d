package config

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// MaxSubstitutionDepth caps nested ${var} expansion.
const MaxSubstitutionDepth = 64

// Substitute replaces every ${name} in s with the text of property name,
// itself substituted, or with the environment variable name when no such
// property is registered. Unresolved references stay verbatim. $${ yields
// a literal ${. A reference to a property that is already being expanded
// is left verbatim, and expansion deeper than MaxSubstitutionDepth stops
// with the partially expanded text. Both are logged as warnings.
func (c *Config) Substitute(s string) string {
	r := &substitution{
		c:        c,
		visiting: make(map[string]bool),
		resolved: make(map[string]string),
	}
	return r.expand(s, 0)
}

// substitution holds the state of one top-level Substitute call. Each
// property is expanded at most once per call.
type substitution struct {
	c        *Config
	visiting map[string]bool
	resolved map[string]string
}

func (r *substitution) expand(s string, depth int) string {
	if !strings.Contains(s, "${") {
		return s
	}
	if depth >= MaxSubstitutionDepth {
		r.c.log().Warn("substitution depth limit reached",
			zap.String("variable", s),
			zap.Int("depth", depth))
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, "$${"):
			b.WriteString("${")
			i += 3
		case strings.HasPrefix(rest, "${"):
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				b.WriteString(rest)
				return b.String()
			}
			name := rest[2:end]
			if repl, ok := r.resolve(name, depth); ok {
				b.WriteString(repl)
			} else {
				b.WriteString(rest[:end+1])
			}
			i += end + 1
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

func (r *substitution) resolve(name string, depth int) (string, bool) {
	if name == "" {
		r.unresolved(name, depth)
		return "", false
	}
	if text, ok := r.resolved[name]; ok {
		return text, true
	}
	if r.visiting[name] {
		r.c.log().Warn("cyclic variable reference",
			zap.String("variable", name),
			zap.Int("depth", depth))
		return "", false
	}

	raw, ok := r.c.Get(name)
	if !ok {
		if env, ok := os.LookupEnv(name); ok {
			return env, true
		}
		r.unresolved(name, depth)
		return "", false
	}
	mv, err := toCell(raw)
	if err != nil {
		r.unresolved(name, depth)
		return "", false
	}
	vs, err := mv.ValuesAsString()
	if err != nil {
		r.unresolved(name, depth)
		return "", false
	}

	r.visiting[name] = true
	text := r.expand(strings.Join(vs, ","), depth+1)
	delete(r.visiting, name)
	r.resolved[name] = text
	return text, true
}

func (r *substitution) unresolved(name string, depth int) {
	r.c.log().Warn("unresolved variable",
		zap.String("variable", name),
		zap.Int("depth", depth))
}
