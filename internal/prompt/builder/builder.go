// Package builder assembles a prompt from typed fragments instead of free
// text. Components form a small tree (text, token, conditional, composite)
// that is built up through chained calls and consumed once by Build.
package builder

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the last-resort clamp on the assembled prompt. Hitting
// it records a warning; it is not a normal path.
const DefaultMaxLength = 4000

// Operator compares a token value inside a conditional component.
type Operator string

const (
	OpExists    Operator = "exists"
	OpEquals    Operator = "equals"
	OpNotEquals Operator = "not_equals"
	OpContains  Operator = "contains"
)

type componentKind int

const (
	kindText componentKind = iota
	kindToken
	kindConditional
	kindComposite
)

// Component is one node of the prompt tree. Construct nodes with Text, Token,
// Conditional, and Composite; the zero value is an empty text node.
type Component struct {
	kind      componentKind
	text      string
	key       string
	op        Operator
	operand   string
	then      *Component
	otherwise *Component
	children  []Component
}

// Text returns a literal text component.
func Text(s string) Component {
	return Component{kind: kindText, text: s}
}

// Token returns a placeholder component resolved against the builder's token
// map at build time. Unresolved tokens keep their literal [KEY] form.
func Token(key string) Component {
	return Component{kind: kindToken, key: key}
}

// Conditional returns a component that renders then when the comparison
// holds and nothing otherwise.
func Conditional(key string, op Operator, operand string, then Component) Component {
	return Component{kind: kindConditional, key: key, op: op, operand: operand, then: &then}
}

// ConditionalElse is Conditional with an else branch.
func ConditionalElse(key string, op Operator, operand string, then, otherwise Component) Component {
	c := Conditional(key, op, operand, then)
	c.otherwise = &otherwise
	return c
}

// Composite groups child components; their rendered results are joined with
// a single space, skipping children that render to nothing.
func Composite(children ...Component) Component {
	return Component{kind: kindComposite, children: children}
}

// Result is the outcome of Build.
type Result struct {
	Prompt   string   `json:"prompt"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Builder accumulates components and a token map. It is not safe for
// concurrent use; build one prompt per instance.
type Builder struct {
	components []Component
	tokens     map[string]string
	maxLength  int
}

// New returns an empty builder with the default length clamp.
func New() *Builder {
	return &Builder{
		tokens:    make(map[string]string),
		maxLength: DefaultMaxLength,
	}
}

// Add appends any component.
func (b *Builder) Add(c Component) *Builder {
	b.components = append(b.components, c)
	return b
}

// Text appends a literal fragment.
func (b *Builder) Text(s string) *Builder { return b.Add(Text(s)) }

// Token appends a placeholder fragment.
func (b *Builder) Token(key string) *Builder { return b.Add(Token(key)) }

// Conditional appends a conditional fragment.
func (b *Builder) Conditional(key string, op Operator, operand string, then Component) *Builder {
	return b.Add(Conditional(key, op, operand, then))
}

// Composite appends a grouped fragment.
func (b *Builder) Composite(children ...Component) *Builder {
	return b.Add(Composite(children...))
}

// WithTokens merges values into the builder's token map.
func (b *Builder) WithTokens(values map[string]string) *Builder {
	for k, v := range values {
		b.tokens[k] = v
	}
	return b
}

// WithToken sets a single token value.
func (b *Builder) WithToken(key, value string) *Builder {
	b.tokens[key] = value
	return b
}

// MaxLength overrides the assembled-prompt clamp.
func (b *Builder) MaxLength(n int) *Builder {
	if n > 0 {
		b.maxLength = n
	}
	return b
}

// Style appends an art style fragment.
func (b *Builder) Style(style string) *Builder {
	return b.Text(fmt.Sprintf("%s style", style))
}

// Quality appends a quality fragment.
func (b *Builder) Quality(tier string) *Builder {
	return b.Text(fmt.Sprintf("%s quality", tier))
}

// AspectRatio appends an aspect ratio hint.
func (b *Builder) AspectRatio(ratio string) *Builder {
	return b.Text(fmt.Sprintf("aspect ratio %s", ratio))
}

// Lighting appends a lighting fragment.
func (b *Builder) Lighting(description string) *Builder {
	return b.Text(fmt.Sprintf("%s lighting", description))
}

// Composition appends a composition fragment.
func (b *Builder) Composition(description string) *Builder {
	return b.Text(fmt.Sprintf("%s composition", description))
}

// Colors appends a color palette fragment.
func (b *Builder) Colors(description string) *Builder {
	return b.Text(fmt.Sprintf("%s color palette", description))
}

var placeholderPattern = regexp.MustCompile(`\[([A-Z][A-Z0-9_]*)\]`)

// Build walks the component tree depth-first, joins the top-level results
// with single spaces, and reports missing token values found in the raw
// component text. Processing is synchronous.
func (b *Builder) Build() Result {
	res := Result{Errors: []string{}, Warnings: []string{}}

	var parts []string
	for _, c := range b.components {
		if rendered, ok := b.render(c); ok {
			parts = append(parts, rendered)
		}
	}
	prompt := strings.Join(parts, " ")

	// Validate placeholders against the raw component text, before any
	// substitution, so conditionally skipped branches are still checked.
	for _, key := range b.rawPlaceholders() {
		if b.tokens[key] == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("token [%s] has no value", key))
		}
	}

	if len(prompt) > b.maxLength {
		cut := b.maxLength
		// Back up to a rune boundary so the clamp never splits a
		// multi-byte character.
		for cut > 0 && !utf8.RuneStart(prompt[cut]) {
			cut--
		}
		prompt = prompt[:cut] + "..."
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("prompt truncated to %d characters", b.maxLength))
	}

	res.Prompt = prompt
	return res
}

// render returns the processed text for a component; ok is false when the
// component produces nothing (a conditional with no matching branch).
func (b *Builder) render(c Component) (string, bool) {
	switch c.kind {
	case kindText:
		return c.text, true
	case kindToken:
		if v, ok := b.tokens[c.key]; ok && v != "" {
			return v, true
		}
		return "[" + c.key + "]", true
	case kindConditional:
		if b.evaluate(c) {
			return b.render(*c.then)
		}
		if c.otherwise != nil {
			return b.render(*c.otherwise)
		}
		return "", false
	case kindComposite:
		var parts []string
		for _, child := range c.children {
			if rendered, ok := b.render(child); ok {
				parts = append(parts, rendered)
			}
		}
		return strings.Join(parts, " "), true
	}
	return "", false
}

func (b *Builder) evaluate(c Component) bool {
	value := b.tokens[c.key]
	switch c.op {
	case OpExists:
		return value != ""
	case OpEquals:
		return value == c.operand
	case OpNotEquals:
		return value != c.operand
	case OpContains:
		return c.operand != "" && strings.Contains(value, c.operand)
	}
	return false
}

func (b *Builder) rawPlaceholders() []string {
	seen := make(map[string]struct{})
	var keys []string
	var walk func(c Component)
	walk = func(c Component) {
		for _, match := range placeholderPattern.FindAllStringSubmatch(c.text, -1) {
			if _, ok := seen[match[1]]; !ok {
				seen[match[1]] = struct{}{}
				keys = append(keys, match[1])
			}
		}
		if c.then != nil {
			walk(*c.then)
		}
		if c.otherwise != nil {
			walk(*c.otherwise)
		}
		for _, child := range c.children {
			walk(child)
		}
	}
	for _, c := range b.components {
		walk(c)
	}
	return keys
}
