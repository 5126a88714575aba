package tokens

import (
	"fmt"
	"regexp"
)

// MaxResolutionPasses bounds the nested-placeholder expansion loop. A default
// value or conditional body may itself contain another placeholder, so
// resolution repeats until a pass changes nothing; templates that keep
// expanding (including self-referential ones) are cut off here rather than
// looping forever.
const MaxResolutionPasses = 10

// Conditional and default bodies admit one level of nested brackets, so a
// fallback like "hello [NAME]" parses even when NAME never resolves. Deeper
// nesting relies on inner placeholders resolving first across passes.
const bracketBody = `((?:[^\[\]]|\[[^\[\]]*\])*)`

var (
	// [KEY?literal text] - kept when KEY has a value, removed otherwise.
	conditionalPattern = regexp.MustCompile(`\[([A-Z][A-Z0-9_]*)\?` + bracketBody + `\]`)
	// [KEY|default text] - value of KEY when present, the default otherwise.
	defaultPattern = regexp.MustCompile(`\[([A-Z][A-Z0-9_]*)\|` + bracketBody + `\]`)
	// [KEY] - value of KEY, left as-is when missing (error in strict mode).
	simplePattern = regexp.MustCompile(`\[([A-Z][A-Z0-9_]*)\]`)
)

// Result reports one resolution call. TokensFound may contain duplicates when
// a token appears more than once; TokensReplaced only lists tokens that had a
// non-empty value.
type Result struct {
	Original       string   `json:"original"`
	Replaced       string   `json:"replaced"`
	TokensFound    []string `json:"tokensFound"`
	TokensReplaced []string `json:"tokensReplaced"`
	Errors         []string `json:"errors"`
	Warnings       []string `json:"warnings"`
}

// Resolver substitutes bracket placeholders with caller-supplied values. A
// resolver is cheap and not safe for concurrent use; give each logical prompt
// its own instance.
type Resolver struct {
	dict   *Dictionary
	strict bool
}

// NewResolver returns a resolver backed by the given dictionary. The
// dictionary is only consulted to flag unknown keys, never to block them.
func NewResolver(dict *Dictionary) *Resolver {
	return &Resolver{dict: dict}
}

// SetStrictMode toggles whether an unresolved simple placeholder is recorded
// as an error. Conditional and default placeholders always have a defined
// fallback and never error.
func (r *Resolver) SetStrictMode(strict bool) {
	r.strict = strict
}

// Replace resolves placeholders in text against values. The three syntaxes
// are applied in precedence order (conditional, default, simple) within one
// pass, then passes repeat until the text is stable or MaxResolutionPasses is
// reached.
func (r *Resolver) Replace(text string, values map[string]string) Result {
	res := Result{
		Original:       text,
		TokensFound:    []string{},
		TokensReplaced: []string{},
		Errors:         []string{},
		Warnings:       []string{},
	}

	if r.dict != nil {
		for key := range values {
			if _, ok := r.dict.Get(key); !ok {
				res.Warnings = append(res.Warnings, fmt.Sprintf("unknown token [%s] supplied", key))
			}
		}
	}

	current := text
	stable := false
	for pass := 0; pass < MaxResolutionPasses; pass++ {
		next, found, replaced, errs := r.replaceOnce(current, values)
		// The first pass always contributes its bookkeeping; later passes
		// only matter when they actually changed the text, otherwise the
		// same unresolved placeholder would be recorded once per pass.
		if pass == 0 || next != current {
			res.TokensFound = append(res.TokensFound, found...)
			res.TokensReplaced = append(res.TokensReplaced, replaced...)
			res.Errors = append(res.Errors, errs...)
		}
		if next == current {
			stable = true
			break
		}
		current = next
	}
	if !stable {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("token resolution stopped after %d passes without reaching a stable result", MaxResolutionPasses))
	}

	res.Replaced = current
	return res
}

func (r *Resolver) replaceOnce(text string, values map[string]string) (out string, found, replaced, errs []string) {
	out = conditionalPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := conditionalPattern.FindStringSubmatch(match)
		key, body := groups[1], groups[2]
		found = append(found, key)
		if hasValue(values, key) {
			replaced = append(replaced, key)
			return body
		}
		return ""
	})

	out = defaultPattern.ReplaceAllStringFunc(out, func(match string) string {
		groups := defaultPattern.FindStringSubmatch(match)
		key, fallback := groups[1], groups[2]
		found = append(found, key)
		if hasValue(values, key) {
			replaced = append(replaced, key)
			return values[key]
		}
		return fallback
	})

	out = simplePattern.ReplaceAllStringFunc(out, func(match string) string {
		groups := simplePattern.FindStringSubmatch(match)
		key := groups[1]
		found = append(found, key)
		if hasValue(values, key) {
			replaced = append(replaced, key)
			return values[key]
		}
		if r.strict {
			errs = append(errs, fmt.Sprintf("Required token [%s] is not defined", key))
		}
		return match
	})

	return out, found, replaced, errs
}

func hasValue(values map[string]string, key string) bool {
	v, ok := values[key]
	return ok && v != ""
}
