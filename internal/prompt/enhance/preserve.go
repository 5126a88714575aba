package enhance

import (
	"fmt"
	"regexp"
	"strings"

	"promptserver/internal/prompt/validation"
)

// The preservation pass recognises four placeholder spellings so enhancement
// prose can never corrupt one mid-pipeline.
var placeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\{([A-Z][A-Z0-9_]*)\}`),
	regexp.MustCompile(`\[([A-Z][A-Z0-9_]*)\]`),
	regexp.MustCompile(`__([A-Z][A-Z0-9_]*)__`),
	regexp.MustCompile(`%([A-Z][A-Z0-9_]*)%`),
}

type maskedToken struct {
	marker   string
	original string
	key      string
}

// EnhancePreservingTokens masks every placeholder behind an opaque marker,
// runs the normal enhancement, then restores each marker: with the supplied
// value when one exists, or with the original placeholder text verbatim plus
// an unresolved-token warning when it does not.
func EnhancePreservingTokens(prompt string, opts Options, values map[string]string) Result {
	masked := prompt
	var tokens []maskedToken

	for _, pattern := range placeholderPatterns {
		masked = pattern.ReplaceAllStringFunc(masked, func(match string) string {
			key := pattern.FindStringSubmatch(match)[1]
			marker := fmt.Sprintf("@@TKN%d@@", len(tokens))
			tokens = append(tokens, maskedToken{marker: marker, original: match, key: key})
			return marker
		})
	}

	res := Enhance(masked, opts)
	res.Original = prompt

	for _, tok := range tokens {
		replacement := tok.original
		if v, ok := values[tok.key]; ok && v != "" {
			replacement = v
			res.KeyImprovements = append(res.KeyImprovements,
				fmt.Sprintf("Resolved token %s", tok.key))
		} else {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("unresolved token: %s", tok.key))
		}
		res.Enhanced = strings.ReplaceAll(res.Enhanced, tok.marker, replacement)
		res.ExpectedResult = strings.ReplaceAll(res.ExpectedResult, tok.marker, replacement)
	}

	// Score the text the caller actually receives, not the masked form.
	res.QualityScore = validation.Validate(res.Enhanced, "").Score
	return res
}
