// Package enhance appends missing style, lighting, composition, and quality
// phrasing to a user prompt and synthesises a matching negative prompt. The
// whole pipeline is deterministic: same prompt and options, same output.
package enhance

import (
	"fmt"
	"strings"

	"promptserver/internal/prompt/validation"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxExtraEnhancements caps how many per-category flavour phrases are added.
const maxExtraEnhancements = 3

// leadClauseLimit bounds the prompt excerpt quoted in the expected-result
// sentence.
const leadClauseLimit = 60

// Options selects which enhancement passes run.
type Options struct {
	Category            Category    `json:"category"`
	ImageType           ImageType   `json:"imageType,omitempty"`
	Quality             QualityTier `json:"quality"`
	NegativePrompt      bool        `json:"negativePrompt"`
	TechnicalSpecs      bool        `json:"technicalSpecs"`
	StyleDescriptors    bool        `json:"styleDescriptors"`
	CompositionGuidance bool        `json:"compositionGuidance"`
}

// Result is the full enhancement outcome.
type Result struct {
	Original          string    `json:"original"`
	Enhanced          string    `json:"enhanced"`
	NegativePrompt    string    `json:"negativePrompt"`
	KeyImprovements   []string  `json:"keyImprovements"`
	ExpectedResult    string    `json:"expectedResult"`
	QualityScore      int       `json:"qualityScore"`
	DetectedImageType ImageType `json:"detectedImageType"`
	Warnings          []string  `json:"warnings"`
}

// Label renders the image type for human-readable output. A fresh caser per
// call: cases.Caser carries state and is not safe for concurrent use.
func (t ImageType) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "-", " "))
}

// DetectImageType returns the declared type when set, otherwise the first
// type whose keyword appears in the prompt, otherwise the category default.
func DetectImageType(prompt string, category Category, declared ImageType) ImageType {
	if declared != "" {
		return declared
	}
	lower := strings.ToLower(prompt)
	for _, entry := range imageTypeKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Type
			}
		}
	}
	if t, ok := categoryDefaultType[category]; ok {
		return t
	}
	return fallbackImageType
}

// DetectCompositionType classifies the implied shot; CompositionScene is the
// fallback when no rule matches.
func DetectCompositionType(prompt string) CompositionType {
	lower := strings.ToLower(prompt)
	for _, rule := range compositionRules {
		if rule.Pattern.MatchString(lower) {
			return rule.Type
		}
	}
	return CompositionScene
}

// Enhance runs the full pipeline over prompt. It is total: any input,
// including the empty string, yields a well-formed result.
func Enhance(prompt string, opts Options) Result {
	original := strings.TrimSpace(prompt)
	lower := strings.ToLower(original)

	imageType := DetectImageType(original, opts.Category, opts.ImageType)
	compType := DetectCompositionType(original)
	check := validation.Validate(original, "")

	res := Result{
		Original:          original,
		DetectedImageType: imageType,
		KeyImprovements:   []string{},
		Warnings:          []string{},
	}
	res.Warnings = append(res.Warnings, check.Warnings...)

	var fragments []string
	if original != "" {
		fragments = append(fragments, original)
	}

	if opts.StyleDescriptors && !strings.Contains(lower, typeNameWords[imageType]) {
		fragments = append(fragments, styleDescriptors[imageType])
		res.KeyImprovements = append(res.KeyImprovements,
			fmt.Sprintf("Added a %s style descriptor", imageType.Label()))
	}

	if opts.TechnicalSpecs {
		if spec, ok := technicalSpecs[opts.Category]; ok {
			if !containsAny(lower, "lighting", "light") {
				fragments = append(fragments, spec.Lighting)
				res.KeyImprovements = append(res.KeyImprovements, "Added category lighting guidance")
			}
			if !containsAny(lower, "resolution", "quality") {
				fragments = append(fragments, spec.Quality)
				res.KeyImprovements = append(res.KeyImprovements, "Added resolution and finish cues")
			}
		} else if lighting, ok := genericLighting[imageType]; ok && !check.Breakdown.HasLighting {
			fragments = append(fragments, lighting)
			res.KeyImprovements = append(res.KeyImprovements,
				fmt.Sprintf("Added %s lighting guidance", imageType.Label()))
		}
	}

	tier := opts.Quality
	if tier == "" {
		tier = QualityStandard
	}
	if modifier, ok := qualityModifiers[tier]; ok && !containsAny(lower, "quality", "resolution") {
		fragments = append(fragments, modifier)
		res.KeyImprovements = append(res.KeyImprovements,
			fmt.Sprintf("Applied the %s quality tier", tier))
	}

	if opts.CompositionGuidance && !containsAny(lower, "composition", "angle", "frame") {
		fragments = append(fragments, compositionGuidance[compType])
		res.KeyImprovements = append(res.KeyImprovements,
			fmt.Sprintf("Added %s composition guidance", compType))
	}

	if extras, ok := categoryEnhancements[opts.Category]; ok {
		added := 0
		for _, extra := range extras {
			if added >= maxExtraEnhancements {
				break
			}
			if strings.Contains(lower, strings.ToLower(extra)) {
				continue
			}
			fragments = append(fragments, extra)
			added++
		}
		if added > 0 {
			res.KeyImprovements = append(res.KeyImprovements,
				fmt.Sprintf("Added %d %s-specific details", added, opts.Category))
		}
	}

	res.Enhanced = normalizePunctuation(strings.Join(fragments, ". "))

	if opts.NegativePrompt {
		res.NegativePrompt = BuildNegativePrompt(imageType, opts.Category)
	}

	res.ExpectedResult = expectedResult(original, imageType, compType, opts.Category)
	res.QualityScore = validation.Validate(res.Enhanced, "").Score
	return res
}

// Quick is the convenience wrapper used by template components: enhanced text
// only, defaults on, no negative prompt.
func Quick(prompt string, category Category) string {
	res := Enhance(prompt, Options{
		Category:            category,
		Quality:             QualityHigh,
		TechnicalSpecs:      true,
		StyleDescriptors:    true,
		CompositionGuidance: true,
	})
	return res.Enhanced
}

func expectedResult(original string, imageType ImageType, compType CompositionType, category Category) string {
	label, ok := styleLabels[category]
	if !ok {
		label = defaultStyleLabel
	}
	subject := leadClause(original)
	if subject == "" {
		subject = "the described subject"
	}
	return fmt.Sprintf("A %s %s of %s, rendered in a %s style.",
		compType, strings.ReplaceAll(string(imageType), "-", " "), subject, label)
}

// leadClause takes the text before the first sentence break, truncated with
// an ellipsis past the limit.
func leadClause(text string) string {
	cut := len(text)
	if idx := strings.IndexAny(text, ".,!?"); idx >= 0 {
		cut = idx
	}
	clause := strings.TrimSpace(text[:cut])
	if len(clause) > leadClauseLimit {
		clause = strings.TrimSpace(clause[:leadClauseLimit]) + "..."
	}
	return clause
}

// normalizePunctuation collapses the doubled punctuation that joining
// sentence fragments with ". " can produce. It never touches words.
func normalizePunctuation(text string) string {
	replacer := strings.NewReplacer(
		". .", ".",
		", .", ".",
		"..", ".",
		",.", ".",
	)
	for {
		next := replacer.Replace(text)
		if next == text {
			return next
		}
		text = next
	}
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
