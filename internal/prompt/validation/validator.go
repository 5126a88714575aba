// Package validation scores free-text image prompts. Everything here is a
// pure function of the input string: the UI recomputes the result on every
// keystroke, so there is no state and no failure path, only structured
// errors, warnings, and suggestions inside the result.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MinPromptLength is the shortest prompt we consider reliable.
	MinPromptLength = 10
	// MaxPromptLength is the point where models start truncating input.
	MaxPromptLength = 3000

	baseScore      = 20
	wordCountBonus = 5
	warningPenalty = 3
	errorPenalty   = 10
)

// Breakdown records which semantic categories the prompt covers.
type Breakdown struct {
	HasSubject     bool `json:"hasSubject"`
	HasStyle       bool `json:"hasStyle"`
	HasLighting    bool `json:"hasLighting"`
	HasComposition bool `json:"hasComposition"`
	HasQuality     bool `json:"hasQuality"`
	HasColor       bool `json:"hasColor"`
	HasMood        bool `json:"hasMood"`
}

// Result is the full validation outcome. IsValid reflects errors only;
// warnings lower the score but never block.
type Result struct {
	IsValid     bool      `json:"isValid"`
	Score       int       `json:"score"`
	Errors      []string  `json:"errors"`
	Warnings    []string  `json:"warnings"`
	Suggestions []string  `json:"suggestions"`
	Breakdown   Breakdown `json:"breakdown"`
}

// conflictPairs lists style keywords that rarely make sense together. Both
// members present in the lowercased prompt produce one warning per pair.
var conflictPairs = [][2]string{
	{"photorealistic", "cartoon"},
	{"minimalist", "highly detailed"},
	{"monochrome", "vibrant colors"},
	{"bright", "dark and moody"},
	{"flat 2d", "3d render"},
	{"vector", "oil painting"},
}

// vagueTerms are subjective fillers that tell the model nothing about the
// image. Only the first match is reported.
var vagueTerms = regexp.MustCompile(`\b(nice|good|beautiful|amazing|cool|awesome|great|best|perfect|fantastic|wonderful)\b`)

var (
	subjectPattern = regexp.MustCompile(`\b(person|man|woman|child|girl|boy|people|cat|dog|bird|dragon|animal|creature|monster|robot|cyborg|warrior|hero|character|figure|figurine|toy|car|ship|house|building|castle|city|street|forest|mountain|ocean|landscape|flower|tree|food|product|portrait|scene)\b`)
	stylePattern   = regexp.MustCompile(`\b(style|photograph|photorealistic|realistic|cartoon|anime|manga|ghibli|watercolor|oil painting|acrylic|sketch|ink|pixel art|vector|low poly|3d render|cgi|digital art|illustration|minimalist|abstract|vintage|retro|cyberpunk|steampunk|art deco|impressionist|surreal|pop art|comic|claymation)\b`)
	lightPattern   = regexp.MustCompile(`\b(lighting|light|lit|backlit|illuminated|golden hour|sunset|sunrise|neon|glow|glowing|shadows?|studio light|softbox|rim light|ambient|candlelit|moonlit)\b`)
	compPattern    = regexp.MustCompile(`\b(composition|close-?up|wide shot|wide angle|aerial|bird'?s eye|top down|low angle|centered|rule of thirds|framing|framed|angle|perspective|depth of field|bokeh|symmetrical|panoramic|full body|headshot)\b`)
	qualityPattern = regexp.MustCompile(`\b(4k|8k|hd|uhd|high resolution|high quality|highly detailed|detailed|intricate|sharp|crisp|professional|masterpiece|award[- ]winning|ultra)\b`)
	colorPattern   = regexp.MustCompile(`\b(color|colour|colors|colours|colorful|vibrant|monochrome|pastel|saturated|muted|black and white|sepia|palette|hues?|teal|crimson|golden|emerald)\b`)
	moodPattern    = regexp.MustCompile(`\b(mood|moody|atmosphere|atmospheric|dramatic|serene|peaceful|calm|eerie|mysterious|ominous|joyful|playful|melancholic|nostalgic|whimsical|cozy|epic|tense|dreamy)\b`)
)

// Validate inspects a raw prompt and produces a 0-100 quality score with
// actionable suggestions. declaredStyle marks the style category as covered
// even when no style keyword appears in the text.
func Validate(prompt, declaredStyle string) Result {
	res := Result{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		res.Errors = append(res.Errors, "Prompt is empty")
		res.Suggestions = append(res.Suggestions, "Start by describing the main subject of your image")
		return res
	}

	if len(trimmed) < MinPromptLength {
		res.Errors = append(res.Errors, fmt.Sprintf("Prompt is too short for reliable results (minimum %d characters)", MinPromptLength))
	}
	if len(trimmed) > MaxPromptLength {
		res.Warnings = append(res.Warnings, fmt.Sprintf("Prompt exceeds %d characters and may be truncated by the model", MaxPromptLength))
	}

	lower := strings.ToLower(trimmed)

	for _, pair := range conflictPairs {
		if strings.Contains(lower, pair[0]) && strings.Contains(lower, pair[1]) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("Conflicting styles: %q and %q rarely work well together", pair[0], pair[1]))
		}
	}

	if match := vagueTerms.FindString(lower); match != "" {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%q is subjective; describe concrete visual qualities instead", match))
	}

	res.Breakdown = Breakdown{
		HasSubject:     subjectPattern.MatchString(lower),
		HasStyle:       stylePattern.MatchString(lower) || strings.TrimSpace(declaredStyle) != "",
		HasLighting:    lightPattern.MatchString(lower),
		HasComposition: compPattern.MatchString(lower),
		HasQuality:     qualityPattern.MatchString(lower),
		HasColor:       colorPattern.MatchString(lower),
		HasMood:        moodPattern.MatchString(lower),
	}

	b := res.Breakdown
	if !b.HasSubject {
		res.Suggestions = append(res.Suggestions, "Name a clear subject, e.g. \"a robot chef\" instead of describing around it")
	}
	if !b.HasStyle {
		res.Suggestions = append(res.Suggestions, "Add an art style such as \"watercolor\" or \"photorealistic\"")
	}
	if !b.HasLighting {
		res.Suggestions = append(res.Suggestions, "Describe the lighting, e.g. \"soft golden hour light\"")
	}
	if !b.HasComposition {
		res.Suggestions = append(res.Suggestions, "Add framing guidance, e.g. \"close-up\" or \"wide angle\"")
	}
	if !b.HasQuality {
		res.Suggestions = append(res.Suggestions, "Add quality cues such as \"highly detailed\" or \"4k\"")
	}
	if !b.HasColor {
		res.Suggestions = append(res.Suggestions, "Mention a color palette or dominant colors")
	}

	res.Score = computeScore(trimmed, b, len(res.Warnings), len(res.Errors))
	res.IsValid = len(res.Errors) == 0
	return res
}

func computeScore(prompt string, b Breakdown, warnings, errors int) int {
	score := baseScore

	words := len(strings.Fields(prompt))
	if words >= 8 {
		score += wordCountBonus
	}
	if words >= 15 {
		score += wordCountBonus
	}

	if b.HasSubject {
		score += 15
	}
	if b.HasStyle {
		score += 15
	}
	if b.HasLighting {
		score += 12
	}
	if b.HasComposition {
		score += 10
	}
	if b.HasQuality {
		score += 8
	}
	if b.HasColor {
		score += 8
	}
	if b.HasMood {
		score += 7
	}

	score -= warnings * warningPenalty
	score -= errors * errorPenalty

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// ScoreLabel maps a score to its display band. Lower bounds are inclusive.
func ScoreLabel(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Fair"
	case score >= 30:
		return "Needs Work"
	default:
		return "Poor"
	}
}
