package enhance

import "strings"

// BuildNegativePrompt unions the universal exclusions with the per-type and
// per-category ones, deduplicated in first-seen order.
func BuildNegativePrompt(imageType ImageType, category Category) string {
	seen := make(map[string]struct{})
	var terms []string
	add := func(list []string) {
		for _, term := range list {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}

	add(universalNegatives)
	add(typeNegatives[imageType])
	add(categoryNegatives[category])

	return strings.Join(terms, ", ")
}
