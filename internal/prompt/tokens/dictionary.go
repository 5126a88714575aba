package tokens

import (
	"fmt"
	"regexp"
)

// ValueType describes the expected shape of a token value. Callers always
// supply strings over the wire, so non-string types are checked leniently.
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeNumber  ValueType = "number"
	TypeBoolean ValueType = "boolean"
	TypeArray   ValueType = "array"
	TypeObject  ValueType = "object"
)

// Group names a dictionary section.
type Group string

const (
	GroupPersonal Group = "personal"
	GroupCompany  Group = "company"
	GroupSystem   Group = "system"
)

// Rules holds the optional per-definition validation constraints.
type Rules struct {
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Enum      []string
}

// Definition describes a named placeholder available for prompt templates.
type Definition struct {
	Key         string
	Group       Group
	Type        ValueType
	Required    bool
	Default     string
	Description string
	Examples    []string
	Rules       *Rules
}

// ValueCheck is the outcome of validating a single token value.
type ValueCheck struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Dictionary is an immutable set of token definitions, built once at startup.
// Keys are unique across all groups.
type Dictionary struct {
	ordered []Definition
	byKey   map[string]Definition
}

var (
	numberPattern  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	booleanPattern = regexp.MustCompile(`^(true|false)$`)
	emailPattern   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// NewDictionary builds the default dictionary with the personal, company, and
// system token groups.
func NewDictionary() *Dictionary {
	defs := []Definition{
		{
			Key: "FIRSTNAME", Group: GroupPersonal, Type: TypeString, Required: true,
			Description: "Recipient first name used to personalise the scene.",
			Examples:    []string{"Ada", "Linus"},
			Rules:       &Rules{MinLength: 1, MaxLength: 50},
		},
		{
			Key: "LASTNAME", Group: GroupPersonal, Type: TypeString,
			Description: "Recipient last name.",
			Examples:    []string{"Lovelace"},
			Rules:       &Rules{MaxLength: 50},
		},
		{
			Key: "FULLNAME", Group: GroupPersonal, Type: TypeString,
			Description: "Full display name, falls back to first plus last name.",
			Examples:    []string{"Ada Lovelace"},
			Rules:       &Rules{MaxLength: 100},
		},
		{
			Key: "EMAIL", Group: GroupPersonal, Type: TypeString,
			Description: "Contact email, only used for caption overlays.",
			Examples:    []string{"ada@example.com"},
			Rules:       &Rules{Pattern: emailPattern},
		},
		{
			Key: "ROLE", Group: GroupPersonal, Type: TypeString,
			Description: "Job title or persona printed on figure packaging.",
			Examples:    []string{"Software Engineer", "Chef"},
			Rules:       &Rules{MaxLength: 80},
		},
		{
			Key: "COMPANY", Group: GroupCompany, Type: TypeString,
			Description: "Company or brand name.",
			Examples:    []string{"Initech"},
			Rules:       &Rules{MaxLength: 80},
		},
		{
			Key: "INDUSTRY", Group: GroupCompany, Type: TypeString,
			Description: "Industry the brand operates in.",
			Examples:    []string{"fintech", "food"},
			Rules:       &Rules{MaxLength: 60},
		},
		{
			Key: "PRODUCT", Group: GroupCompany, Type: TypeString,
			Description: "Hero product to feature in the composition.",
			Examples:    []string{"espresso machine"},
			Rules:       &Rules{MaxLength: 100},
		},
		{
			Key: "TAGLINE", Group: GroupCompany, Type: TypeString,
			Description: "Short slogan rendered on the artwork.",
			Examples:    []string{"Ship it"},
			Rules:       &Rules{MaxLength: 120},
		},
		{
			Key: "QUALITY", Group: GroupSystem, Type: TypeString, Default: "standard",
			Description: "Render quality tier.",
			Examples:    []string{"standard", "high", "ultra"},
			Rules:       &Rules{Enum: []string{"standard", "high", "ultra"}},
		},
		{
			Key: "ASPECT_RATIO", Group: GroupSystem, Type: TypeString, Default: "1:1",
			Description: "Output aspect ratio.",
			Examples:    []string{"1:1", "16:9"},
			Rules:       &Rules{Enum: []string{"1:1", "4:3", "3:4", "16:9", "9:16"}},
		},
		{
			Key: "YEAR", Group: GroupSystem, Type: TypeNumber,
			Description: "Current year, injected by the personalisation layer.",
			Examples:    []string{"2026"},
		},
		{
			Key: "DATE", Group: GroupSystem, Type: TypeString,
			Description: "Current date, injected by the personalisation layer.",
			Examples:    []string{"2026-08-30"},
		},
	}
	return NewDictionaryWith(defs)
}

// NewDictionaryWith builds a dictionary from explicit definitions. Later
// definitions with a duplicate key are dropped so the uniqueness invariant
// holds.
func NewDictionaryWith(defs []Definition) *Dictionary {
	d := &Dictionary{byKey: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if _, exists := d.byKey[def.Key]; exists {
			continue
		}
		d.byKey[def.Key] = def
		d.ordered = append(d.ordered, def)
	}
	return d
}

// Get returns the definition for a key.
func (d *Dictionary) Get(key string) (Definition, bool) {
	def, ok := d.byKey[key]
	return def, ok
}

// All returns every definition in declaration order.
func (d *Dictionary) All() []Definition {
	out := make([]Definition, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// ByGroup returns the definitions belonging to one group, in declaration order.
func (d *Dictionary) ByGroup(group Group) []Definition {
	var out []Definition
	for _, def := range d.ordered {
		if def.Group == group {
			out = append(out, def)
		}
	}
	return out
}

// ValidateValue checks a value against the definition registered for key.
// An unknown key is not an error here: the dictionary is advisory metadata,
// callers decide severity.
func (d *Dictionary) ValidateValue(key, value string) ValueCheck {
	def, ok := d.byKey[key]
	if !ok {
		return ValueCheck{Valid: true, Errors: []string{}}
	}

	var errs []string
	switch def.Type {
	case TypeNumber:
		if !numberPattern.MatchString(value) {
			errs = append(errs, fmt.Sprintf("%s must be a number", key))
		}
	case TypeBoolean:
		if !booleanPattern.MatchString(value) {
			errs = append(errs, fmt.Sprintf("%s must be true or false", key))
		}
	}

	if def.Type == TypeString && def.Rules != nil {
		r := def.Rules
		if r.MinLength > 0 && len(value) < r.MinLength {
			errs = append(errs, fmt.Sprintf("%s must be at least %d characters", key, r.MinLength))
		}
		if r.MaxLength > 0 && len(value) > r.MaxLength {
			errs = append(errs, fmt.Sprintf("%s must be at most %d characters", key, r.MaxLength))
		}
		if r.Pattern != nil && !r.Pattern.MatchString(value) {
			errs = append(errs, fmt.Sprintf("%s does not match the expected format", key))
		}
		if len(r.Enum) > 0 && !contains(r.Enum, value) {
			errs = append(errs, fmt.Sprintf("%s must be one of %v", key, r.Enum))
		}
	}

	if errs == nil {
		errs = []string{}
	}
	return ValueCheck{Valid: len(errs) == 0, Errors: errs}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
