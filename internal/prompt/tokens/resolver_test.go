package tokens

import (
	"strings"
	"testing"
)

func TestReplaceNoPlaceholders(t *testing.T) {
	r := NewResolver(NewDictionary())
	res := r.Replace("a quiet mountain village", map[string]string{"FIRSTNAME": "Ada"})

	if res.Replaced != "a quiet mountain village" {
		t.Fatalf("Replaced = %q, want input unchanged", res.Replaced)
	}
	if len(res.TokensFound) != 0 {
		t.Fatalf("TokensFound = %v, want empty", res.TokensFound)
	}
	if len(res.TokensReplaced) != 0 {
		t.Fatalf("TokensReplaced = %v, want empty", res.TokensReplaced)
	}
}

func TestReplaceSimpleToken(t *testing.T) {
	r := NewResolver(NewDictionary())
	res := r.Replace("portrait of [FIRSTNAME]", map[string]string{"FIRSTNAME": "Ada"})

	if res.Replaced != "portrait of Ada" {
		t.Fatalf("Replaced = %q, want %q", res.Replaced, "portrait of Ada")
	}
	if len(res.TokensReplaced) != 1 || res.TokensReplaced[0] != "FIRSTNAME" {
		t.Fatalf("TokensReplaced = %v, want [FIRSTNAME]", res.TokensReplaced)
	}
}

func TestReplaceDefaultToken(t *testing.T) {
	r := NewResolver(NewDictionary())

	res := r.Replace("[NAME|Guest]", map[string]string{})
	if res.Replaced != "Guest" {
		t.Fatalf("Replaced = %q, want %q", res.Replaced, "Guest")
	}
	if len(res.TokensFound) != 1 || res.TokensFound[0] != "NAME" {
		t.Fatalf("TokensFound = %v, want [NAME]", res.TokensFound)
	}
	if len(res.TokensReplaced) != 0 {
		t.Fatalf("TokensReplaced = %v, want empty when the default was used", res.TokensReplaced)
	}

	res = r.Replace("[NAME|Guest]", map[string]string{"NAME": "Ada"})
	if res.Replaced != "Ada" {
		t.Fatalf("Replaced = %q, want %q", res.Replaced, "Ada")
	}
	if len(res.TokensReplaced) != 1 || res.TokensReplaced[0] != "NAME" {
		t.Fatalf("TokensReplaced = %v, want [NAME]", res.TokensReplaced)
	}
}

func TestReplaceConditionalToken(t *testing.T) {
	r := NewResolver(NewDictionary())

	res := r.Replace("[VIP?Welcome back!]", map[string]string{"VIP": "yes"})
	if res.Replaced != "Welcome back!" {
		t.Fatalf("Replaced = %q, want %q", res.Replaced, "Welcome back!")
	}

	res = r.Replace("[VIP?Welcome back!]", map[string]string{})
	if res.Replaced != "" {
		t.Fatalf("Replaced = %q, want empty string", res.Replaced)
	}
	if len(res.TokensFound) != 1 || res.TokensFound[0] != "VIP" {
		t.Fatalf("TokensFound = %v, want [VIP]", res.TokensFound)
	}
	if len(res.TokensReplaced) != 0 {
		t.Fatalf("TokensReplaced = %v, want empty when the condition failed", res.TokensReplaced)
	}
}

func TestReplaceStrictModeError(t *testing.T) {
	r := NewResolver(NewDictionary())
	r.SetStrictMode(true)

	res := r.Replace("[MISSING]", map[string]string{})
	if res.Replaced != "[MISSING]" {
		t.Fatalf("Replaced = %q, want the placeholder left unresolved", res.Replaced)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "MISSING") {
		t.Fatalf("error %q should name the token", res.Errors[0])
	}
}

func TestReplaceNonStrictLeavesPlaceholder(t *testing.T) {
	r := NewResolver(NewDictionary())

	res := r.Replace("figure of [MISSING]", map[string]string{})
	if res.Replaced != "figure of [MISSING]" {
		t.Fatalf("Replaced = %q, want the literal placeholder kept", res.Replaced)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("Errors = %v, want none in non-strict mode", res.Errors)
	}
}

func TestReplaceNestedDefault(t *testing.T) {
	r := NewResolver(NewDictionary())

	// The default carries another placeholder that resolves after the
	// fallback is applied.
	res := r.Replace("[GREETING|hello [FIRSTNAME]]", map[string]string{"FIRSTNAME": "Ada"})
	if res.Replaced != "hello Ada" {
		t.Fatalf("Replaced = %q, want %q", res.Replaced, "hello Ada")
	}
}

func TestReplaceNestedDefaultOuterValueWins(t *testing.T) {
	r := NewResolver(NewDictionary())

	res := r.Replace("[GREETING|hello [FIRSTNAME]]", map[string]string{"GREETING": "hi"})
	if res.Replaced != "hi" {
		t.Fatalf("Replaced = %q, want %q", res.Replaced, "hi")
	}
}

func TestReplaceNestedDefaultUnresolvableInner(t *testing.T) {
	r := NewResolver(NewDictionary())

	// The fallback must apply even when the placeholder inside it never
	// resolves; the inner token is simply left in place.
	res := r.Replace("[GREETING|hello [NAME]]", map[string]string{})
	if res.Replaced != "hello [NAME]" {
		t.Fatalf("Replaced = %q, want %q", res.Replaced, "hello [NAME]")
	}
	if len(res.Errors) != 0 {
		t.Fatalf("Errors = %v, want none outside strict mode", res.Errors)
	}
}

func TestReplaceNestedConditionalBody(t *testing.T) {
	r := NewResolver(NewDictionary())

	res := r.Replace("[ROLE?works as [ROLE] at [COMPANY|home]]",
		map[string]string{"ROLE": "Chef"})
	if res.Replaced != "works as Chef at home" {
		t.Fatalf("Replaced = %q, want %q", res.Replaced, "works as Chef at home")
	}
}

func TestReplaceDuplicateOccurrences(t *testing.T) {
	r := NewResolver(NewDictionary())
	res := r.Replace("[FIRSTNAME] and [FIRSTNAME]", map[string]string{"FIRSTNAME": "Ada"})

	if res.Replaced != "Ada and Ada" {
		t.Fatalf("Replaced = %q, want %q", res.Replaced, "Ada and Ada")
	}
	if len(res.TokensFound) != 2 {
		t.Fatalf("TokensFound = %v, want the duplicate recorded", res.TokensFound)
	}
}

func TestReplaceTerminatesOnRunawayExpansion(t *testing.T) {
	r := NewResolver(NewDictionary())

	// A and B re-introduce each other every pass; the loop must stop at the
	// cap with a warning instead of growing forever.
	values := map[string]string{"A": "x[B]", "B": "y[A]"}
	res := r.Replace("[A]", values)

	if len(res.Replaced) > 4*MaxResolutionPasses {
		t.Fatalf("Replaced grew unbounded: %d chars", len(res.Replaced))
	}
	var capWarning bool
	for _, w := range res.Warnings {
		if strings.Contains(w, "stable") {
			capWarning = true
		}
	}
	if !capWarning {
		t.Fatalf("Warnings = %v, want a cap-hit warning", res.Warnings)
	}
}

func TestReplaceUnknownTokenWarns(t *testing.T) {
	r := NewResolver(NewDictionary())
	res := r.Replace("[GADGET]", map[string]string{"GADGET": "raygun"})

	if res.Replaced != "raygun" {
		t.Fatalf("Replaced = %q, want %q", res.Replaced, "raygun")
	}
	if len(res.Errors) != 0 {
		t.Fatalf("Errors = %v, unknown tokens must not be errors", res.Errors)
	}
	var warned bool
	for _, w := range res.Warnings {
		if strings.Contains(w, "GADGET") {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("Warnings = %v, want one naming GADGET", res.Warnings)
	}
}
