package enhance

import (
	"strings"
	"testing"
)

func TestPreserveResolvesSuppliedTokens(t *testing.T) {
	res := EnhancePreservingTokens("an action figure of {FIRSTNAME}",
		allFlags(CategoryActionFigure, QualityHigh),
		map[string]string{"FIRSTNAME": "Ada"})

	if !strings.Contains(res.Enhanced, "Ada") {
		t.Fatalf("Enhanced = %q, want the token resolved to Ada", res.Enhanced)
	}
	if strings.Contains(res.Enhanced, "{FIRSTNAME}") {
		t.Fatalf("Enhanced = %q, literal placeholder should be gone", res.Enhanced)
	}
	if strings.Contains(res.Enhanced, "@@TKN") {
		t.Fatalf("Enhanced = %q, internal marker leaked", res.Enhanced)
	}
}

func TestPreserveKeepsUnresolvedTokensVerbatim(t *testing.T) {
	res := EnhancePreservingTokens("an action figure of {FIRSTNAME}",
		allFlags(CategoryActionFigure, QualityHigh),
		map[string]string{})

	if !strings.Contains(res.Enhanced, "{FIRSTNAME}") {
		t.Fatalf("Enhanced = %q, want the placeholder kept verbatim", res.Enhanced)
	}
	var warned bool
	for _, w := range res.Warnings {
		if strings.Contains(w, "FIRSTNAME") {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("Warnings = %v, want an unresolved-token warning", res.Warnings)
	}
}

func TestPreserveHandlesAllFourSyntaxes(t *testing.T) {
	prompt := "{A} and [B] and __C__ and %D%"
	values := map[string]string{"A": "one", "B": "two", "C": "three", "D": "four"}
	res := EnhancePreservingTokens(prompt, allFlags(CategoryAIImage, QualityStandard), values)

	for _, want := range []string{"one", "two", "three", "four"} {
		if !strings.Contains(res.Enhanced, want) {
			t.Fatalf("Enhanced = %q, missing resolved value %q", res.Enhanced, want)
		}
	}
	for _, stale := range []string{"{A}", "[B]", "__C__", "%D%"} {
		if strings.Contains(res.Enhanced, stale) {
			t.Fatalf("Enhanced = %q, placeholder %q survived", res.Enhanced, stale)
		}
	}
}

func TestPreserveOriginalKeepsUserText(t *testing.T) {
	res := EnhancePreservingTokens("a robot named {FIRSTNAME}",
		allFlags(CategoryAIImage, QualityStandard),
		map[string]string{"FIRSTNAME": "Ada"})

	if res.Original != "a robot named {FIRSTNAME}" {
		t.Fatalf("Original = %q, want the unmasked input echoed", res.Original)
	}
}
