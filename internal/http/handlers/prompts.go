package handlers

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"

	"promptserver/internal/prompt/enhance"
	"promptserver/internal/prompt/tokens"
	"promptserver/internal/prompt/validation"
)

type promptResolveRequest struct {
	Text   string            `json:"text"`
	Tokens map[string]string `json:"tokens"`
	Strict bool              `json:"strict"`
}

// PromptResolve substitutes bracket placeholders with the supplied values.
// Missing tokens are never a transport error: in strict mode they surface in
// the result's errors array, otherwise the placeholder stays in the text.
func (a *App) PromptResolve(w http.ResponseWriter, r *http.Request) {
	var req promptResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	resolver := tokens.NewResolver(a.Dictionary)
	resolver.SetStrictMode(req.Strict)
	a.json(w, http.StatusOK, resolver.Replace(req.Text, req.Tokens))
}

type promptValidateRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
}

type promptValidateResponse struct {
	validation.Result
	Label string `json:"label"`
}

// PromptValidate scores a prompt. The validator is total, so any decodable
// payload gets a 200 with a well-formed result, even for an empty prompt.
func (a *App) PromptValidate(w http.ResponseWriter, r *http.Request) {
	var req promptValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	res := validation.Validate(req.Prompt, req.Style)
	a.json(w, http.StatusOK, promptValidateResponse{
		Result: res,
		Label:  validation.ScoreLabel(res.Score),
	})
}

type promptEnhanceRequest struct {
	Prompt              string            `json:"prompt"`
	Category            string            `json:"category"`
	ImageType           string            `json:"imageType"`
	Quality             string            `json:"quality"`
	NegativePrompt      bool              `json:"negativePrompt"`
	TechnicalSpecs      bool              `json:"technicalSpecs"`
	StyleDescriptors    bool              `json:"styleDescriptors"`
	CompositionGuidance bool              `json:"compositionGuidance"`
	PreserveTokens      bool              `json:"preserveTokens"`
	Tokens              map[string]string `json:"tokens"`
}

func (req promptEnhanceRequest) options() enhance.Options {
	return enhance.Options{
		Category:            enhance.Category(req.Category),
		ImageType:           enhance.ImageType(req.ImageType),
		Quality:             enhance.QualityTier(req.Quality),
		NegativePrompt:      req.NegativePrompt,
		TechnicalSpecs:      req.TechnicalSpecs,
		StyleDescriptors:    req.StyleDescriptors,
		CompositionGuidance: req.CompositionGuidance,
	}
}

// cacheKey hashes the whole request so no two distinct requests can share an
// entry, whatever characters the prompt contains.
func (req promptEnhanceRequest) cacheKey() string {
	b, _ := json.Marshal(req)
	return fmt.Sprintf("%x", sha256.Sum256(b))
}

// PromptEnhance runs the enhancement pipeline. Identical requests are served
// from cache; token-preserving requests bypass it because the token map is
// per-user.
func (a *App) PromptEnhance(w http.ResponseWriter, r *http.Request) {
	var req promptEnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	if req.PreserveTokens {
		a.json(w, http.StatusOK, enhance.EnhancePreservingTokens(req.Prompt, req.options(), req.Tokens))
		return
	}

	key := req.cacheKey()
	if cached, ok := a.EnhanceCache.Get(key); ok {
		a.json(w, http.StatusOK, cached)
		return
	}

	res := enhance.Enhance(req.Prompt, req.options())
	a.EnhanceCache.SetDefault(key, res)
	a.json(w, http.StatusOK, res)
}
