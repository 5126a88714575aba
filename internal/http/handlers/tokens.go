package handlers

import (
	"encoding/json"
	"net/http"

	"promptserver/internal/prompt/tokens"
)

type tokenDefinitionPayload struct {
	Key         string   `json:"key"`
	Group       string   `json:"group"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Default     string   `json:"default,omitempty"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}

func definitionPayload(def tokens.Definition) tokenDefinitionPayload {
	return tokenDefinitionPayload{
		Key:         def.Key,
		Group:       string(def.Group),
		Type:        string(def.Type),
		Required:    def.Required,
		Default:     def.Default,
		Description: def.Description,
		Examples:    def.Examples,
	}
}

// TokensList dumps the dictionary grouped by section for the template picker.
func (a *App) TokensList(w http.ResponseWriter, r *http.Request) {
	groups := map[string][]tokenDefinitionPayload{}
	for _, group := range []tokens.Group{tokens.GroupPersonal, tokens.GroupCompany, tokens.GroupSystem} {
		defs := a.Dictionary.ByGroup(group)
		payload := make([]tokenDefinitionPayload, 0, len(defs))
		for _, def := range defs {
			payload = append(payload, definitionPayload(def))
		}
		groups[string(group)] = payload
	}
	a.json(w, http.StatusOK, map[string]any{"groups": groups})
}

type tokenValidateRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type tokenValidateResponse struct {
	Key     string   `json:"key"`
	Known   bool     `json:"known"`
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors"`
	Warning string   `json:"warning,omitempty"`
}

// TokenValidate checks a single value against its dictionary definition. An
// unknown key is flagged as a warning, never as a blocking error.
func (a *App) TokenValidate(w http.ResponseWriter, r *http.Request) {
	var req tokenValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Key == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "key is required")
		return
	}

	_, known := a.Dictionary.Get(req.Key)
	check := a.Dictionary.ValidateValue(req.Key, req.Value)
	res := tokenValidateResponse{
		Key:    req.Key,
		Known:  known,
		Valid:  check.Valid,
		Errors: check.Errors,
	}
	if !known {
		res.Warning = "token is not defined in the dictionary"
	}
	a.json(w, http.StatusOK, res)
}
