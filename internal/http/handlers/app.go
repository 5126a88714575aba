package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"promptserver/internal/infra"
	"promptserver/internal/prompt/tokens"

	"github.com/patrickmn/go-cache"
)

// App carries the handler dependencies: the token dictionary, the enhance
// response cache, and the service logger.
type App struct {
	Logger       infra.Logger
	Dictionary   *tokens.Dictionary
	EnhanceCache *cache.Cache
}

// NewApp wires the handler container. ttl bounds how long identical enhance
// requests are served from cache; the pipeline is deterministic so cached
// responses are always exact.
func NewApp(logger infra.Logger, dict *tokens.Dictionary, ttl time.Duration) *App {
	return &App{
		Logger:       logger,
		Dictionary:   dict,
		EnhanceCache: cache.New(ttl, 2*ttl),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, codeStr, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": codeStr, "message": message},
	})
}
