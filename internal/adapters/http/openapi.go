package httpadapter

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiDocument []byte

var (
	openapiOnce sync.Once
	openapiJSON []byte
	openapiErr  error
)

// LoadOpenAPISpec parses and validates the embedded API contract. Called at
// startup so a broken contract fails the process instead of the first client.
func LoadOpenAPISpec(ctx context.Context) error {
	openapiOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(openapiDocument)
		if err != nil {
			openapiErr = fmt.Errorf("load openapi document: %w", err)
			return
		}
		if err := doc.Validate(ctx); err != nil {
			openapiErr = fmt.Errorf("validate openapi document: %w", err)
			return
		}
		openapiJSON, openapiErr = doc.MarshalJSON()
	})
	return openapiErr
}

func (rt *Router) openapiSpec(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if err := LoadOpenAPISpec(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "openapi document unavailable"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapiJSON)
}
