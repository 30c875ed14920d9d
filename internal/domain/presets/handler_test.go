package presets

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func TestListPresetsHandler(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out []presetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(out))
	}
	if out[0].Name != Water || out[0].Label != "Water Rescue" {
		t.Fatalf("unexpected first preset %#v", out[0])
	}
	if out[3].Name != Reset || len(out[3].Query) != 0 || out[3].MinWeeks != nil {
		t.Fatalf("reset must expose an empty query, got %#v", out[3])
	}
	if out[2].MinWeeks == nil || *out[2].MinWeeks != 20 || *out[2].MaxWeeks != 300 {
		t.Fatalf("unexpected disaster range %#v", out[2])
	}
}
