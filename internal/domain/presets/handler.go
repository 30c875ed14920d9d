package presets

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func RegisterRoutes(r chi.Router) {
	r.Get("/api/presets", listPresetsHandler())
}

type presetResponse struct {
	Name       Name           `json:"name"`
	Label      string         `json:"label"`
	AnimalType string         `json:"animal_type,omitempty"`
	Breeds     []string       `json:"breeds"`
	Sex        string         `json:"sex,omitempty"`
	MinWeeks   *float64       `json:"min_weeks,omitempty"`
	MaxWeeks   *float64       `json:"max_weeks,omitempty"`
	Query      map[string]any `json:"query"`
}

// listPresetsHandler devuelve las opciones del selector (radio) y la query de cada una.
//
// @Summary     List filter presets
// @Tags        presets
// @Produce     json
// @Success     200 {array} presetResponse
// @Router      /api/presets [get]
func listPresetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		all := All()
		out := make([]presetResponse, 0, len(all))
		for _, p := range all {
			out = append(out, toPresetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toPresetResponse(r Rule) presetResponse {
	resp := presetResponse{
		Name:       r.Name,
		Label:      r.Label,
		AnimalType: r.AnimalType,
		Breeds:     r.Breeds,
		Sex:        r.Sex,
		Query:      r.Query().Map(),
	}
	if resp.Breeds == nil {
		resp.Breeds = []string{}
	}
	if !r.Unconstrained() {
		lo, hi := r.MinWeeks, r.MaxWeeks
		resp.MinWeeks = &lo
		resp.MaxWeeks = &hi
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
