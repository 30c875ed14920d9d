package dashboard

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/presets"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

//go:embed web
var webFS embed.FS

var (
	pageTmpl = template.Must(template.ParseFS(webFS, "web/index.html.tmpl"))
	validate = validator.New()
)

// PageInfo es el encabezado de la página.
type PageInfo struct {
	Title   string
	Tagline string
}

func RegisterRoutes(r chi.Router, svc *Service, info PageInfo) {
	static, _ := fs.Sub(webFS, "web/static")

	r.Get("/", pageHandler(svc, info))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/records", recordsHandler(svc))
		ar.Post("/view", viewHandler(svc))
		ar.Get("/chart.svg", chartHandler(svc))
	})
}

type pageData struct {
	PageInfo
	Presets  []presets.Rule
	Columns  []string
	PageSize int
}

func pageHandler(svc *Service, info PageInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if info.Title == "" {
			info.Title = "Grazioso Salvare Dashboard"
		}

		var buf bytes.Buffer
		err := pageTmpl.Execute(&buf, pageData{
			PageInfo: info,
			Presets:  presets.All(),
			Columns:  animals.Columns,
			PageSize: svc.PageSize(),
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "render page")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

type recordsResponse struct {
	Snapshot
	Count int `json:"count"`
}

// recordsHandler devuelve el record set completo del preset.
//
// @Summary     Records for a preset
// @Tags        dashboard
// @Produce     json
// @Param       preset  query string false "water | mountain | disaster | reset" default(reset)
// @Param       refresh query bool   false "force a store read"
// @Success     200 {object} recordsResponse
// @Failure     400 {object} errorResponse
// @Failure     503 {object} errorResponse
// @Router      /api/records [get]
func recordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		refresh, _ := strconv.ParseBool(q.Get("refresh"))

		snap, err := svc.Load(r.Context(), q.Get("preset"), refresh)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recordsResponse{Snapshot: snap, Count: len(snap.Records)})
	}
}

// viewHandler deriva tabla, gráfico y mapa para una interacción.
//
// @Summary     Derive the dashboard view
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Param       request body     ViewRequest true "preset and table state"
// @Success     200     {object} ViewResponse
// @Failure     400     {object} errorResponse
// @Failure     409     {object} errorResponse
// @Failure     503     {object} errorResponse
// @Router      /api/view [post]
func viewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp, err := svc.View(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// chartHandler dibuja el pie del subset visible como SVG.
// Filtros de tabla: filter.<columna>=<expresión>. La página manda el snapshot_id
// de la vista para que tabla y gráfico salgan de los mismos records.
//
// @Summary     Breed distribution chart
// @Tags        dashboard
// @Produce     image/svg+xml
// @Param       preset       query string false "preset name"
// @Param       sort_by      query string false "column to sort by"
// @Param       sort_desc    query bool   false "descending sort"
// @Param       chart_column query string false "column to aggregate" default(breed)
// @Param       snapshot_id  query string false "draw from this exact snapshot (from /api/view)"
// @Success     200
// @Failure     400 {object} errorResponse
// @Failure     409 {object} errorResponse
// @Failure     503 {object} errorResponse
// @Router      /api/chart.svg [get]
func chartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := ViewRequest{
			Preset:      q.Get("preset"),
			SnapshotID:  q.Get("snapshot_id"),
			ChartColumn: q.Get("chart_column"),
			Table: TableState{
				SortBy:  q.Get("sort_by"),
				Filters: map[string]string{},
			},
		}
		req.Table.SortDesc, _ = strconv.ParseBool(q.Get("sort_desc"))
		for k, v := range q {
			if col, ok := strings.CutPrefix(k, "filter."); ok && len(v) > 0 {
				req.Table.Filters[col] = v[0]
			}
		}

		resp, err := svc.View(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		var buf bytes.Buffer
		if err := RenderPie(&buf, resp.Chart.Slices); err != nil {
			writeError(w, http.StatusInternalServerError, "render chart")
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = buf.WriteTo(w)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, presets.ErrUnknownPreset),
		errors.Is(err, ErrInvalidFilter),
		errors.Is(err, ErrUnknownColumn):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSnapshotReplaced):
		writeError(w, http.StatusConflict, "snapshot replaced, reload the view")
	case errors.Is(err, animals.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "data store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
