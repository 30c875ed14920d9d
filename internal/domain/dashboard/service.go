package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/presets"
	"rescue-dashboard/internal/domain/query"
	"rescue-dashboard/internal/platform/logger"
	"rescue-dashboard/internal/platform/metrics"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Reader es lo que el dashboard necesita del store (animals.Service lo implementa).
type Reader interface {
	Read(ctx context.Context, f query.Filter) ([]animals.Record, error)
}

var (
	// ErrSnapshotReplaced: el snapshot pedido ya no es el vigente del preset.
	ErrSnapshotReplaced = errors.New("snapshot replaced")
)

// Origen de un snapshot.
const (
	SourceStore    = "store"
	SourceCache    = "cache"
	SourceNarrowed = "narrowed"
)

// Snapshot es un record set inmutable cargado para un preset.
// Stale indica que el store falló y se sirve el último set bueno; Error trae el motivo.
type Snapshot struct {
	ID        string           `json:"snapshot_id"`
	Preset    presets.Name     `json:"preset"`
	Records   []animals.Record `json:"records"`
	FetchedAt time.Time        `json:"fetched_at"`
	Source    string           `json:"source"`
	Stale     bool             `json:"stale"`
	Error     string           `json:"error,omitempty"`
}

type Options struct {
	CacheSize      int
	TTL            time.Duration
	LocalNarrowing bool
	ReadTimeout    time.Duration
	PageSize       int
	TopN           int
	Logger         logger.Logger
}

// Service carga record sets por preset y deriva las vistas (tabla, gráfico, mapa).
type Service struct {
	reader Reader
	cache  *lru.Cache[presets.Name, Snapshot]
	group  singleflight.Group

	ttl       time.Duration
	narrowing bool
	timeout   time.Duration
	pageSize  int
	topN      int
	log       logger.Logger

	now func() time.Time
}

func NewService(reader Reader, opts Options) *Service {
	size := opts.CacheSize
	if size <= 0 {
		size = 16
	}
	// lru.New solo falla con size <= 0
	cache, _ := lru.New[presets.Name, Snapshot](size)

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	timeout := opts.ReadTimeout
	if timeout <= 0 {
		timeout = animals.DefaultReadTimeout
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	return &Service{
		reader:    reader,
		cache:     cache,
		ttl:       opts.TTL,
		narrowing: opts.LocalNarrowing,
		timeout:   timeout,
		pageSize:  pageSize,
		topN:      topN,
		log:       log.With(map[string]any{"component": "dashboard"}),
		now:       time.Now,
	}
}

func (s *Service) PageSize() int { return s.pageSize }

// Load devuelve el record set del preset.
//   - refresh=false reusa el snapshot en cache si no venció (sort/selección no releen el store)
//   - refresh=true siempre relee (cambio de preset)
//
// Si el store falla y hay un snapshot anterior para el preset, se devuelve marcado
// como stale. Si no hay, el error (envuelto en animals.ErrStoreUnavailable) sube al caller.
func (s *Service) Load(ctx context.Context, preset string, refresh bool) (Snapshot, error) {
	rule, err := presets.Lookup(preset)
	if err != nil {
		return Snapshot{}, err
	}

	if !refresh {
		if snap, ok := s.fresh(rule.Name); ok {
			metrics.RecordSnapshotLookup(string(rule.Name), "hit")
			snap.Source = SourceCache
			return snap, nil
		}
	}

	if s.narrowing && rule.Name != presets.Reset {
		if base, ok := s.fresh(presets.Reset); ok && !base.Stale {
			snap := s.newSnapshot(rule.Name, rule.Apply(base.Records), SourceNarrowed)
			s.cache.Add(rule.Name, snap)
			metrics.RecordSnapshotLookup(string(rule.Name), "narrowed")
			return snap, nil
		}
	}

	// La lectura compartida no depende del primer caller: si ese cliente se
	// desconecta, los demás que esperan el mismo preset siguen recibiendo el resultado.
	readCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(string(rule.Name), func() (any, error) {
		rctx, cancel := context.WithTimeout(readCtx, s.timeout)
		defer cancel()

		recs, err := s.reader.Read(rctx, rule.Query())
		if err != nil {
			return nil, err
		}
		snap := s.newSnapshot(rule.Name, recs, SourceStore)
		s.cache.Add(rule.Name, snap)
		metrics.RecordSnapshotLookup(string(rule.Name), "miss")

		s.log.Debug("snapshot loaded", map[string]any{
			"preset":      rule.Name,
			"snapshot_id": snap.ID,
			"rows":        len(snap.Records),
		})
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return s.fallback(rule.Name, res.Err)
		}
		return res.Val.(Snapshot), nil
	}
}

// Pinned devuelve el snapshot vigente del preset solo si su id es snapshotID.
// No aplica TTL: un gráfico pedido para la vista ya mostrada se dibuja con los
// mismos records aunque el cache haya vencido. Si el preset se recargó (u otro
// cliente lo refrescó) devuelve ErrSnapshotReplaced.
func (s *Service) Pinned(preset, snapshotID string) (Snapshot, error) {
	rule, err := presets.Lookup(preset)
	if err != nil {
		return Snapshot{}, err
	}

	snap, ok := s.cache.Peek(rule.Name)
	if !ok || snap.ID != snapshotID {
		metrics.RecordSnapshotLookup(string(rule.Name), "replaced")
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotReplaced, snapshotID)
	}
	metrics.RecordSnapshotLookup(string(rule.Name), "pinned")
	snap.Source = SourceCache
	return snap, nil
}

func (s *Service) fallback(name presets.Name, cause error) (Snapshot, error) {
	last, ok := s.cache.Peek(name)
	if !ok {
		metrics.RecordSnapshotLookup(string(name), "error")
		s.log.Error("record set unavailable", map[string]any{"preset": name, "error": cause})
		return Snapshot{}, cause
	}

	metrics.RecordSnapshotLookup(string(name), "stale")
	s.log.Warn("serving stale record set", map[string]any{
		"preset":      name,
		"snapshot_id": last.ID,
		"fetched_at":  last.FetchedAt,
		"error":       cause,
	})

	last.Stale = true
	last.Error = userError(cause)
	return last, nil
}

func (s *Service) fresh(name presets.Name) (Snapshot, bool) {
	snap, ok := s.cache.Get(name)
	if !ok {
		return Snapshot{}, false
	}
	if s.ttl > 0 && s.now().Sub(snap.FetchedAt) > s.ttl {
		return Snapshot{}, false
	}
	return snap, true
}

func (s *Service) newSnapshot(name presets.Name, recs []animals.Record, source string) Snapshot {
	if recs == nil {
		recs = []animals.Record{}
	}
	return Snapshot{
		ID:        uuid.NewString(),
		Preset:    name,
		Records:   recs,
		FetchedAt: s.now().UTC(),
		Source:    source,
	}
}

// userError resume el error para mostrarlo en la UI sin detalles del driver.
func userError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "data store timed out; showing last loaded data"
	case errors.Is(err, animals.ErrStoreUnavailable):
		return "data store unavailable; showing last loaded data"
	default:
		return "could not refresh data; showing last loaded data"
	}
}
