package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rescue-dashboard/internal/adapters/storage/memory"
	"rescue-dashboard/internal/adapters/storage/mongodb"
	"rescue-dashboard/internal/adapters/storage/postgres"
	"rescue-dashboard/internal/adapters/storage/sqlite"
	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/platform/config"
	"rescue-dashboard/internal/platform/logger"
)

var (
	ErrUnknownDriver = errors.New("unknown store driver")
)

// Store es el backend abierto según config.
type Store struct {
	Repository animals.Repository
	Backend    string

	close func() error
}

func (s *Store) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// Open abre el store configurado. Los backends SQL crean la tabla si falta
// y, con seed_on_empty, cargan el seed cuando está vacía.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"driver": cfg.Store.Driver})

	switch cfg.Store.Driver {
	case config.DriverMemory, "":
		recs, err := Seed(cfg)
		if err != nil {
			return nil, err
		}
		log.Info("in-memory store ready", map[string]any{"records": len(recs)})
		return &Store{Repository: memory.NewAnimalsRepo(recs), Backend: config.DriverMemory}, nil

	case config.DriverMongo:
		mcfg := mongodb.Config{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
			Username:   cfg.Mongo.Username,
			Password:   cfg.Mongo.Password,
			AuthSource: cfg.Mongo.AuthSource,
			Timeout:    cfg.Store.ReadTimeout,
		}
		client, err := mongodb.Open(ctx, mcfg)
		if err != nil {
			return nil, fmt.Errorf("open mongo: %w", err)
		}
		log.Info("mongo store ready", map[string]any{
			"database":   cfg.Mongo.Database,
			"collection": cfg.Mongo.Collection,
		})
		return &Store{
			Repository: mongodb.NewAnimalsRepo(mongodb.Collection(client, mcfg)),
			Backend:    config.DriverMongo,
			close:      func() error { return client.Disconnect(context.Background()) },
		}, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := prepare(ctx, cfg, log, func(ctx context.Context, seed []animals.Record) (int, error) {
			return postgres.Prepare(ctx, db, seed)
		}); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Store{Repository: postgres.NewAnimalsRepo(db), Backend: config.DriverPostgres, close: db.Close}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := prepare(ctx, cfg, log, func(ctx context.Context, seed []animals.Record) (int, error) {
			return sqlite.Prepare(ctx, db, seed)
		}); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Store{Repository: sqlite.NewAnimalsRepo(db), Backend: config.DriverSQLite, close: db.Close}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Store.Driver)
	}
}

// Seed devuelve el seed configurado, o el dataset embebido si no hay seed_path.
func Seed(cfg *config.Config) ([]animals.Record, error) {
	if p := strings.TrimSpace(cfg.Store.SeedPath); p != "" {
		recs, err := memory.LoadFile(p)
		if err != nil {
			return nil, fmt.Errorf("load seed %s: %w", p, err)
		}
		return recs, nil
	}
	return memory.SampleRecords()
}

func prepare(ctx context.Context, cfg *config.Config, log logger.Logger, fn func(context.Context, []animals.Record) (int, error)) error {
	var seed []animals.Record
	if cfg.Store.SeedOnEmpty {
		recs, err := Seed(cfg)
		if err != nil {
			return err
		}
		seed = recs
	}

	n, err := fn(ctx, seed)
	if err != nil {
		return fmt.Errorf("prepare schema: %w", err)
	}
	log.Info("sql store ready", map[string]any{"seeded": n})
	return nil
}
