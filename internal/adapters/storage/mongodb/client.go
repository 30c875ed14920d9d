package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	ErrMissingURI = errors.New("mongo uri is required")
)

// Config es la conexión al store de documentos del shelter.
type Config struct {
	URI        string
	Database   string
	Collection string
	Username   string
	Password   string
	AuthSource string
	Timeout    time.Duration
}

func (c Config) withDefaults() Config {
	if c.Database == "" {
		c.Database = "AAC"
	}
	if c.Collection == "" {
		c.Collection = "animals"
	}
	if c.AuthSource == "" {
		c.AuthSource = "admin"
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	return c
}

// Open conecta y hace ping. Las credenciales van aparte de la URI
// para no loguearlas junto con el host.
func Open(ctx context.Context, cfg Config) (*mongo.Client, error) {
	cfg = cfg.withDefaults()
	if strings.TrimSpace(cfg.URI) == "" {
		return nil, ErrMissingURI
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)
	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username:   cfg.Username,
			Password:   cfg.Password,
			AuthSource: cfg.AuthSource,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// Collection resuelve la colección de outcomes según cfg.
func Collection(client *mongo.Client, cfg Config) *mongo.Collection {
	cfg = cfg.withDefaults()
	return client.Database(cfg.Database).Collection(cfg.Collection)
}
