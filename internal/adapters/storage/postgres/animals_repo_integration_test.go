//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"rescue-dashboard/internal/adapters/storage/memory"
	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/presets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func skipIfNoDocker(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

func startPostgres(t *testing.T) string {
	t.Helper()
	skipIfNoDocker(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "rescue",
			"POSTGRES_PASSWORD": "rescue",
			"POSTGRES_DB":       "aac",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://rescue:rescue@%s:%s/aac?sslmode=disable", host, port.Port())
}

func TestAnimalsRepo_Postgres(t *testing.T) {
	dsn := startPostgres(t)

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	recs, err := memory.SampleRecords()
	require.NoError(t, err)

	n, err := Prepare(ctx, db, recs)
	require.NoError(t, err)
	require.Equal(t, len(recs), n)

	repo := NewAnimalsRepo(db)
	for _, rule := range presets.All() {
		out, err := repo.Read(ctx, rule.Query(), animals.DefaultProjection)
		require.NoError(t, err, rule.Name)
		assert.ElementsMatch(t, rule.Apply(recs), out, rule.Name)
	}
}
