package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rescue-dashboard/internal/router"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPresets_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPresets(&buf, false))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.Contains(t, out, "Water Rescue")
	assert.Contains(t, out, "Intact Female")
	assert.Contains(t, out, "26-156")
	assert.NotContains(t, out, "query:")
}

func TestPrintPresets_WithQueries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPresets(&buf, true))

	assert.Contains(t, buf.String(), `"$in"`)
}

func TestHealthcheck_OK(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, runHealthcheck(context.Background(), cmd, ts.URL, time.Second))
	assert.Equal(t, "ok (store: memory)\n", buf.String())
}

func TestHealthcheck_Failure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	err := runHealthcheck(context.Background(), &cobra.Command{}, ts.URL, time.Second)
	assert.Error(t, err)
}
