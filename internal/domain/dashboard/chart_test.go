package dashboard

import (
	"bytes"
	"strings"
	"testing"

	"rescue-dashboard/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPie_SVG(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPie(&buf, Distribution(sample(t), animals.ColBreed, DefaultTopN))
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<svg"))
	assert.Contains(t, out, ChartTitle)
	assert.Contains(t, out, "Other (46.9%)")
}

func TestRenderPie_Placeholder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPie(&buf, nil))
	assert.Contains(t, buf.String(), "No data (100.0%)")
}
