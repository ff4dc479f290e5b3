package output_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analytics "github.com/jschlyter/custom-integrations-analytics"
	"github.com/jschlyter/custom-integrations-analytics/internal/output"
)

func summaryReport() *analytics.Report {
	return analytics.Build(
		[]analytics.UsageRecord{
			{Identifier: "a", Count: 5},
			{Identifier: "b", Count: 10},
			{Identifier: "hacs", Count: 2500},
		},
		[]analytics.Integration{{Domain: "hacs", ManifestName: "HACS", FullName: "hacs/integration"}},
	)
}

func TestReportToMapTop(t *testing.T) {
	t.Parallel()

	meta := output.ReportToMap(summaryReport(), 2)

	top, ok := meta["top"].([]any)
	require.True(t, ok)
	require.Len(t, top, 2)

	first, ok := top[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, first["rank"])
	assert.Equal(t, "hacs", first["integration"])
	assert.Equal(t, int64(2500), first["count"])
	assert.Equal(t, "HACS", first["description"])
	assert.Equal(t, "https://github.com/hacs/integration", first["link"])

	second, ok := top[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "b", second["integration"])
	assert.NotContains(t, second, "link")

	stats, ok := meta["statistics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3, stats["entries"])
	assert.Equal(t, 1, stats["enriched"])
	assert.Equal(t, int64(2515), stats["total"])
}

func TestReportToMapAll(t *testing.T) {
	t.Parallel()

	top, ok := output.ReportToMap(summaryReport(), 0)["top"].([]any)
	require.True(t, ok)
	assert.Len(t, top, 3)

	top, ok = output.ReportToMap(summaryReport(), 50)["top"].([]any)
	require.True(t, ok)
	assert.Len(t, top, 3)
}

func TestReportToFriendlyMap(t *testing.T) {
	t.Parallel()

	meta := output.ReportToFriendlyMap(summaryReport(), 1)

	assert.Equal(t, "3 integrations (1 enriched), 2,515 installations", meta["summary"])
	assert.Equal(t, []any{"  1. hacs: 2,500 (HACS)"}, meta["top"])
}
