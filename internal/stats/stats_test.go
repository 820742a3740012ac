package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{Raw: "123 Main St, V8W 1P6", Cleaned: "123 Main St  /PJ"},
		{Raw: "45 Oak Ave", Cleaned: "45 Oak Ave"},
	}

	summary, err := Summarize(records)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Records)
	assert.InDelta(t, 0.5, summary.PostalJunkRate, 1e-9)
	assert.InDelta(t, 0.0, summary.FrontGateRate, 1e-9)
	// cleaned token counts are 4 and 3
	assert.InDelta(t, 3.5, summary.MeanTokens, 1e-9)
	assert.InDelta(t, 0.7071, summary.StdDevTokens, 1e-3)
	assert.InDelta(t, 3.0, summary.MedianTokens, 1e-9)
	assert.Greater(t, summary.MeanRawTokens, 0.0)
}

func TestSummarizeFrontGate(t *testing.T) {
	records := []Record{
		{Raw: "123--45 Main St", Cleaned: "123 /FG 45 Main St"},
	}

	summary, err := Summarize(records)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Records)
	assert.InDelta(t, 1.0, summary.FrontGateRate, 1e-9)
	assert.InDelta(t, 0.0, summary.StdDevTokens, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	summary, err := Summarize(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Records)
	assert.Zero(t, summary.MeanTokens)
}
