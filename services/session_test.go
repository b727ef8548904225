package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"bikeshare-explorer/storage"
	"bikeshare-explorer/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, input string, cities map[string]string) (*Session, *bytes.Buffer) {
	t.Helper()
	logger := utils.NewNopLogger()
	registry := storage.NewRegistry(t.TempDir(), cities)
	pipeline := NewPipeline(registry, newTestLoader(), NewStatsEngine(logger), logger)

	out := &bytes.Buffer{}
	prompter := NewPrompter(strings.NewReader(input), out, NewFilterValidator(registry), registry.Cities())
	return NewSession(pipeline, prompter, out, logger), out
}

func TestSession_RunBrowsesAndExits(t *testing.T) {
	path := writeDataset(t, "chicago.csv", sampleCSV)
	s, out := newTestSession(t, "chicago\nall\nall\nyes\nyes\nno\n", map[string]string{"chicago": path})

	require.NoError(t, s.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "US BIKESHARE STATISTICS")
	assert.Contains(t, text, "Do you wish to continue?")
	assert.Contains(t, text, "End of raw data.")
	assert.Contains(t, text, "Would you like to restart?")
	assert.Equal(t, 1, strings.Count(text, "Do you wish to continue?"))
}

func TestSession_RunStopsBrowsing(t *testing.T) {
	path := writeDataset(t, "chicago.csv", sampleCSV)
	s, out := newTestSession(t, "chicago\nall\nall\nyes\nno\nno\n", map[string]string{"chicago": path})

	require.NoError(t, s.Run(context.Background()))
	assert.NotContains(t, out.String(), "End of raw data.")
}

func TestSession_RunRestarts(t *testing.T) {
	path := writeDataset(t, "chicago.csv", sampleCSV)
	s, out := newTestSession(t, "chicago\nall\nall\nno\nyes\nchicago\njune\nall\nno\nno\n", map[string]string{"chicago": path})

	require.NoError(t, s.Run(context.Background()))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "US BIKESHARE STATISTICS"))
	assert.Equal(t, 2, strings.Count(text, "No raw data displayed."))
}

func TestSession_RunReportsLoadFailure(t *testing.T) {
	s, out := newTestSession(t, "atlantis\nall\nall\nno\n", map[string]string{"atlantis": "atlantis.csv"})

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "Could not analyse Atlantis")
	assert.NotContains(t, out.String(), "US BIKESHARE STATISTICS")
}

func TestSession_RunEndsOnEOF(t *testing.T) {
	s, _ := newTestSession(t, "chicago\n", nil)
	assert.NoError(t, s.Run(context.Background()))
}

func TestSession_RunCancelled(t *testing.T) {
	s, _ := newTestSession(t, "", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
}
