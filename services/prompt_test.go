package services

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"bikeshare-explorer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	v := newTestValidator()
	return NewPrompter(strings.NewReader(input), out, v, []string{"chicago", "new york city", "washington"}), out
}

func TestPrompter_AskFilters(t *testing.T) {
	p, out := newTestPrompter("Chicago\n  June \nALL\n")

	spec, err := p.AskFilters()
	require.NoError(t, err)

	assert.Equal(t, models.FilterSpec{City: "chicago", Month: "june", Day: "all"}, spec)
	assert.Contains(t, out.String(), "Chicago, New York City, Washington")
	assert.Contains(t, out.String(), "You have chosen June.")
	assert.NotContains(t, out.String(), "does not match")
}

func TestPrompter_AskFiltersRepromptsUntilValid(t *testing.T) {
	p, out := newTestPrompter("boston\nwashington\njuly\nmarch\nsomeday\nmonday\n")

	spec, err := p.AskFilters()
	require.NoError(t, err)

	assert.Equal(t, models.FilterSpec{City: "washington", Month: "march", Day: "monday"}, spec)
	assert.Equal(t, 3, strings.Count(out.String(), "Your input does not match the available options!"))
	assert.Contains(t, out.String(), `If no month should be selected, type "all".`)
}

func TestPrompter_AskFiltersEOF(t *testing.T) {
	p, _ := newTestPrompter("chicago\n")

	_, err := p.AskFilters()
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_AskYesNo(t *testing.T) {
	tests := []struct {
		answer     string
		defaultYes bool
		want       bool
	}{
		{"yes", false, true},
		{"Y", false, true},
		{"maybe", false, false},
		{"", false, false},
		{"no", true, false},
		{" N ", true, false},
		{"", true, true},
		{"whatever", true, true},
	}

	for _, tt := range tests {
		p, _ := newTestPrompter(tt.answer + "\n")
		got, err := p.AskYesNo("Continue?", tt.defaultYes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "answer %q default %v", tt.answer, tt.defaultYes)
	}
}
