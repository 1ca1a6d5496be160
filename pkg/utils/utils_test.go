package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 7.71, RoundWithTwoDecimalPlace(7.7125))
	assert.Equal(t, 5.5, RoundWithTwoDecimalPlace(5.5))
	assert.Equal(t, 2.35, RoundWithTwoDecimalPlace(2.349))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-17")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), *date)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("17/03/2025")
	assert.Error(t, err)
}

func TestStartOfMonth(t *testing.T) {
	got := StartOfMonth(time.Date(2025, 7, 23, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestGenerateReference(t *testing.T) {
	ref, err := GenerateReference()
	require.NoError(t, err)
	assert.Len(t, ref, referenceLength)
	assert.Regexp(t, "^["+referenceAlphabet+"]+$", ref)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"b\": true\n}", PrettyJson([]byte(`{"b":true}`)))
}
