package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 0.0, PercentChange(0, 100))
	assert.Equal(t, 50.0, PercentChange(100, 150))
	assert.Equal(t, -25.0, PercentChange(200, 150))
	assert.Equal(t, 33.33, PercentChange(3, 4))
}

func TestMicrosToUnits(t *testing.T) {
	assert.Equal(t, 12.35, MicrosToUnits(12_345_678))
	assert.Equal(t, 0.0, MicrosToUnits(0))
}

func TestParseDateRange(t *testing.T) {
	now := time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

	start, end, err := ParseDateRange("", "", 7, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), start)

	start, end, err = ParseDateRange("2024-05-01", "2024-05-10", 7, now)
	require.NoError(t, err)
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 10, end.Day())

	_, _, err = ParseDateRange("2024-05-10", "2024-05-01", 7, now)
	assert.Error(t, err)

	_, _, err = ParseDateRange("10/05/2024", "", 7, now)
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson([]byte(`{"a":1}`)))
}
