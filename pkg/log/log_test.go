package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("correlation_id"))
	assert.True(t, keepInDevelopment("campaign_id"))
	assert.True(t, keepInDevelopment("user_role"))
	assert.False(t, keepInDevelopment("referer"))
}

func TestWithFieldsFiltersInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	base := L
	filtered := base.WithFields(Fields{"referer": "x", "remote_addr": "y"})
	assert.Same(t, base, filtered)

	kept := base.WithFields(Fields{"campaign_id": "abc123"})
	assert.NotSame(t, base, kept)
}
