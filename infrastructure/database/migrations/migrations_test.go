package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesArePaired(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("arquivo fora do padrão: %s", name)
		}
	}

	assert.Equal(t, ups, downs)
}

func TestSchemaHasUniqueConstraints(t *testing.T) {
	raw, err := files.ReadFile("sql/000001_init_schema.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.Contains(t, schema, "UNIQUE (campaign_id, date)")
	assert.Contains(t, schema, "UNIQUE (campaign_id, type, date)")
	assert.Contains(t, schema, "UNIQUE (manager_id, client_user_id)")
	assert.Contains(t, schema, "ON DELETE CASCADE")
}
