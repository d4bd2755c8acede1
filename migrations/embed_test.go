package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_PairsUpAndDown(t *testing.T) {
	ups, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(FS, down)
		assert.NoError(t, err, "missing %s", down)
	}
}

func TestFS_ScheduledSlotsBypassCallerRLS(t *testing.T) {
	raw, err := fs.ReadFile(FS, "000002_scheduled_slots.up.sql")
	require.NoError(t, err)
	sql := string(raw)

	assert.Contains(t, sql, "CREATE VIEW public.scheduled_slots WITH (security_invoker = false)")
	assert.Contains(t, sql, "WHERE status = 'scheduled'")
	assert.Contains(t, sql, "GRANT SELECT ON public.scheduled_slots TO authenticated")
	// наружу только слот, без user_id и notes
	assert.NotContains(t, sql, "user_id")
	assert.NotContains(t, sql, "notes")
}
