package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("appointments").
		Where(squirrel.Eq{"appointment_date": "2026-11-05", "status": "scheduled"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM appointments WHERE appointment_date = $1 AND status = $2", query)
	assert.Equal(t, []interface{}{"2026-11-05", "scheduled"}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, _, err := Update("profiles").
		Set("full_name", "Ana").
		Where(squirrel.Eq{"id": 1}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE profiles SET full_name = $1 WHERE id = $2", query)
}
