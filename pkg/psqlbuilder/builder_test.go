package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("barbers").
		Where(squirrel.Eq{"user_id": 7}).
		Where(squirrel.Eq{"status": true}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM barbers WHERE user_id = $1 AND status = $2", query)
	assert.Equal(t, []interface{}{7, true}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, _, err := Update("bookings").
		Set("status", "cancelled").
		Where(squirrel.Eq{"id": 1}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE bookings SET status = $1 WHERE id = $2", query)
}
