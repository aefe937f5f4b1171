package impl

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func TestToColumnsMapsNamesAndEncodesJSON(t *testing.T) {
	cols, err := toColumns(repositories.Fields{
		"isCheckedIn":  true,
		"checkedOutAt": nil,
		"parentIds":    []string{"p1", "p2"},
	}, childColumns, true)
	require.NoError(t, err)

	assert.Equal(t, true, cols["is_checked_in"])
	assert.Contains(t, cols, "checked_out_at")
	assert.Nil(t, cols["checked_out_at"])

	expr, ok := cols["parent_ids"].(clause.Expr)
	require.True(t, ok)
	assert.Equal(t, "?::jsonb", expr.SQL)
	assert.Equal(t, []interface{}{`["p1","p2"]`}, expr.Vars)

	assert.NotNil(t, cols["updated_at"])
}

func TestToColumnsRejectsUnknownField(t *testing.T) {
	_, err := toColumns(repositories.Fields{"password": "x"}, accountColumns, true)
	assert.Error(t, err)
}

func TestToColumnsSettingsHasNoUpdatedAt(t *testing.T) {
	cols, err := toColumns(repositories.Fields{"openingHours": models.OpeningHours{Open: "07:30", Close: "16:30"}}, settingsColumns, true)
	require.NoError(t, err)
	assert.Len(t, cols, 1)
	_, ok := cols["opening_hours"].(clause.Expr)
	assert.True(t, ok)
}

func TestMapErr(t *testing.T) {
	assert.ErrorIs(t, mapErr(gorm.ErrRecordNotFound), repositories.ErrNotFound)
	other := errors.New("connection refused")
	assert.Equal(t, other, mapErr(other))
}
