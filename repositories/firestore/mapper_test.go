package firestore

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"testing"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestDocumentReadsLooseTypes(t *testing.T) {
	d := document{
		"name":        "Emma Berg",
		"age":         int64(4),
		"isCheckedIn": "yes",
		"parentIds":   []interface{}{"p1", 7, "p2"},
		"checkedInAt": nil,
		"createdAt":   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		"updatedAt":   "2024-01-02T03:04:05.000Z",
	}

	assert.Equal(t, "Emma Berg", d.str("name"))
	assert.Equal(t, 4, d.integer("age"))
	assert.False(t, d.boolean("isCheckedIn"))
	assert.Equal(t, []string{"p1", "p2"}, d.strings("parentIds"))
	assert.Nil(t, d.optStr("checkedInAt"))
	assert.Equal(t, "", d.str("missing"))
	assert.Empty(t, d.strings("missing"))

	require.NotNil(t, d.timestamp("createdAt"))
	assert.Equal(t, "2024-01-02T03:04:05.000Z", *d.timestamp("createdAt"))
	assert.Equal(t, "2024-01-02T03:04:05.000Z", *d.timestamp("updatedAt"))
	assert.Nil(t, d.timestamp("missing"))
}

func TestStoreValue(t *testing.T) {
	var nilStr *string
	assert.Nil(t, storeValue(nilStr))
	assert.Equal(t, "08:15", storeValue(models.StringPtr("08:15")))
	assert.Equal(t, []string{}, storeValue([]string(nil)))

	notes := storeValue([]models.Note{{ID: "n1", Text: "Tok med bamse", Timestamp: "2024-01-02T03:04:05.000Z"}})
	assert.Equal(t, []map[string]interface{}{{"id": "n1", "text": "Tok med bamse", "timestamp": "2024-01-02T03:04:05.000Z"}}, notes)
}

func TestToUpdatesStampsUpdatedAt(t *testing.T) {
	updates := toUpdates(repositories.Fields{"isCheckedIn": true}, true)
	require.Len(t, updates, 2)
	assert.Equal(t, "updatedAt", updates[1].Path)
	assert.Equal(t, fs.ServerTimestamp, updates[1].Value)

	assert.Len(t, toUpdates(repositories.Fields{"phone": "1"}, false), 1)
}

func TestTimestampOrNow(t *testing.T) {
	assert.Equal(t, fs.ServerTimestamp, timestampOrNow(nil))
	assert.Equal(t, fs.ServerTimestamp, timestampOrNow(models.StringPtr("not a time")))
	assert.Equal(t, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC), timestampOrNow(models.StringPtr("2024-05-06T07:08:09.000Z")))
}

func TestMapErr(t *testing.T) {
	assert.ErrorIs(t, mapErr(status.Error(codes.NotFound, "gone")), repositories.ErrNotFound)
	assert.NoError(t, mapErr(nil))
	other := status.Error(codes.Unavailable, "down")
	assert.Equal(t, other, mapErr(other))
}
