//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"quoteflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor_RoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 123456000, time.UTC)
	id := uuid.New()

	encoded := queries.EncodeAfterCursor(createdAt, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	assert.Equal(t, id, gotID)
	assert.True(t, gotTime.Equal(createdAt), "microsecond precision survives the round trip")
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "missing version prefix", cursor: base64.URLEncoding.EncodeToString([]byte("1234-" + uuid.New().String()))},
		{name: "unsupported version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:1234-" + uuid.New().String()))},
		{name: "no separator", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1234"))},
		{name: "bad timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.New().String()))},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1234-not-a-uuid"))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, 100, queries.ValidateLimit(100))
	assert.Equal(t, 100, queries.ValidateLimit(500))
}
