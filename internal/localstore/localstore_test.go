package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := Open(path)
	require.NoError(t, err)

	type profile struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	var got profile
	found, err := s.Get("profile", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("profile", profile{Name: "Asha", Age: 34}))

	found, err = s.Get("profile", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, profile{Name: "Asha", Age: 34}, got)

	require.NoError(t, s.Delete("profile"))
	found, err = s.Get("profile", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is fine.
	require.NoError(t, s.Delete("profile"))
}

func TestReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("skyways_current_user", map[string]string{"id": "u1"}))
	require.NoError(t, s.Set(BookingsKey("u1"), []string{"SWABC123"}))

	reopened, err := Open(path)
	require.NoError(t, err)

	var user map[string]string
	found, err := reopened.Get("skyways_current_user", &user)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "u1", user["id"])

	var refs []string
	found, err = reopened.Get("skyways_bookings_u1", &refs)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"SWABC123"}, refs)
}

func TestBookingsKey(t *testing.T) {
	assert.Equal(t, "skyways_bookings_demo-user-123", BookingsKey("demo-user-123"))
}
