package session

import (
	"context"
	"errors"
	"testing"

	"swifttrack-dashboard/internal/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorage struct {
	MemoryStorage
	err error
}

func (f *failingStorage) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f *failingStorage) Put(context.Context, string, string) error         { return f.err }

func TestLoginRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	identity := record.Identity{UserID: "S1", Role: record.RoleSupplier, Name: "Acme", Username: "acme"}

	require.NoError(t, NewStore(storage).Login(ctx, identity))

	// A fresh store over the same storage is a reload.
	reloaded := NewStore(storage)
	assert.Nil(t, reloaded.Current())

	restored, err := reloaded.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, identity, *restored)
	assert.Equal(t, identity, *reloaded.Current())
}

func TestLogoutThenRestoreYieldsNoSession(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage)

	require.NoError(t, store.Login(ctx, record.Identity{UserID: "D001", Role: record.RoleDriver}))
	require.NoError(t, store.Logout(ctx))
	assert.Nil(t, store.Current())

	restored, err := NewStore(storage).Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)

	_, found, _ := storage.Get(ctx, StorageKey)
	assert.False(t, found)
}

func TestRestoreIgnoresMalformedValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{user"},
		{name: "array", raw: `["admin"]`},
		{name: "null", raw: "null"},
		{name: "missing role", raw: `{"user_id":"U1"}`},
		{name: "empty role", raw: `{"user_id":"U1","role":""}`},
		{name: "role not a string", raw: `{"user_id":"U1","role":7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			storage := NewMemoryStorage()
			require.NoError(t, storage.Put(ctx, StorageKey, tt.raw))

			store := NewStore(storage)
			restored, err := store.Restore(ctx)

			require.NoError(t, err)
			assert.Nil(t, restored)
			assert.Nil(t, store.Current())
		})
	}
}

func TestRestoreReportsStorageFailure(t *testing.T) {
	boom := errors.New("disk unavailable")
	store := NewStore(&failingStorage{err: boom})

	_, err := store.Restore(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestLoginDoesNotAdoptWhenPersistFails(t *testing.T) {
	store := NewStore(&failingStorage{err: errors.New("read-only")})

	err := store.Login(context.Background(), record.Identity{UserID: "A1", Role: record.RoleAdmin})
	assert.Error(t, err)
	assert.Nil(t, store.Current())
}

func TestCurrentReturnsCopy(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	require.NoError(t, store.Login(context.Background(), record.Identity{UserID: "M1", Role: record.RoleManager}))

	got := store.Current()
	got.Role = record.RoleAdmin

	assert.Equal(t, record.RoleManager, store.Current().Role)
}
