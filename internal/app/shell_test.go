package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"swifttrack-dashboard/internal/apiclient"
	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/navigation"
	"swifttrack-dashboard/internal/session"
	"swifttrack-dashboard/internal/usecase/auth"
	"swifttrack-dashboard/internal/usecase/dashboard"
	"swifttrack-dashboard/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstream struct {
	login          string
	deliveries     string
	deliveryStatus int
	deliveryCalls  atomic.Int32
}

func (u *upstream) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+apiclient.EndpointLogin, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(u.login))
	})
	mux.HandleFunc("GET "+apiclient.EndpointDeliveries, func(w http.ResponseWriter, r *http.Request) {
		u.deliveryCalls.Add(1)
		if u.deliveryStatus != 0 {
			w.WriteHeader(u.deliveryStatus)
			return
		}
		w.Write([]byte(u.deliveries))
	})
	mux.HandleFunc("GET "+apiclient.EndpointVehicles, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	return mux
}

func newShell(t *testing.T, up *upstream, storage session.Storage) *Shell {
	t.Helper()
	srv := httptest.NewServer(up.handler())
	t.Cleanup(srv.Close)

	client := apiclient.New(srv.URL)
	return NewShell(
		session.NewStore(storage),
		auth.NewService(client),
		func(identity *record.Identity) (*view.View, error) {
			return dashboard.New(identity, client)
		},
	)
}

func TestSupplierLoginMountsDashboard(t *testing.T) {
	ctx := context.Background()
	up := &upstream{
		login:      `{"success":true,"user":{"user_id":"S1","role":"supplier","name":"Acme"}}`,
		deliveries: `[{"delivery_id":"DL1","supplier_id":"S1","status":"Pending"},{"delivery_id":"DL2","supplier_id":"S9","status":"Pending"}]`,
	}
	storage := session.NewMemoryStorage()
	shell := newShell(t, up, storage)

	require.NoError(t, shell.Start(ctx))
	assert.Equal(t, navigation.ViewLogin, shell.ViewName())
	assert.Nil(t, shell.View())

	result, err := shell.Login(ctx, "acme", "secret")
	require.NoError(t, err)
	require.True(t, result.OK())

	assert.Equal(t, record.RoleSupplier, shell.ViewName())
	require.NotNil(t, shell.View())

	s, err := shell.View().Summary(dashboard.ListDeliveries)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Total)

	raw, found, err := storage.Get(ctx, session.StorageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"user_id":"S1","role":"supplier","name":"Acme"}`, raw)

	// a second shell over the same storage comes back logged in
	restarted := newShell(t, up, storage)
	require.NoError(t, restarted.Start(ctx))
	assert.Equal(t, record.RoleSupplier, restarted.ViewName())
	assert.Equal(t, "S1", restarted.Identity().UserID)
}

func TestRejectedLoginStaysOnLogin(t *testing.T) {
	up := &upstream{login: `{"success":false}`}
	storage := session.NewMemoryStorage()
	shell := newShell(t, up, storage)

	result, err := shell.Login(context.Background(), "acme", "nope")
	require.NoError(t, err)

	assert.Equal(t, auth.MessageInvalidCredentials, result.Message)
	assert.Equal(t, navigation.ViewLogin, shell.ViewName())
	assert.Nil(t, shell.Identity())

	_, found, err := storage.Get(context.Background(), session.StorageKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFailedInitialFetchStillMounts(t *testing.T) {
	up := &upstream{
		login:          `{"success":true,"user":{"user_id":"D001","role":"driver"}}`,
		deliveryStatus: http.StatusInternalServerError,
	}
	shell := newShell(t, up, session.NewMemoryStorage())

	result, err := shell.Login(context.Background(), "driver", "pw")
	require.NoError(t, err)
	require.True(t, result.OK())

	assert.Equal(t, record.RoleDriver, shell.ViewName())
	snap, err := shell.View().Snapshot(view.Query{})
	require.NoError(t, err)
	assert.Contains(t, snap.Error, "API Error: 500 Internal Server Error")
	assert.Equal(t, int32(1), up.deliveryCalls.Load())
}

func TestLogoutReturnsToLogin(t *testing.T) {
	ctx := context.Background()
	up := &upstream{
		login:      `{"success":true,"user":{"user_id":"D001","role":"driver"}}`,
		deliveries: `[]`,
	}
	storage := session.NewMemoryStorage()
	shell := newShell(t, up, storage)

	_, err := shell.Login(ctx, "driver", "pw")
	require.NoError(t, err)
	require.NoError(t, shell.Logout(ctx))

	assert.Equal(t, navigation.ViewLogin, shell.ViewName())
	assert.Nil(t, shell.View())
	assert.Nil(t, shell.Identity())

	restarted := newShell(t, up, storage)
	require.NoError(t, restarted.Start(ctx))
	assert.Equal(t, navigation.ViewLogin, restarted.ViewName())
}

func TestRoleWithoutDashboard(t *testing.T) {
	up := &upstream{login: `{"success":true,"user":{"user_id":"X1","role":"auditor"}}`}
	shell := newShell(t, up, session.NewMemoryStorage())

	result, err := shell.Login(context.Background(), "x", "pw")
	require.NoError(t, err)
	require.True(t, result.OK())

	assert.Equal(t, "auditor", shell.ViewName())
	assert.Nil(t, shell.View())
}

func TestMalformedPersistedSessionIsIgnored(t *testing.T) {
	ctx := context.Background()
	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Put(ctx, session.StorageKey, `{"user_id":"S1"}`))

	shell := newShell(t, &upstream{}, storage)
	require.NoError(t, shell.Start(ctx))
	assert.Equal(t, navigation.ViewLogin, shell.ViewName())
}
