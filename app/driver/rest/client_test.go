package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihelperdrone/droneops/app/domain"
)

// staticCreds is a fixed credential source for tests.
type staticCreds string

func (c staticCreds) Credential(ctx context.Context) string { return string(c) }

func TestBearerHeaderWithCredential(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticCreds("ory_st_abc"), slog.Default())
	_, err := NewDroneAPI(c).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer ory_st_abc", gotAuth)
}

func TestNoHeaderWithoutCredential(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	// An absent credential is tolerated: the request goes out without the
	// header and the backend decides.
	c := NewClient(srv.URL, staticCreds(""), slog.Default())
	_, err := NewDroneAPI(c).List(context.Background())

	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestNon2xxReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("Acesso negado"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticCreds(""), slog.Default())
	_, err := NewDroneAPI(c).List(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Acesso negado", apiErr.Body)
	assert.Equal(t, "HTTP 403: Acesso negado", apiErr.Error())
}

func TestGetDecodesWireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drones/7", r.URL.Path)
		w.Write([]byte(`{"idDrone": 7, "nome": "Falcao-1", "modelo": "DJI M300", "status": "DISPONIVEL", "bateria": 87, "capacidadeCarga": 2.5}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticCreds(""), slog.Default())
	drone, err := NewDroneAPI(c).GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), drone.ID)
	assert.Equal(t, "Falcao-1", drone.Name)
	assert.Equal(t, 87, drone.Battery)
	assert.Equal(t, 2.5, drone.PayloadCapacity)
}

func TestCreateSendsWireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/usuarios", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Maria", payload["nome"])
		assert.Equal(t, "OPERADOR", payload["nivelAcesso"])
		assert.Equal(t, "ATIVO", payload["status"])
		assert.NotContains(t, payload, "idUsuario")

		w.Write([]byte(`{"idUsuario": 42, "nome": "Maria", "email": "maria@example.com", "nivelAcesso": "OPERADOR", "status": "ATIVO"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticCreds("tok"), slog.Default())
	created, err := NewUserAPI(c).Create(context.Background(), &domain.User{
		Name:        "Maria",
		Email:       "maria@example.com",
		AccessLevel: domain.AccessLevelOperator,
		Status:      domain.UserStatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestDeleteSendsNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/alertas/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticCreds(""), slog.Default())
	assert.NoError(t, NewAlertAPI(c).Delete(context.Background(), 3))
}

func TestResourcePaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticCreds(""), slog.Default())
	ctx := context.Background()

	_, _ = NewDroneAPI(c).List(ctx)
	_, _ = NewRiskAreaAPI(c).List(ctx)
	_, _ = NewSensorAPI(c).List(ctx)
	_, _ = NewAlertAPI(c).List(ctx)
	_, _ = NewSignageAPI(c).List(ctx)
	_, _ = NewUserAPI(c).List(ctx)

	assert.Equal(t, []string{
		"/drones", "/area-risco", "/sensores", "/alertas", "/sinalizacoes", "/usuarios",
	}, paths)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drones", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", staticCreds(""), slog.Default())
	_, err := NewDroneAPI(c).List(context.Background())
	assert.NoError(t, err)
}
