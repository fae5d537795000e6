package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cdn-manager/core/faults"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, mutate func(*Config)) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := Config{
		BaseURL:       server.URL,
		Account:       "a1b2c3",
		Token:         "secret-token",
		ApplicationID: "cdn-manager-test",
	}
	if mutate != nil {
		mutate(&cfg)
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"token only", Config{Token: "t"}, false},
		{"username and password", Config{Username: "u", Password: "p"}, false},
		{"neither", Config{}, true},
		{"both", Config{Token: "t", Username: "u", Password: "p"}, true},
		{"username without password", Config{Username: "u"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.True(t, faults.IsCategory(err, faults.ConfigurationError))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewClient_RequiresAccount(t *testing.T) {
	_, err := NewClient(Config{Token: "t"})
	assert.True(t, faults.IsCategory(err, faults.ConfigurationError))
}

func TestSend_Headers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "cdn-manager-test", r.Header.Get("X-Application-Id"))
		assert.Equal(t, acceptHeader, r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"hostname":"o1.example.com"}`, string(body))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}), nil)

	data, err := client.Send(context.Background(), http.MethodPost, "/api/v1/ping", map[string]any{"hostname": "o1.example.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
}

func TestSend_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), nil)

	_, err := client.Send(context.Background(), http.MethodGet, "/missing", nil)
	assert.True(t, errors.Is(err, faults.ErrNotFound))
	assert.False(t, faults.IsCategory(err, faults.APIError))
}

func TestSend_APIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Invalid hostname", "code": 400}`))
	}), nil)

	_, err := client.Send(context.Background(), http.MethodPut, "/api/v1/accounts/a1b2c3/origins/1", map[string]any{})
	require.Error(t, err)
	assert.True(t, faults.IsCategory(err, faults.APIError))

	var details *faults.Details
	require.True(t, errors.As(err, &details))
	assert.Equal(t, http.StatusBadRequest, details.Status)
	assert.Equal(t, "Bad Request", details.Reason)
	assert.Equal(t, "Invalid hostname", details.Message)
	assert.Contains(t, details.URL, "/api/v1/accounts/a1b2c3/origins/1")
	assert.Contains(t, err.Error(), "Error: Invalid hostname")
}

func TestSend_APIErrorWithoutJSONBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}), nil)

	_, err := client.Send(context.Background(), http.MethodGet, "/api/v1/pops", nil)

	var details *faults.Details
	require.True(t, errors.As(err, &details))
	assert.Equal(t, http.StatusInternalServerError, details.Status)
	assert.Empty(t, details.Message)
	assert.NotContains(t, err.Error(), "Error:")
}

func TestSend_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(Config{BaseURL: url, Account: "a", Token: "t"})
	require.NoError(t, err)

	_, err = client.Send(context.Background(), http.MethodGet, "/api/v1/pops", nil)
	assert.True(t, faults.IsCategory(err, faults.TransportError))
}

func TestAuthenticate_PasswordGrant(t *testing.T) {
	var tokenCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "ops", r.PostForm.Get("username"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))
		assert.Equal(t, "cdn-manager-test", r.Header.Get("X-Application-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "issued", "token_type": "Bearer", "expires_in": 3600}`))
	})
	mux.HandleFunc("/api/v1/pops", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer issued", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"list": []}`))
	})

	client := newTestClient(t, mux, func(cfg *Config) {
		cfg.Token = ""
		cfg.Username = "ops"
		cfg.Password = "hunter2"
	})

	_, err := client.Send(context.Background(), http.MethodGet, "/api/v1/pops", nil)
	require.NoError(t, err)
	_, err = client.Send(context.Background(), http.MethodGet, "/api/v1/pops", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, tokenCalls)
}

func TestAuthenticate_Rejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Invalid credentials"}`))
	})

	client := newTestClient(t, mux, func(cfg *Config) {
		cfg.Token = ""
		cfg.Username = "ops"
		cfg.Password = "wrong"
	})

	err := client.Authenticate(context.Background())
	require.Error(t, err)

	var details *faults.Details
	require.True(t, errors.As(err, &details))
	assert.Equal(t, http.StatusUnauthorized, details.Status)
	assert.Equal(t, "Invalid credentials", details.Message)
}
