// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// newTestAdapter creates an httpAccountAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpAccountAdapter {
	t.Helper()
	a, err := NewHTTPAccountAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpAccountAdapter)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:8000/", want: "http://localhost:8000"},
		{raw: "localhost:8000", want: "http://localhost:8000"},
		{raw: " https://accounts.example.com ", want: "https://accounts.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPAccountAdapter_PreloadsToken(t *testing.T) {
	a, err := NewHTTPAccountAdapter(config.ClientAdapter{HTTPAddress: "localhost:8000", Token: " abc "}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "abc", a.Token())
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login/", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "alice", Password: "pw1"}, creds)

		writeJSON(w, http.StatusOK, `{"token":"k1"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "k1", token)
	assert.Equal(t, "k1", a.Token())
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":"Wrong Credentials"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Wrong Credentials")
	assert.Empty(t, a.Token())
}

func TestAddUser_SendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/adduser/", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer k1" {
			writeJSON(w, http.StatusForbidden, `{"error":"Authentication credentials were not provided."}`)
			return
		}
		writeJSON(w, http.StatusCreated, `{"success":"User created"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	creds := models.Credentials{Username: "bob", Password: "pw2", Email: "b@x.com"}

	err := a.AddUser(context.Background(), creds)
	require.ErrorIs(t, err, ErrForbidden)

	a.SetToken("k1")
	require.NoError(t, a.AddUser(context.Background(), creds))
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"duplicate", http.StatusBadRequest, `{"error":"User already exists"}`, ErrBadRequest, "User already exists"},
		{"method", http.StatusMethodNotAllowed, `{"error":"Method \"GET\" not allowed."}`, ErrMethodNotAllowed, `Method "GET" not allowed.`},
		{"internal", http.StatusInternalServerError, `{"error":"internal server error"}`, ErrInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/register/", r.URL.Path)
				assert.Empty(t, r.Header.Get("Authorization"))
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).Register(context.Background(), models.Credentials{Username: "alice"})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestListUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(w, http.StatusOK, `[{"username":"alice","email":"a@x.com"}]`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.AccountInfo{{Username: "alice", Email: "a@x.com"}}, got)
}

func TestRemoveUser(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"removed", http.StatusNoContent, "", nil},
		{"unknown", http.StatusNotFound, `{"error":"User does not exist"}`, ErrNotFound},
		{"wrong password", http.StatusBadRequest, `{"error":"Wrong password"}`, ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/removeuser/", r.URL.Path)
				if tt.body == "" {
					w.WriteHeader(tt.status)
					return
				}
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).RemoveUser(context.Background(), models.Credentials{Username: "alice", Password: "pw1"})
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "1.2.3")
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 502: upstream down", err.Error())
}

func TestRequest_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ListUsers(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list users request")
}
