package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc", "abc", nil},
		{"bearer abc", "abc", nil},
		{"Token abc", "abc", nil},
		{"TOKEN   abc", "abc", nil},
		{"Bearer", "", ErrInvalidAuthorizationHeader},
		{"Bearer abc def", "", ErrInvalidAuthorizationHeader},
		{"abc", "", ErrInvalidAuthorizationHeader},
		{"Basic YWxpY2U6cHcx", "", ErrUnsupportedAuthScheme},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenAuth(t *testing.T) {
	alice := models.Account{ID: 1, Username: "alice", Email: "a@x.com"}

	tests := []struct {
		name        string
		header      string
		resolved    *models.Account
		resolveErr  error
		wantStatus  int
		wantError   string
		wantNext    bool
		wantAccount models.Account
	}{
		{
			name:       "no header",
			wantStatus: http.StatusForbidden,
			wantError:  "Authentication credentials were not provided.",
		},
		{
			name:       "malformed header",
			header:     "Bearer",
			wantStatus: http.StatusForbidden,
			wantError:  "Invalid token.",
		},
		{
			name:       "unsupported scheme",
			header:     "Basic abc",
			wantStatus: http.StatusForbidden,
			wantError:  "Invalid token.",
		},
		{
			name:       "unknown token",
			header:     "Bearer nope",
			resolved:   &models.Account{},
			resolveErr: store.ErrTokenNotFound,
			wantStatus: http.StatusForbidden,
			wantError:  "Invalid token.",
		},
		{
			name:       "storage failure",
			header:     "Bearer abc",
			resolved:   &models.Account{},
			resolveErr: errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
		{
			name:        "valid token",
			header:      "Token abc",
			resolved:    &alice,
			wantStatus:  http.StatusOK,
			wantNext:    true,
			wantAccount: alice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, accounts, _ := newMockedHandler(t)
			if tt.resolved != nil {
				accounts.EXPECT().ResolveToken(gomock.Any(), gomock.Any()).Return(*tt.resolved, tt.resolveErr)
			}

			var nextCalled bool
			var gotAccount models.Account
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotAccount, _ = utils.GetAccountFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/adduser/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.tokenAuth(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rr))
			}
			if tt.wantNext {
				assert.Equal(t, tt.wantAccount, gotAccount)
			}
		})
	}
}
