package router

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources/mocks"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func TestSessionValidatorMiddleware(t *testing.T) {
	validToken := "session|deadbeef"

	cases := []struct {
		name       string
		authHeader string
		session    domain.Session
		getErr     error
		wantUserID int64
		wantStatus int
		skipLookup bool
	}{
		{
			name:       "valid_session",
			authHeader: "Bearer " + validToken,
			session: domain.Session{
				ID:        "session-1",
				UserID:    42,
				TokenHash: hashToken(validToken),
				ExpiresAt: time.Now().Add(time.Hour),
			},
			wantUserID: 42,
			wantStatus: http.StatusOK,
		},
		{
			name:       "no_auth_header_passes_through_unauthenticated",
			authHeader: "",
			wantUserID: 0,
			wantStatus: http.StatusOK,
			skipLookup: true,
		},
		{
			name:       "non_session_token_ignored",
			authHeader: "Bearer sometoken",
			wantUserID: 0,
			wantStatus: http.StatusOK,
			skipLookup: true,
		},
		{
			name:       "unknown_token_rejected",
			authHeader: "Bearer " + validToken,
			getErr:     domain.ErrNotFound,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired_session_rejected",
			authHeader: "Bearer " + validToken,
			session: domain.Session{
				ID:        "session-1",
				UserID:    42,
				TokenHash: hashToken(validToken),
				ExpiresAt: time.Now().Add(-time.Hour),
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revoked_session_rejected",
			authHeader: "Bearer " + validToken,
			session: func() domain.Session {
				revokedAt := time.Now().Add(-time.Minute)
				return domain.Session{
					ID:        "session-1",
					UserID:    42,
					TokenHash: hashToken(validToken),
					ExpiresAt: time.Now().Add(time.Hour),
					RevokedAt: &revokedAt,
				}
			}(),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions := mocks.NewMockSessionByTokenHashGetter(t)
			if !tc.skipLookup {
				sessions.EXPECT().
					GetSessionByTokenHash(mock.Anything, hashToken(validToken)).
					Return(tc.session, tc.getErr)
			}

			middleware := NewAuthMiddleware([]AuthValidator{
				NewSessionValidator(sessions),
			})

			var gotUserID int64
			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = domain.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler)))
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantUserID, gotUserID)
			}
		})
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	handler := requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("authenticated_request_passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, 42)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unauthenticated_request_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
