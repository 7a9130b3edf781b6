package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	cmdmocks "github.com/hcridlig/moovie-app-sub000/internal/command/mocks"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func TestMakeRouter_SimilarItemsCacheHeader(t *testing.T) {
	recommendCmd := cmdmocks.NewMockCommand[command.RecommendSimilarRequest, []domain.SimilarItem](t)
	recommendCmd.EXPECT().
		Execute(mock.Anything, command.RecommendSimilarRequest{
			ItemID:    3,
			MediaType: domain.MediaTypeMovie,
			Limit:     10,
		}).
		Return([]domain.SimilarItem{{ItemID: 8, Distance: 0.1}}, nil)

	handler, err := MakeRouter(Config{
		RecommendSimilarCmd: recommendCmd,
		DefaultSimilarLimit: 10,
		MaxSimilarLimit:     100,
		SimilarCacheMaxAge:  5 * time.Minute,
		AuthMiddleware:      NewAuthMiddleware(nil),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/recommendations/items/3", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "max-age=300", rec.Header().Get("Cache-Control"))
}
