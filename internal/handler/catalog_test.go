package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jasakreatif/storefront-service/internal/model"
	"github.com/jasakreatif/storefront-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogRouter(catalog *fakeCatalogService) http.Handler {
	h := NewCatalogHandler(catalog)
	r := gin.New()
	r.GET("/api/v1/services", h.List)
	return r
}

type catalogResponse struct {
	Groups []service.ServiceGroup `json:"groups"`
	Total  int                    `json:"total"`
}

func TestCatalogList(t *testing.T) {
	catalog := &fakeCatalogService{services: map[string]*model.Service{
		"S1": {ID: "S1", Name: "Artikel SEO", ServiceType: model.ServiceTypeArticleWriting, StartingPrice: 5000000},
		"S2": {ID: "S2", Name: "Desain Logo", ServiceType: model.ServiceTypeGraphicDesign, StartingPrice: 15000000},
	}}
	r := catalogRouter(catalog)

	w := performJSON(t, r, http.MethodGet, "/api/v1/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp catalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)

	// Every fetched service appears exactly once across the groups.
	seen := make(map[string]int)
	for _, g := range resp.Groups {
		assert.NotEmpty(t, g.DisplayName)
		for _, svc := range g.Services {
			seen[svc.ID]++
		}
	}
	assert.Equal(t, map[string]int{"S1": 1, "S2": 1}, seen)
}

func TestCatalogListEmpty(t *testing.T) {
	r := catalogRouter(&fakeCatalogService{services: map[string]*model.Service{}})

	w := performJSON(t, r, http.MethodGet, "/api/v1/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Empty catalog is a 200 with an empty groups array, not an error.
	var resp catalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Groups)
	assert.Empty(t, resp.Groups)
	assert.Equal(t, 0, resp.Total)
}

func TestCatalogListStoreFailure(t *testing.T) {
	r := catalogRouter(&fakeCatalogService{listErr: errors.New("connection refused")})

	w := performJSON(t, r, http.MethodGet, "/api/v1/services", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}
