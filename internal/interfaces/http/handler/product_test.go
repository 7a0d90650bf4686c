package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	catalogapp "github.com/smallbiz/backend/internal/application/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupProductHandler(repo *MockProductRepository) *ProductHandler {
	return NewProductHandler(catalogapp.NewProductService(repo))
}

func TestProductHandler_Create_ZeroPriceAccepted(t *testing.T) {
	repo := new(MockProductRepository)
	handler := setupProductHandler(repo)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	router := setupTestRouter()
	router.POST("/products", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/products",
		bytes.NewBufferString(`{"name":"Sample pack","price":0,"stock":5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ProductResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sample pack", resp.Name)
	assert.Zero(t, resp.Price)
	assert.Equal(t, 5, resp.Stock)
	repo.AssertExpectations(t)
}

func TestProductHandler_Create_MissingPrice(t *testing.T) {
	handler := setupProductHandler(new(MockProductRepository))

	router := setupTestRouter()
	router.POST("/products", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/products",
		bytes.NewBufferString(`{"name":"Sample pack","stock":5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestProductHandler_Update_FullReplaceViaPatch(t *testing.T) {
	repo := new(MockProductRepository)
	handler := setupProductHandler(repo)

	productID := uuid.New()
	repo.On("FindByID", mock.Anything, productID).Return(testProduct(productID, "19.99"), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	// register through RegisterRoutes so the verb itself is covered
	router := setupTestRouter()
	handler.RegisterRoutes(router.Group("/api"))

	req := httptest.NewRequest(http.MethodPatch, "/api/products/"+productID.String(),
		bytes.NewBufferString(`{"name":"Widget v2","description":"updated","price":24.99,"stock":7}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ProductResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, productID.String(), resp.ID)
	assert.Equal(t, "Widget v2", resp.Name)
	assert.InDelta(t, 24.99, resp.Price, 0.0001)
	assert.Equal(t, 7, resp.Stock)
	repo.AssertExpectations(t)
}
