package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	partnerapp "github.com/smallbiz/backend/internal/application/partner"
	"github.com/smallbiz/backend/internal/domain/partner"
	"github.com/smallbiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockClientRepository implements partner.ClientRepository for testing
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context) ([]partner.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func setupClientHandler(repo *MockClientRepository) *ClientHandler {
	return NewClientHandler(partnerapp.NewClientService(repo))
}

func TestClientHandler_Create_Success(t *testing.T) {
	repo := new(MockClientRepository)
	handler := setupClientHandler(repo)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Client")).Return(nil)

	router := setupTestRouter()
	router.POST("/clients", handler.Create)

	body, _ := json.Marshal(CreateClientRequest{
		Name:  "Acme Corp",
		Email: "billing@acme.test",
		Phone: "555-0100",
	})
	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp partner.Client
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Acme Corp", resp.Name)
	repo.AssertExpectations(t)
}

func TestClientHandler_Create_MissingEmail(t *testing.T) {
	handler := setupClientHandler(new(MockClientRepository))

	router := setupTestRouter()
	router.POST("/clients", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/clients",
		bytes.NewBufferString(`{"name":"Acme Corp","phone":"555-0100"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_Update_PreservesOmittedFields(t *testing.T) {
	repo := new(MockClientRepository)
	handler := setupClientHandler(repo)

	id := uuid.New()
	stored := &partner.Client{ID: id, Name: "Acme Corp", Email: "billing@acme.test", Phone: "555-0100"}
	repo.On("FindByID", mock.Anything, id).Return(stored, nil)
	repo.On("Save", mock.Anything, stored).Return(nil)

	router := setupTestRouter()
	router.PATCH("/clients/:id", handler.Update)

	req := httptest.NewRequest(http.MethodPatch, "/clients/"+id.String(),
		bytes.NewBufferString(`{"phone":"555-0199"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp partner.Client
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "555-0199", resp.Phone)
	assert.Equal(t, "Acme Corp", resp.Name)
	assert.Equal(t, "billing@acme.test", resp.Email)
}

func TestClientHandler_Update_NotFound(t *testing.T) {
	repo := new(MockClientRepository)
	handler := setupClientHandler(repo)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.PATCH("/clients/:id", handler.Update)

	req := httptest.NewRequest(http.MethodPatch, "/clients/"+id.String(),
		bytes.NewBufferString(`{"name":"Ghost"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestClientHandler_Delete_NotFound(t *testing.T) {
	repo := new(MockClientRepository)
	handler := setupClientHandler(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(shared.ErrNotFound)

	router := setupTestRouter()
	router.DELETE("/clients/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+id.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
