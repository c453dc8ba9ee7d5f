package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lanternworks/nightmarket/internal/domain"
)

func TestHandleListMerchants(t *testing.T) {
	mockSvc := &MockMerchantService{}
	mockSvc.On("ListMerchants", mock.Anything, "dockside").Return([]domain.Merchant{
		{ID: testMerchantID, Name: "Mirek's Salvage", District: "dockside"},
	}, nil)

	h := HandleListMerchants(mockSvc)

	req := httptest.NewRequest("GET", "/merchants?district=dockside", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mirek's Salvage")
}

func TestHandleListMerchants_UnknownDistrict(t *testing.T) {
	mockSvc := &MockMerchantService{}
	h := HandleListMerchants(mockSvc)

	req := httptest.NewRequest("GET", "/merchants?district=atlantis", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "ListMerchants", mock.Anything, mock.Anything)
}

func TestHandleGetMerchant(t *testing.T) {
	mockSvc := &MockMerchantService{}
	mockSvc.On("GetMerchant", mock.Anything, testMerchantID).Return(&domain.Merchant{
		ID:       testMerchantID,
		Name:     "Mirek's Salvage",
		District: "dockside",
		Stock:    []string{"scrap alloy", "copper wiring"},
	}, nil)

	r := chi.NewRouter()
	r.Get("/merchants/{merchantID}", HandleGetMerchant(mockSvc))

	req := httptest.NewRequest("GET", "/merchants/"+testMerchantID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scrap alloy")
}

func TestHandleGetMerchant_NotFound(t *testing.T) {
	mockSvc := &MockMerchantService{}
	mockSvc.On("GetMerchant", mock.Anything, "nope").
		Return(nil, fmt.Errorf("%w: nope", domain.ErrMerchantNotFound))

	r := chi.NewRouter()
	r.Get("/merchants/{merchantID}", HandleGetMerchant(mockSvc))

	req := httptest.NewRequest("GET", "/merchants/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgMerchantNotFoundError)
}

func TestHandleNearbyMerchants(t *testing.T) {
	mockSvc := &MockMerchantService{}
	mockSvc.On("NearbyMerchants", mock.Anything, 52.2297, 21.0122, 5000.0).
		Return([]domain.MerchantDistance{
			{Merchant: domain.Merchant{ID: testMerchantID, Name: "Mirek's Salvage"}, DistanceM: 412.5},
		}, nil)

	h := HandleNearbyMerchants(mockSvc)

	req := httptest.NewRequest("GET", "/merchants/nearby?lat=52.2297&lng=21.0122&radius=5000", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"distance_m":412.5`)
}

func TestHandleNearbyMerchants_MissingCoordinates(t *testing.T) {
	mockSvc := &MockMerchantService{}
	h := HandleNearbyMerchants(mockSvc)

	req := httptest.NewRequest("GET", "/merchants/nearby?lng=21.0122", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(ErrMsgMissingQueryParam, "lat"))
	mockSvc.AssertNotCalled(t, "NearbyMerchants", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNearbyMerchants_MalformedRadius(t *testing.T) {
	mockSvc := &MockMerchantService{}
	h := HandleNearbyMerchants(mockSvc)

	req := httptest.NewRequest("GET", "/merchants/nearby?lat=52.2&lng=21.0&radius=close", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(ErrMsgInvalidQueryParam, "radius"))
}

func TestHandleNearbyMerchants_OutOfBoundsOrigin(t *testing.T) {
	mockSvc := &MockMerchantService{}
	mockSvc.On("NearbyMerchants", mock.Anything, 95.0, 21.0, 0.0).
		Return(nil, fmt.Errorf("%w: position out of bounds", domain.ErrInvalidInput))

	h := HandleNearbyMerchants(mockSvc)

	req := httptest.NewRequest("GET", "/merchants/nearby?lat=95&lng=21", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInvalidInputError)
}
