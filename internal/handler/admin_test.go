package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lanternworks/nightmarket/internal/domain"
)

func TestHandleAdminRecomputePrices(t *testing.T) {
	mockSvc := &MockMarketService{}
	mockSvc.On("RecomputeAll", mock.Anything).Return(10, nil)

	h := HandleAdminRecomputePrices(mockSvc)

	req := httptest.NewRequest("POST", "/admin/recompute-prices", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"prices_updated":10`)
	assert.Contains(t, w.Body.String(), MsgRecomputeCompleted)
}

func TestHandleAdminRecomputePrices_Failure(t *testing.T) {
	mockSvc := &MockMarketService{}
	mockSvc.On("RecomputeAll", mock.Anything).Return(0, errors.New("pool exhausted"))

	h := HandleAdminRecomputePrices(mockSvc)

	req := httptest.NewRequest("POST", "/admin/recompute-prices", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleAdminRestock(t *testing.T) {
	mockSvc := &MockMerchantService{}
	mockSvc.On("Restock", mock.Anything).Return(4, nil)

	h := HandleAdminRestock(mockSvc)

	req := httptest.NewRequest("POST", "/admin/restock", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"merchants_restocked":4`)
}

func TestHandleAdminListTrades(t *testing.T) {
	mockSvc := &MockTradeService{}
	mockSvc.On("ListRecentTrades", mock.Anything, 0).Return([]domain.TradeRecord{
		{ID: "t-1", ItemName: "scrap alloy", Type: domain.TradeTypeBuy, TotalPrice: 360},
		{ID: "t-2", ItemName: "signal jammer", Type: domain.TradeTypeSell, TotalPrice: 1539},
	}, nil)

	h := HandleAdminListTrades(mockSvc)

	// No limit parameter; the service applies its default
	req := httptest.NewRequest("GET", "/admin/trades", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signal jammer")
	mockSvc.AssertExpectations(t)
}
