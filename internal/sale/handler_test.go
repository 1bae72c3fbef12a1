package sale

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Record(ctx context.Context, staffID int, clientID *int, walkInName *string, productName, saleType string, amountCents int64, paymentMethod string) (*Sale, error) {
	args := m.Called(ctx, staffID, clientID, walkInName, productName, saleType, amountCents, paymentMethod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Sale), args.Error(1)
}

func (m *MockRepository) ListRecent(ctx context.Context, limit int) ([]SaleWithNames, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SaleWithNames), args.Error(1)
}

func (m *MockRepository) RevenueTodayCents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Analytics(ctx context.Context) (*Analytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Analytics), args.Error(1)
}

func newSaleRouter(repo Repository, staffID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(repo)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", staffID)
		c.Set("user_role", "staff")
	})
	r.POST("/staff/sales", h.Record)
	r.GET("/staff/sales", h.List)
	r.GET("/admin/analytics", h.Analytics)
	return r
}

func TestHandler_Record(t *testing.T) {
	t.Run("quantity folds into the product name", func(t *testing.T) {
		repo := new(MockRepository)
		walkIn := "Walk In"
		repo.On("Record", mock.Anything, 42, (*int)(nil), &walkIn, "Protein Bar (x3)", TypeProduct, int64(900), "cash").
			Return(&Sale{ID: 1, StaffID: 42, ProductName: "Protein Bar (x3)", SaleType: TypeProduct, AmountCents: 900, PaymentMethod: "cash"}, nil)

		router := newSaleRouter(repo, 42)
		body, _ := json.Marshal(RecordSaleRequest{
			WalkInName:    &walkIn,
			ProductName:   "Protein Bar",
			Quantity:      3,
			AmountCents:   900,
			PaymentMethod: "cash",
		})

		req := httptest.NewRequest(http.MethodPost, "/staff/sales", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("single quantity keeps the plain name", func(t *testing.T) {
		repo := new(MockRepository)
		clientID := 7
		repo.On("Record", mock.Anything, 42, &clientID, (*string)(nil), "Water Bottle", TypeProduct, int64(150), "swipe").
			Return(&Sale{ID: 2, ProductName: "Water Bottle"}, nil)

		router := newSaleRouter(repo, 42)
		body, _ := json.Marshal(RecordSaleRequest{
			ClientID:      &clientID,
			ProductName:   "Water Bottle",
			Quantity:      1,
			AmountCents:   150,
			PaymentMethod: "swipe",
		})

		req := httptest.NewRequest(http.MethodPost, "/staff/sales", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("zero amount is rejected by binding", func(t *testing.T) {
		router := newSaleRouter(new(MockRepository), 42)
		body := []byte(`{"product_name":"Bar","quantity":1,"amount_cents":0,"payment_method":"cash"}`)

		req := httptest.NewRequest(http.MethodPost, "/staff/sales", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Analytics(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Analytics", mock.Anything).Return(&Analytics{
		TotalMembers:      120,
		ActiveClients:     85,
		RevenueTodayCents: 9500,
	}, nil)

	router := newSaleRouter(repo, 3)
	req := httptest.NewRequest(http.MethodGet, "/admin/analytics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_members":120`)
}
