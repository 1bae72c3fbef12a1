package sale

import (
	"fmt"
	"net/http"

	"github.com/tgzgondoz/family-fitness-gym/internal/auth"
	"github.com/tgzgondoz/family-fitness-gym/internal/logger"
	"github.com/tgzgondoz/family-fitness-gym/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Record godoc
// @Summary      Record a walk-in or product sale
// @Description  Subscription sales go through the purchase endpoint; this is for everything else.
// @Tags         staff
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      RecordSaleRequest  true  "Sale details"
// @Success      201      {object}  Sale
// @Failure      400      {object}  gin.H
// @Router       /staff/sales [post]
func (h *Handler) Record(c *gin.Context) {
	staffID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productName := req.ProductName
	if req.Quantity > 1 {
		productName = fmt.Sprintf("%s (x%d)", req.ProductName, req.Quantity)
	}

	s, err := h.repo.Record(c.Request.Context(), staffID, req.ClientID, req.WalkInName, productName, TypeProduct, req.AmountCents, req.PaymentMethod)
	if err != nil {
		logger.Errorf("Failed to record sale by staff %d: %v", staffID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record sale"})
		return
	}

	metrics.RecordSale(TypeProduct, req.PaymentMethod)
	c.JSON(http.StatusCreated, s)
}

// List godoc
// @Summary      Recent sales with staff and client names
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  SaleWithNames
// @Router       /staff/sales [get]
func (h *Handler) List(c *gin.Context) {
	sales, err := h.repo.ListRecent(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sales"})
		return
	}

	c.JSON(http.StatusOK, sales)
}

// Analytics godoc
// @Summary      Manager dashboard analytics
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Analytics
// @Router       /admin/analytics [get]
func (h *Handler) Analytics(c *gin.Context) {
	a, err := h.repo.Analytics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, a)
}
