package membership

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tgzgondoz/family-fitness-gym/internal/auth"
	"github.com/tgzgondoz/family-fitness-gym/internal/logger"
	"github.com/tgzgondoz/family-fitness-gym/internal/payment"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type PurchaseRequest struct {
	Plan          string `json:"plan" binding:"required"`
	Method        string `json:"method" binding:"required,oneof=cash ecocash swipe"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	EcocashNumber string `json:"ecocash_number,omitempty"`
	PIN           string `json:"pin,omitempty"`
}

type StaffPurchaseRequest struct {
	ClientID int `json:"client_id" binding:"required"`
	PurchaseRequest
}

type PurchaseResponse struct {
	Subscription *Subscription    `json:"subscription"`
	Payment      *payment.Payment `json:"payment"`
}

// ListPlans godoc
// @Summary      List purchasable plans
// @Tags         subscription
// @Produce      json
// @Success      200  {array}  Plan
// @Router       /plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Plans())
}

// MyAccessState godoc
// @Summary      Current member's access state
// @Description  Derived from the latest subscription's end date, never the stored status.
// @Tags         subscription
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  AccessState
// @Failure      401  {object}  gin.H
// @Router       /subscriptions/me [get]
func (h *Handler) MyAccessState(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	state, err := h.service.AccessState(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load access state"})
		return
	}

	c.JSON(http.StatusOK, state)
}

// MyHistory godoc
// @Summary      Current member's subscription history
// @Tags         subscription
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Subscription
// @Router       /subscriptions/history [get]
func (h *Handler) MyHistory(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	subs, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}

// Purchase godoc
// @Summary      Purchase a subscription (self-service)
// @Tags         subscription
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      PurchaseRequest  true  "Plan and payment details"
// @Success      201      {object}  PurchaseResponse
// @Failure      400      {object}  gin.H
// @Router       /subscriptions [post]
func (h *Handler) Purchase(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.purchase(c, userID, req, nil)
}

// StaffPurchase godoc
// @Summary      Sell a subscription to a client at the front desk
// @Tags         staff
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      StaffPurchaseRequest  true  "Client, plan and payment details"
// @Success      201      {object}  PurchaseResponse
// @Failure      400      {object}  gin.H
// @Router       /staff/subscriptions [post]
func (h *Handler) StaffPurchase(c *gin.Context) {
	staffID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req StaffPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.purchase(c, req.ClientID, req.PurchaseRequest, &staffID)
}

func (h *Handler) purchase(c *gin.Context, memberID int, req PurchaseRequest, staffID *int) {
	details := PaymentDetails{
		Method:        payment.Method(req.Method),
		PhoneNumber:   req.PhoneNumber,
		EcocashNumber: req.EcocashNumber,
		PIN:           req.PIN,
	}

	sub, pay, err := h.service.Purchase(c.Request.Context(), memberID, PlanType(req.Plan), details, staffID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownPlan):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown plan type"})
		case errors.Is(err, ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Errorf("Failed to create subscription for member %d: %v", memberID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process purchase"})
		}
		return
	}

	logger.Infof("Subscription created: plan=%s member=%d ref=%s", sub.Plan, memberID, pay.Reference)
	c.JSON(http.StatusCreated, PurchaseResponse{Subscription: sub, Payment: pay})
}

// Cancel godoc
// @Summary      Cancel a subscription
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Subscription ID"
// @Success      200  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /staff/subscriptions/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription id"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "subscription cancelled"})
}
