package checkin

import (
	"errors"
	"net/http"

	"github.com/tgzgondoz/family-fitness-gym/internal/auth"
	"github.com/tgzgondoz/family-fitness-gym/internal/logger"
	"github.com/tgzgondoz/family-fitness-gym/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Record godoc
// @Summary      Record a gym check-in
// @Description  Accepts a registered member or a walk-in name; never rejects on access state.
// @Tags         staff
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      RecordCheckInRequest  true  "Member or walk-in"
// @Success      201      {object}  CheckIn
// @Failure      400      {object}  gin.H
// @Router       /staff/checkins [post]
func (h *Handler) Record(c *gin.Context) {
	staffID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req RecordCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ci, err := h.service.Record(c.Request.Context(), req.UserID, req.WalkInName, staffID)
	if err != nil {
		if errors.Is(err, ErrMemberOrWalkInRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Errorf("Failed to record check-in by staff %d: %v", staffID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record check-in"})
		return
	}

	kind := "member"
	if ci.WalkInName != nil {
		kind = "walk_in"
	}
	metrics.RecordCheckIn(kind)

	c.JSON(http.StatusCreated, ci)
}

// List godoc
// @Summary      Recent check-ins
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  CheckInWithNames
// @Router       /staff/checkins [get]
func (h *Handler) List(c *gin.Context) {
	checkIns, err := h.service.ListRecent(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load check-ins"})
		return
	}

	c.JSON(http.StatusOK, checkIns)
}

// MyStats godoc
// @Summary      Current member's derived fitness stats
// @Tags         member
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  FitnessStats
// @Router       /me/stats [get]
func (h *Handler) MyStats(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
