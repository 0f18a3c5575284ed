package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/schools"
	"github.com/zurilabsafrica/booked-brightly/services/schools/models"
)

type DistributionHandler struct {
	repo    schools.Repository
	schoolH *SchoolHandler
}

func NewDistributionHandler(repo schools.Repository, schoolH *SchoolHandler) *DistributionHandler {
	return &DistributionHandler{repo: repo, schoolH: schoolH}
}

// Create handles POST /schools/me/distributions. It opens one distribution
// per class covered by the order, sized by that class's share of the order.
func (h *DistributionHandler) Create(c *gin.Context) {
	school, ok := h.schoolH.requireSchool(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var req models.CreateDistributionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	order, err := h.repo.BulkOrder(ctx, req.OrderID)
	if errors.Is(err, schools.ErrNotFound) || (err == nil && order.SchoolID != school.ID) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Order not found",
		})
		return
	}
	if err != nil {
		repoError(c, err)
		return
	}

	items, err := h.repo.OrderItems(ctx, order.ID)
	if err != nil {
		repoError(c, err)
		return
	}

	perClass := make(map[string]int)
	for _, it := range items {
		if it.ClassID != "" {
			perClass[it.ClassID] += it.Quantity
		}
	}
	if len(perClass) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Order has no class-level line items to distribute",
		})
		return
	}

	created := make([]schools.Distribution, 0, len(perClass))
	for _, it := range items {
		total, pending := perClass[it.ClassID]
		if !pending {
			continue
		}
		delete(perClass, it.ClassID)

		d := schools.Distribution{
			ID:         uuid.NewString(),
			ClassID:    it.ClassID,
			SchoolID:   school.ID,
			OrderID:    order.ID,
			Status:     schools.DistributionStatusPending,
			TotalCount: total,
		}
		if err := h.repo.CreateDistribution(ctx, &d); err != nil {
			repoError(c, err)
			return
		}
		created = append(created, d)
	}

	log.Info().Str("order", order.OrderNumber).Int("distributions", len(created)).
		Msg("distributions opened")
	c.JSON(http.StatusCreated, created)
}

// List handles GET /schools/me/distributions
func (h *DistributionHandler) List(c *gin.Context) {
	school, ok := h.schoolH.requireSchool(c)
	if !ok {
		return
	}

	dists, err := h.repo.Distributions(c.Request.Context(), school.ID)
	if err != nil {
		repoError(c, err)
		return
	}
	if dists == nil {
		dists = []schools.Distribution{}
	}
	c.JSON(http.StatusOK, dists)
}

// Update handles PATCH /schools/me/distributions/{distributionId}
func (h *DistributionHandler) Update(c *gin.Context) {
	school, ok := h.schoolH.requireSchool(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	distributionID := c.Param("distributionId")

	var req models.UpdateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	dist, ok := h.ownedDistribution(c, school.ID, distributionID)
	if !ok {
		return
	}
	if *req.DistributedCount > dist.TotalCount {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Distributed count exceeds the class total",
		})
		return
	}

	if err := h.repo.RecordDistributionProgress(ctx, distributionID, *req.DistributedCount); err != nil {
		repoError(c, err)
		return
	}

	updated, ok := h.ownedDistribution(c, school.ID, distributionID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListItems handles GET /schools/me/distributions/{distributionId}/items
func (h *DistributionHandler) ListItems(c *gin.Context) {
	school, ok := h.schoolH.requireSchool(c)
	if !ok {
		return
	}
	distributionID := c.Param("distributionId")

	if _, ok := h.ownedDistribution(c, school.ID, distributionID); !ok {
		return
	}

	items, err := h.repo.DistributionItems(c.Request.Context(), distributionID)
	if err != nil {
		repoError(c, err)
		return
	}
	if items == nil {
		items = []schools.DistributionItem{}
	}
	c.JSON(http.StatusOK, items)
}

// AddItem handles POST /schools/me/distributions/{distributionId}/items,
// recording one book handed to one student and bumping the count.
func (h *DistributionHandler) AddItem(c *gin.Context) {
	school, ok := h.schoolH.requireSchool(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	distributionID := c.Param("distributionId")

	var req models.AddDistributionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	dist, ok := h.ownedDistribution(c, school.ID, distributionID)
	if !ok {
		return
	}
	if dist.DistributedCount >= dist.TotalCount {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "DISTRIBUTION_COMPLETE",
			Message: "All books for this class are already distributed",
		})
		return
	}

	item := schools.DistributionItem{
		ID:              uuid.NewString(),
		DistributionID:  distributionID,
		BookID:          req.BookID,
		StudentName:     req.StudentName,
		AdmissionNumber: req.AdmissionNumber,
		Status:          schools.DistributionStatusCompleted,
	}
	if err := h.repo.AddDistributionItem(ctx, &item); err != nil {
		repoError(c, err)
		return
	}
	if err := h.repo.RecordDistributionProgress(ctx, distributionID, dist.DistributedCount+1); err != nil {
		repoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ownedDistribution loads a distribution, writing 404 unless it belongs to
// the caller's school.
func (h *DistributionHandler) ownedDistribution(c *gin.Context, schoolID, distributionID string) (*schools.Distribution, bool) {
	dists, err := h.repo.Distributions(c.Request.Context(), schoolID)
	if err != nil {
		repoError(c, err)
		return nil, false
	}
	for i := range dists {
		if dists[i].ID == distributionID {
			return &dists[i], true
		}
	}
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "NOT_FOUND",
		Message: "Distribution not found",
	})
	return nil, false
}
