package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/schools"
	"github.com/zurilabsafrica/booked-brightly/services/schools/models"
)

// UserHeader identifies the portal user. The token is opaque to this
// service; the identity provider in front of it is responsible for
// authentication.
const UserHeader = "X-User-ID"

type SchoolHandler struct {
	repo schools.Repository
}

func NewSchoolHandler(repo schools.Repository) *SchoolHandler {
	return &SchoolHandler{repo: repo}
}

// Register handles POST /schools — partner onboarding. The caller
// becomes the school's first member, and any classes supplied with the
// registration are created alongside it.
func (h *SchoolHandler) Register(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.RegisterSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	totalStudents := 0
	for _, cls := range req.Classes {
		totalStudents += cls.StudentCount
	}

	school := &schools.School{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Address:       req.Address,
		County:        req.County,
		Phone:         req.Phone,
		Email:         req.Email,
		ContactPerson: req.ContactPerson,
		TotalStudents: totalStudents,
	}
	if err := h.repo.CreateSchool(ctx, school); err != nil {
		repoError(c, err)
		return
	}
	if err := h.repo.AddMember(ctx, &schools.Member{
		ID:       uuid.NewString(),
		SchoolID: school.ID,
		UserID:   userID,
	}); err != nil {
		repoError(c, err)
		return
	}

	for _, cls := range req.Classes {
		class := &schools.Class{
			ID:           uuid.NewString(),
			SchoolID:     school.ID,
			Name:         className(cls.Grade, cls.Stream),
			Grade:        cls.Grade,
			Stream:       cls.Stream,
			StudentCount: cls.StudentCount,
		}
		if err := h.repo.CreateClass(ctx, class); err != nil {
			repoError(c, err)
			return
		}
	}

	log.Info().Str("school", school.ID).Str("name", school.Name).Msg("school registered")
	c.JSON(http.StatusCreated, school)
}

// Me handles GET /schools/me
func (h *SchoolHandler) Me(c *gin.Context) {
	school, ok := h.requireSchool(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, school)
}

// ListClasses handles GET /schools/me/classes
func (h *SchoolHandler) ListClasses(c *gin.Context) {
	school, ok := h.requireSchool(c)
	if !ok {
		return
	}

	classes, err := h.repo.Classes(c.Request.Context(), school.ID)
	if err != nil {
		repoError(c, err)
		return
	}
	if classes == nil {
		classes = []schools.Class{}
	}
	c.JSON(http.StatusOK, classes)
}

// CreateClass handles POST /schools/me/classes
func (h *SchoolHandler) CreateClass(c *gin.Context) {
	school, ok := h.requireSchool(c)
	if !ok {
		return
	}

	var req models.RegisterClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	class := &schools.Class{
		ID:           uuid.NewString(),
		SchoolID:     school.ID,
		Name:         className(req.Grade, req.Stream),
		Grade:        req.Grade,
		Stream:       req.Stream,
		StudentCount: req.StudentCount,
	}
	if err := h.repo.CreateClass(c.Request.Context(), class); err != nil {
		repoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

// Summary handles GET /schools/me/summary — the portal dashboard.
func (h *SchoolHandler) Summary(c *gin.Context) {
	school, ok := h.requireSchool(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	classes, err := h.repo.Classes(ctx, school.ID)
	if err != nil {
		repoError(c, err)
		return
	}
	orders, err := h.repo.BulkOrders(ctx, school.ID)
	if err != nil {
		repoError(c, err)
		return
	}
	invoices, err := h.repo.Invoices(ctx, school.ID)
	if err != nil {
		repoError(c, err)
		return
	}

	summary := models.DashboardSummary{School: *school, ClassCount: len(classes)}
	for _, cls := range classes {
		summary.StudentCount += cls.StudentCount
	}
	for _, o := range orders {
		if o.Status == schools.OrderStatusPending {
			summary.PendingOrders++
		}
	}
	for _, inv := range invoices {
		if inv.Status != schools.InvoiceStatusPaid {
			summary.UnpaidInvoices++
			summary.UnpaidAmount += inv.Amount
		}
	}

	c.JSON(http.StatusOK, summary)
}

// requireSchool resolves the caller's school membership or writes the
// error response.
func (h *SchoolHandler) requireSchool(c *gin.Context) (*schools.School, bool) {
	userID, ok := requireUser(c)
	if !ok {
		return nil, false
	}

	school, err := h.repo.SchoolForUser(c.Request.Context(), userID)
	if errors.Is(err, schools.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "No school registered for this user",
		})
		return nil, false
	}
	if err != nil {
		repoError(c, err)
		return nil, false
	}
	return school, true
}

func requireUser(c *gin.Context) (string, bool) {
	userID := c.GetHeader(UserHeader)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "UNAUTHENTICATED",
			Message: "Missing " + UserHeader + " header",
		})
		return "", false
	}
	return userID, true
}

func repoError(c *gin.Context, err error) {
	log.Error().Err(err).Msg("repository failure")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "STORAGE_ERROR",
		Message: "Storage operation failed",
		Details: err.Error(),
	})
}

func className(grade int, stream string) string {
	if stream == "" {
		return fmt.Sprintf("Grade %d", grade)
	}
	return fmt.Sprintf("Grade %d %s", grade, stream)
}
