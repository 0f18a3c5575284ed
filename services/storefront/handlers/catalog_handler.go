package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zurilabsafrica/booked-brightly/catalog"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/models"
)

type CatalogHandler struct {
	books catalog.Store
}

func NewCatalogHandler(books catalog.Store) *CatalogHandler {
	return &CatalogHandler{books: books}
}

// ListBooks handles GET /books and GET /books?grade=N
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	gradeStr := c.Query("grade")
	if gradeStr == "" {
		c.JSON(http.StatusOK, h.books.Books())
		return
	}

	grade, err := strconv.Atoi(gradeStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid grade",
			Details: "Grade must be an integer",
		})
		return
	}

	c.JSON(http.StatusOK, h.books.BooksByGrade(grade))
}

// GetBook handles GET /books/{bookId}
func (h *CatalogHandler) GetBook(c *gin.Context) {
	book, ok := h.books.Book(c.Param("bookId"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Book not found",
		})
		return
	}
	c.JSON(http.StatusOK, book)
}

// ListBundles handles GET /bundles
func (h *CatalogHandler) ListBundles(c *gin.Context) {
	bundles := []catalog.GradeBundle{}
	for _, grade := range catalog.Grades {
		bundle := h.books.GradeBundle(grade)
		if len(bundle.Books) > 0 {
			bundles = append(bundles, bundle)
		}
	}
	c.JSON(http.StatusOK, bundles)
}

// GetBundle handles GET /bundles/{grade}
func (h *CatalogHandler) GetBundle(c *gin.Context) {
	grade, err := strconv.Atoi(c.Param("grade"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid grade",
			Details: "Grade must be an integer",
		})
		return
	}

	// Unknown grades yield an empty bundle, not an error.
	c.JSON(http.StatusOK, h.books.GradeBundle(grade))
}
