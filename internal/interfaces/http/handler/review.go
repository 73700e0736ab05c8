package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// ReviewHandler handles product review API endpoints.
// Reviews are always addressed through their parent product.
type ReviewHandler struct {
	BaseHandler
	reviewService *catalogapp.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService *catalogapp.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) bindProductID(c *gin.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return uuid.Nil, false
	}
	return productID, true
}

// Create handles POST /catalog/products/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	var req catalogapp.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, review)
}

// GetByID handles GET /catalog/products/:id/reviews/:review_id
func (h *ReviewHandler) GetByID(c *gin.Context) {
	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	reviewID, err := uuid.Parse(c.Param("review_id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	review, err := h.reviewService.GetByID(c.Request.Context(), productID, reviewID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// List handles GET /catalog/products/:id/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	var filter catalogapp.ReviewListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reviews, meta, err := h.reviewService.ListByProduct(c.Request.Context(), productID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, reviews, meta.Total, meta.Page, meta.PageSize)
}

// Update handles PUT /catalog/products/:id/reviews/:review_id
func (h *ReviewHandler) Update(c *gin.Context) {
	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	reviewID, err := uuid.Parse(c.Param("review_id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	var req catalogapp.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), productID, reviewID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// Delete handles DELETE /catalog/products/:id/reviews/:review_id
func (h *ReviewHandler) Delete(c *gin.Context) {
	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	reviewID, err := uuid.Parse(c.Param("review_id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), productID, reviewID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
