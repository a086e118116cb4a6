package handler

import (
	"github.com/labstack/echo/v4"

	"hanaplokal/internal/usecase"
	"hanaplokal/pkg/errors"
	"hanaplokal/pkg/response"
	"hanaplokal/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type submitReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	storeID := c.Param("storeId")
	if storeID == "" {
		return response.Error(c, errors.BadRequest("Store ID is required", nil))
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	review, err := h.reviewUseCase.SubmitReview(c.Request().Context(), userID, usecase.SubmitReviewInput{
		StoreID: storeID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListStoreReviews(c echo.Context) error {
	storeID := c.Param("storeId")
	if storeID == "" {
		return response.Error(c, errors.BadRequest("Store ID is required", nil))
	}

	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListByStore(c.Request().Context(), storeID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID := c.Param("reviewId")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.reviewUseCase.Delete(c.Request().Context(), userID, reviewID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Review deleted",
	})
}

type reportStoreRequest struct {
	Reason      string `json:"reason" validate:"required,oneof=scam inappropriate fake_listing harassment other"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

func (h *ReviewHandler) ReportStore(c echo.Context) error {
	storeID := c.Param("storeId")
	if storeID == "" {
		return response.Error(c, errors.BadRequest("Store ID is required", nil))
	}

	var req reportStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	report, err := h.reviewUseCase.ReportStore(c.Request().Context(), userID, usecase.ReportStoreInput{
		StoreID:     storeID,
		Reason:      req.Reason,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

// Admin handlers

func (h *ReviewHandler) ListReports(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	reports, total, err := h.reviewUseCase.ListReports(c.Request().Context(), status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reports, total, pagination.Page, pagination.PageSize)
}

type resolveReportRequest struct {
	Resolution string `json:"resolution" validate:"required,oneof=resolved dismissed"`
}

func (h *ReviewHandler) ResolveReport(c echo.Context) error {
	reportID := c.Param("reportId")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	var req resolveReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.reviewUseCase.ResolveReport(c.Request().Context(), reportID, req.Resolution)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}
