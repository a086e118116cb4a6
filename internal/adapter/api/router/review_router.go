package router

import (
	"hanaplokal/internal/adapter/api/handler"
	"hanaplokal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/stores/:storeId/reviews", reviewHandler.ListStoreReviews)

	reviews := e.Group("/v1/stores/:storeId")
	reviews.Use(authMiddleware.Authenticate)
	reviews.POST("/reviews", reviewHandler.SubmitReview)
	reviews.POST("/report", reviewHandler.ReportStore)

	manage := e.Group("/v1/reviews")
	manage.Use(authMiddleware.Authenticate)
	manage.DELETE("/:reviewId", reviewHandler.DeleteReview)
}
