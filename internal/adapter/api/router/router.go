package router

import (
	"hanaplokal/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupStoreRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupDiscoveryRouter(e)
	SetupMetaRouter(e)
	SetupChatRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
