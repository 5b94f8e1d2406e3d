package router

import (
	"slotsync/core/middleware"
	"slotsync/modules/admin/controller"

	"github.com/labstack/echo/v4"
)

// AdminRouter handles operator routes
type AdminRouter struct {
	AdminController *controller.AdminController
}

func NewAdminRouter(adminController *controller.AdminController) *AdminRouter {
	return &AdminRouter{
		AdminController: adminController,
	}
}

// Setup registers admin routes
func (r *AdminRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	adminRoutes := v1.Group("/admin")

	adminRoutes.GET("/storage", r.AdminController.StorageStatus)
	adminRoutes.GET("/rooms", r.AdminController.ListRooms)
}
