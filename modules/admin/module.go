package admin

import (
	"slotsync/core/middleware"
	"slotsync/core/storage"
	"slotsync/modules/admin/controller"
	"slotsync/modules/admin/router"
	"slotsync/modules/admin/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the admin module and registers routes
func Init(e *echo.Echo, store storage.Provider, mw *middleware.Middleware) {
	svc := service.NewAdminService(store)
	ctrl := controller.NewAdminController(svc)
	rtr := router.NewAdminRouter(ctrl)

	rtr.Setup(e, mw)
}
