package controller

import (
	"slotsync/core/controller"
	"slotsync/modules/admin/service"

	"github.com/labstack/echo/v4"
)

// AdminController handles the operator/debug endpoints
type AdminController struct {
	controller.BaseController
	AdminService service.AdminServiceInterface
}

func NewAdminController(svc service.AdminServiceInterface) *AdminController {
	return &AdminController{
		BaseController: controller.NewBaseController(),
		AdminService:   svc,
	}
}

// StorageStatus handles GET /admin/storage
// @Summary Storage status
// @Description Health of the configured storage providers
// @Tags Admin
// @Produce json
// @Success 200 {object} service.StorageStatus
// @Router /admin/storage [get]
func (c *AdminController) StorageStatus(ctx echo.Context) error {
	status, appErr := c.AdminService.StorageStatus(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, status, "Success")
}

// ListRooms handles GET /admin/rooms
// @Summary List room codes
// @Description All currently stored room codes
// @Tags Admin
// @Produce json
// @Success 200 {array} string
// @Router /admin/rooms [get]
func (c *AdminController) ListRooms(ctx echo.Context) error {
	codes, appErr := c.AdminService.ListRoomCodes(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, codes, "Success")
}
