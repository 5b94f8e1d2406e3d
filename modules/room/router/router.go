package router

import (
	"slotsync/core/middleware"
	"slotsync/modules/room/controller"

	"github.com/labstack/echo/v4"
)

// RoomRouter handles room routes
type RoomRouter struct {
	RoomController *controller.RoomController
}

// NewRoomRouter creates a new router
func NewRoomRouter(roomController *controller.RoomController) *RoomRouter {
	return &RoomRouter{
		RoomController: roomController,
	}
}

// Setup registers room routes. Rooms are shared by knowing the code, so
// there is no auth layer.
func (r *RoomRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	roomRoutes := v1.Group("/rooms")

	roomRoutes.POST("", r.RoomController.CreateRoom)
	roomRoutes.GET("/:code", r.RoomController.GetRoom)
	roomRoutes.POST("/:code/join", r.RoomController.JoinRoom)
	roomRoutes.PUT("/:code/schedule", r.RoomController.UpdateSchedule)
	roomRoutes.GET("/:code/best-times", r.RoomController.BestTimes)
}
