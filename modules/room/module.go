package room

import (
	"slotsync/core/config"
	"slotsync/core/middleware"
	"slotsync/core/storage"
	"slotsync/modules/room/controller"
	"slotsync/modules/room/repository"
	"slotsync/modules/room/router"
	"slotsync/modules/room/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the room module and registers routes
func Init(e *echo.Echo, store storage.Provider, cfg *config.Config, mw *middleware.Middleware) {
	repo := repository.NewRoomRepository(store, cfg.Room.TTL)
	svc := service.NewRoomService(repo, cfg.Room)
	ctrl := controller.NewRoomController(svc)
	rtr := router.NewRoomRouter(ctrl)

	rtr.Setup(e, mw)
}
