package controller

import (
	"slotsync/core/controller"
	"slotsync/core/errors"
	"slotsync/modules/room/dto"
	"slotsync/modules/room/service"

	"github.com/labstack/echo/v4"
)

// RoomController handles room HTTP requests
type RoomController struct {
	controller.BaseController
	RoomService service.RoomServiceInterface
}

// NewRoomController creates a new controller
func NewRoomController(svc service.RoomServiceInterface) *RoomController {
	return &RoomController{
		BaseController: controller.NewBaseController(),
		RoomService:    svc,
	}
}

// CreateRoom handles POST /rooms
// @Summary Create a room
// @Description Create a scheduling room with the caller as its first participant
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomWithUserResponse
// @Failure 400 {object} errors.AppError
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx echo.Context) error {
	var req dto.CreateRoomRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.RoomService.CreateRoom(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Room created successfully")
}

// GetRoom handles GET /rooms/:code
// @Summary Fetch a room
// @Description Fetch the full room snapshot; the polling target for clients
// @Tags Room
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} entity.Room
// @Failure 404 {object} errors.AppError
// @Router /rooms/{code} [get]
func (c *RoomController) GetRoom(ctx echo.Context) error {
	room, appErr := c.RoomService.GetRoom(ctx.Request().Context(), ctx.Param("code"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, room, "Success")
}

// JoinRoom handles POST /rooms/:code/join
// @Summary Join a room
// @Description Join by name; a repeat name resolves to the existing participant
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body dto.JoinRoomRequest true "Participant name"
// @Success 200 {object} dto.RoomWithUserResponse
// @Success 201 {object} dto.RoomWithUserResponse
// @Failure 404 {object} errors.AppError
// @Router /rooms/{code}/join [post]
func (c *RoomController) JoinRoom(ctx echo.Context) error {
	var req dto.JoinRoomRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.RoomService.JoinRoom(ctx.Request().Context(), ctx.Param("code"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if result.Existing {
		return c.SuccessResponse(ctx, result, "Already joined")
	}
	return c.CreatedResponse(ctx, result, "Joined room successfully")
}

// UpdateSchedule handles PUT /rooms/:code/schedule
// @Summary Replace a participant's schedule
// @Description Full replacement of one participant's slot selection
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body dto.UpdateScheduleRequest true "Schedule replacement"
// @Success 200 {object} dto.UpdateScheduleResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /rooms/{code}/schedule [put]
func (c *RoomController) UpdateSchedule(ctx echo.Context) error {
	var req dto.UpdateScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.RoomService.UpdateSchedule(ctx.Request().Context(), ctx.Param("code"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Schedule updated successfully")
}

// BestTimes handles GET /rooms/:code/best-times
// @Summary Best meeting times
// @Description Top slots ranked by how many participants are available
// @Tags Room
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} dto.BestTimesResponse
// @Failure 404 {object} errors.AppError
// @Router /rooms/{code}/best-times [get]
func (c *RoomController) BestTimes(ctx echo.Context) error {
	result, appErr := c.RoomService.BestTimes(ctx.Request().Context(), ctx.Param("code"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
