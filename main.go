package main

import (
	"slotsync/core/logger"
	"slotsync/core/server"
)

// @title SlotSync API
// @version 1.0
// @description Backend for SlotSync - shared rooms for finding common meeting times

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
