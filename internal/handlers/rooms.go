package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sennin361/senninmessagever.3/internal/chat"
)

type RoomHandler struct {
	engine *chat.Engine
}

func NewRoomHandler(engine *chat.Engine) *RoomHandler {
	return &RoomHandler{engine: engine}
}

// ListRooms отдает список активных комнат для лобби
func (h *RoomHandler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": h.engine.Rooms()})
}
