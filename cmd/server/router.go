package server

import (
	"github.com/gin-gonic/gin"

	"github.com/sennin361/senninmessagever.3/internal/handlers"
)

func APIEndpoints(r *gin.Engine, wsH *handlers.WebSocketHandler, uploadH *handlers.UploadHandler, roomH *handlers.RoomHandler) {
	r.GET("/ws", wsH.HandleWebSocket)

	// Upload endpoints
	r.POST("/upload", uploadH.Upload)
	r.GET("/uploads/:id", uploadH.Serve)

	// API endpoints
	api := r.Group("/api/v1")
	{
		api.GET("/rooms", roomH.ListRooms)
	}

	// Браузерный клиент
	r.Static("/public", "./public")
}
