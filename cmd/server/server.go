package server

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/sennin361/senninmessagever.3/internal/chat"
	"github.com/sennin361/senninmessagever.3/internal/config"
	"github.com/sennin361/senninmessagever.3/internal/handlers"
	"github.com/sennin361/senninmessagever.3/internal/uploads"
)

type Server struct {
	Router *gin.Engine
	Redis  *redis.Client
	Engine *chat.Engine

	addr string
}

func NewServer() *Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	engine := chat.NewEngine()
	store := uploads.NewRedisStore(rdb, cfg.UploadTTL)

	wsH := handlers.NewWebSocketHandler(engine)
	uploadH := handlers.NewUploadHandler(store, cfg.UploadMaxBytes)
	roomH := handlers.NewRoomHandler(engine)

	router := gin.Default()
	APIEndpoints(router, wsH, uploadH, roomH)

	return &Server{
		Router: router,
		Redis:  rdb,
		Engine: engine,
		addr:   ":" + cfg.Port,
	}
}

func (s *Server) Run() {
	log.Printf("Server starting on %s", s.addr)
	if err := s.Router.Run(s.addr); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
