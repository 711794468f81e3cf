package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sennin361/senninmessagever.3/internal/chat"
)

type stubConn struct {
	id uuid.UUID
}

func (s *stubConn) ID() uuid.UUID        { return s.id }
func (s *stubConn) Deliver(_ chat.Event) {}

func TestListRooms(t *testing.T) {
	req := require.New(t)
	engine := chat.NewEngine()

	s1 := engine.NewSession(&stubConn{id: uuid.New()})
	s2 := engine.NewSession(&stubConn{id: uuid.New()})
	req.NoError(engine.Join(s1, "lobby", "Alice"))
	req.NoError(engine.Join(s2, "lobby", "Bob"))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/rooms", NewRoomHandler(engine).ListRooms)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"rooms":[{"name":"lobby","members":2}]}`, w.Body.String())
}

func TestListRooms_Empty(t *testing.T) {
	req := require.New(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/rooms", NewRoomHandler(chat.NewEngine()).ListRooms)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"rooms":[]}`, w.Body.String())
}
