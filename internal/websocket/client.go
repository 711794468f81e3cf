package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/sennin361/senninmessagever.3/internal/chat"
)

const (
	// Время ожидания записи
	writeWait = 10 * time.Second

	// Время ожидания pong от клиента
	pongWait = 60 * time.Second

	// Интервал отправки ping
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер сообщения
	maxMessageSize = 64 * 1024 // 64KB
)

// Client одно websocket-соединение: читает входящие события,
// передает их движку и доставляет исходящие события через send
type Client struct {
	id      uuid.UUID
	conn    *websocket.Conn
	send    chan []byte
	engine  *chat.Engine
	session *chat.Session
}

func NewClient(engine *chat.Engine, conn *websocket.Conn) *Client {
	c := &Client{
		id:     uuid.New(),
		conn:   conn,
		send:   make(chan []byte, 256),
		engine: engine,
	}
	c.session = engine.NewSession(c)
	return c
}

func (c *Client) ID() uuid.UUID {
	return c.id
}

// Deliver ставит событие в очередь отправки без блокировки.
// Переполненная очередь означает зависшее соединение — событие
// отбрасывается, комната не ждет.
func (c *Client) Deliver(ev chat.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("Client %s send queue full, dropping %s", c.id, ev.Type)
	}
}

// ReadPump читает события от клиента до разрыва соединения.
// Disconnect в defer — единственный путь очистки, срабатывает при
// любом завершении соединения.
func (c *Client) ReadPump() {
	defer func() {
		c.engine.Disconnect(c.session)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var ev chat.Event
		if err := c.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		c.handleEvent(&ev)
	}
}

func (c *Client) handleEvent(ev *chat.Event) {
	switch ev.Type {
	case chat.EventJoinRoom:
		var req chat.JoinRequest
		if err := json.Unmarshal(ev.Data, &req); err != nil {
			c.sendError("invalid joinRoom payload")
			return
		}
		if err := c.engine.Join(c.session, req.RoomName, req.Nickname); err != nil {
			c.sendError(err.Error())
		}

	case chat.EventSendMessage:
		var req chat.SendRequest
		if err := json.Unmarshal(ev.Data, &req); err != nil {
			return
		}
		// Сообщения без комнаты или без содержимого молча отбрасываются
		if err := c.engine.Send(c.session, req.Text, req.Image); err != nil {
			log.Printf("Dropped message from %s: %v", c.id, err)
		}

	case chat.EventLeaveRoom:
		c.engine.Leave(c.session)

	default:
		log.Printf("Unknown event type: %s", ev.Type)
	}
}

// WritePump отправляет события клиенту и периодические ping
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) sendError(text string) {
	data, err := json.Marshal(text)
	if err != nil {
		return
	}
	c.Deliver(chat.Event{Type: chat.EventErrorMessage, Data: data})
}
