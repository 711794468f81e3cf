package chat

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType определяет типы событий
type EventType string

const (
	// Исходящие события
	EventChatHistory   EventType = "chatHistory"
	EventNewMessage    EventType = "newMessage"
	EventSystemMessage EventType = "systemMessage"
	EventErrorMessage  EventType = "errorMessage"

	// Входящие события
	EventJoinRoom    EventType = "joinRoom"
	EventSendMessage EventType = "sendMessage"
	EventLeaveRoom   EventType = "leaveRoom"
)

type Event struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message хранится в истории комнаты и рассылается участникам
type Message struct {
	Nickname  string    `json:"nickname"`
	Text      string    `json:"text,omitempty"`
	Image     string    `json:"image,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type JoinRequest struct {
	RoomName string `json:"roomName"`
	Nickname string `json:"nickname"`
}

type SendRequest struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

// RoomInfo краткая информация о комнате для списка
type RoomInfo struct {
	Name    string `json:"name"`
	Members int    `json:"members"`
}

// Conn исходящая сторона соединения участника
type Conn interface {
	ID() uuid.UUID

	// Deliver ставит событие в очередь без блокировки; события могут
	// быть потеряны, если соединение не успевает их принимать
	Deliver(event Event)
}

func newEvent(eventType EventType, payload interface{}) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Data: data}, nil
}
