package chat

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Engine связывает сессии, реестр и комнаты: проводит переходы
// join/leave/send/disconnect и отвечает за то, что соединение
// никогда не состоит в двух комнатах одновременно
type Engine struct {
	registry *Registry
}

func NewEngine() *Engine {
	return &Engine{registry: NewRegistry()}
}

// NewSession создает сессию для нового соединения
func (e *Engine) NewSession(conn Conn) *Session {
	return &Session{conn: conn}
}

// Join вводит соединение в комнату, при необходимости сначала выводя
// его из предыдущей. Новому участнику отдается история комнаты,
// остальным — уведомление о входе.
func (e *Engine) Join(s *Session, roomName, nickname string) error {
	roomName = strings.TrimSpace(roomName)
	nickname = strings.TrimSpace(nickname)
	if roomName == "" || nickname == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e.leaveLocked(s)

	for {
		room := e.registry.getOrCreate(roomName)
		if room.join(s.conn, nickname) {
			s.room = room
			s.nickname = nickname
			return nil
		}
		// Комната опустела между getOrCreate и join, берем свежую
	}
}

// Leave выводит соединение из текущей комнаты; без комнаты — no-op
func (e *Engine) Leave(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.leaveLocked(s)
}

// Disconnect вызывается при разрыве соединения, ведет себя как Leave
func (e *Engine) Disconnect(s *Session) {
	e.Leave(s)
}

// Send отправляет сообщение в текущую комнату сессии
func (e *Engine) Send(s *Session, text, image string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.room == nil {
		return ErrNotAMember
	}
	_, err := s.room.send(s.conn.ID(), text, image)
	return err
}

// Rooms возвращает срез активных комнат для лобби
func (e *Engine) Rooms() []RoomInfo {
	rooms := lo.MapToSlice(e.registry.snapshot(), func(name string, room *Room) RoomInfo {
		return RoomInfo{Name: name, Members: room.Size()}
	})
	rooms = lo.Filter(rooms, func(info RoomInfo, _ int) bool {
		return info.Members > 0
	})
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })
	return rooms
}

func (e *Engine) leaveLocked(s *Session) {
	if s.room == nil {
		return
	}

	_, empty, _ := s.room.leave(s.conn.ID())
	if empty {
		e.registry.remove(s.room.name, s.room)
	}
	s.room = nil
	s.nickname = ""
}
