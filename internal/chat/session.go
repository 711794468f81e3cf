package chat

import "sync"

// Session состояние одного соединения: текущая комната (не больше
// одной) и выбранный никнейм. Мьютекс сессии сериализует
// join/leave/send этого соединения между собой.
type Session struct {
	conn Conn

	mu       sync.Mutex
	room     *Room
	nickname string
}

// Room возвращает текущую комнату или nil
func (s *Session) Room() *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room
}

// Nickname возвращает никнейм, выбранный при входе в комнату
func (s *Session) Nickname() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nickname
}
