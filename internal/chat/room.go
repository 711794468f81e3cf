package chat

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type member struct {
	nickname string
	conn     Conn
}

// Room именованная группа соединений с общей историей.
// Все операции над одной комнатой сериализуются через r.mu,
// операции над разными комнатами друг друга не блокируют.
type Room struct {
	name string

	mu        sync.Mutex
	members   map[uuid.UUID]*member
	history   []Message
	lastStamp time.Time
	closed    bool
}

func newRoom(name string) *Room {
	return &Room{
		name:    name,
		members: make(map[uuid.UUID]*member),
	}
}

func (r *Room) Name() string {
	return r.name
}

// Size возвращает текущее количество участников
func (r *Room) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

func (r *Room) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// join добавляет участника, отправляет ему историю и рассылает
// уведомление о входе. Возвращает false, если комната уже закрыта
// (опустела и ждет удаления из реестра) — вызывающий должен взять
// свежую комнату из реестра.
func (r *Room) join(conn Conn, nickname string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}

	r.members[conn.ID()] = &member{nickname: nickname, conn: conn}

	// История уходит только входящему, до уведомления о входе
	history := make([]Message, 0, len(r.history))
	history = append(history, r.history...)
	if ev, err := newEvent(EventChatHistory, history); err == nil {
		conn.Deliver(ev)
	}

	r.broadcastNotice(fmt.Sprintf("%s has joined", nickname))
	return true
}

// leave убирает участника и рассылает уведомление о выходе.
// Повторный вызов для того же соединения — no-op без уведомления.
// empty=true означает, что комната опустела, закрыта и должна быть
// удалена из реестра.
func (r *Room) leave(id uuid.UUID) (nickname string, empty bool, left bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	if !ok {
		return "", false, false
	}

	delete(r.members, id)
	if len(r.members) == 0 {
		// Закрываем в той же критической секции, что и опустошили:
		// конкурентный join уже не сможет попасть в комнату-зомби
		r.closed = true
		return m.nickname, true, true
	}

	r.broadcastNotice(fmt.Sprintf("%s has left", m.nickname))
	return m.nickname, false, true
}

// send добавляет сообщение в историю и рассылает его всем текущим
// участникам, включая отправителя
func (r *Room) send(id uuid.UUID, text, image string) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	if !ok {
		return Message{}, ErrNotAMember
	}
	if text == "" && image == "" {
		return Message{}, ErrEmptyMessage
	}

	msg := Message{
		Nickname:  m.nickname,
		Text:      text,
		Image:     image,
		Timestamp: r.stamp(),
	}
	r.history = append(r.history, msg)

	if ev, err := newEvent(EventNewMessage, msg); err == nil {
		r.broadcast(ev)
	}
	return msg, nil
}

// stamp выдает неубывающее время создания в пределах комнаты
func (r *Room) stamp() time.Time {
	now := time.Now()
	if now.Before(r.lastStamp) {
		now = r.lastStamp
	}
	r.lastStamp = now
	return now
}

func (r *Room) broadcastNotice(text string) {
	data, err := json.Marshal(text)
	if err != nil {
		return
	}
	r.broadcast(Event{Type: EventSystemMessage, Data: data})
}

// broadcast доставляет событие всем текущим участникам; вызывается
// только под r.mu, что дает единый порядок событий в комнате.
// Deliver не блокирует, медленное соединение не тормозит комнату.
func (r *Room) broadcast(ev Event) {
	for _, m := range r.members {
		m.conn.Deliver(ev)
	}
}
