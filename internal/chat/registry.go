package chat

import "sync"

// Registry отображение имени комнаты на живую комнату.
// Мьютекс реестра держится только на время операций с map,
// никогда — на время операций над участниками.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// getOrCreate возвращает комнату по имени, создавая ее при первом
// обращении. Закрытая комната (опустевшая, но еще не удаленная)
// заменяется новой, чтобы join никогда не ждал удаления.
func (reg *Registry) getOrCreate(name string) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room := reg.rooms[name]
	if room == nil || room.isClosed() {
		room = newRoom(name)
		reg.rooms[name] = room
	}
	return room
}

// remove удаляет запись, только если под именем все еще числится
// именно эта комната: getOrCreate мог уже заменить ее новой
func (reg *Registry) remove(name string, room *Room) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.rooms[name] == room {
		delete(reg.rooms, name)
	}
}

func (reg *Registry) snapshot() map[string]*Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	rooms := make(map[string]*Room, len(reg.rooms))
	for name, room := range reg.rooms {
		rooms[name] = room
	}
	return rooms
}
