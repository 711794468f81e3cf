package chat

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_GetOrCreateReturnsSameRoom(t *testing.T) {
	req := require.New(t)
	reg := NewRegistry()

	room := reg.getOrCreate("lobby")
	req.NotNil(room)
	req.Same(room, reg.getOrCreate("lobby"))
	req.NotSame(room, reg.getOrCreate("other"))
}

func TestRegistry_GetOrCreateReplacesClosedRoom(t *testing.T) {
	req := require.New(t)
	reg := NewRegistry()

	c := newFakeConn()
	room := reg.getOrCreate("lobby")
	req.True(room.join(c, "Alice"))
	room.leave(c.ID())
	req.True(room.isClosed())

	fresh := reg.getOrCreate("lobby")
	req.NotSame(room, fresh)
	req.False(fresh.isClosed())
}

func TestRegistry_RemoveOnlyMatchingRoom(t *testing.T) {
	req := require.New(t)
	reg := NewRegistry()

	stale := reg.getOrCreate("lobby")
	c := newFakeConn()
	req.True(stale.join(c, "Alice"))
	stale.leave(c.ID())

	// Имя уже занято новой комнатой, удаление старой ее не трогает
	fresh := reg.getOrCreate("lobby")
	reg.remove("lobby", stale)
	req.Same(fresh, reg.getOrCreate("lobby"))

	reg.remove("lobby", fresh)
	req.NotSame(fresh, reg.getOrCreate("lobby"))
}

func TestRegistry_RemoveMissingNameIsNoop(t *testing.T) {
	reg := NewRegistry()
	reg.remove("ghost", newRoom("ghost"))
	require.Empty(t, reg.snapshot())
}

func TestRegistry_ConcurrentGetOrCreate(t *testing.T) {
	req := require.New(t)
	reg := NewRegistry()

	const n = 32
	rooms := make([]*Room, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rooms[i] = reg.getOrCreate("lobby")
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		req.Same(rooms[0], rooms[i])
	}
}
