package sync

import (
	stdsync "sync"
)

// Status индикатор состояния синхронизации
type Status string

const (
	StatusSyncing Status = "syncing"
	StatusSynced  Status = "synced"
	StatusOffline Status = "offline"
)

// broadcaster хранит текущий статус и рассылает изменения подписчикам
type broadcaster struct {
	subs    map[int]chan Status
	current Status
	next    int
	mu      stdsync.Mutex
}

func newBroadcaster() *broadcaster {
	return &broadcaster{
		subs:    make(map[int]chan Status),
		current: StatusOffline,
	}
}

func (b *broadcaster) get() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

func (b *broadcaster) set(st Status) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == st {
		return
	}
	b.current = st

	for _, ch := range b.subs {
		// Медленный подписчик получает только последний статус
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}

func (b *broadcaster) subscribe() (<-chan Status, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Status, 1)
	b.subs[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
}
