package sync

import (
	stdsync "sync"
	"time"
)

// Значения по умолчанию для ограничения focus синхронизации
const (
	DefaultFocusInterval = 5 * time.Second
	DefaultCoolOff       = 3 * time.Second
)

// gate пропускает focus синхронизацию не чаще minInterval
// и не раньше окончания паузы после полной пересинхронизации или push.
type gate struct {
	last        time.Time
	coolUntil   time.Time
	now         func() time.Time
	minInterval time.Duration
	coolOff     time.Duration
	mu          stdsync.Mutex
}

func newGate(minInterval, coolOff time.Duration, now func() time.Time) *gate {
	return &gate{
		minInterval: minInterval,
		coolOff:     coolOff,
		now:         now,
	}
}

// allow сообщает, можно ли запускать синхронизацию, и запоминает запуск
func (g *gate) allow() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if now.Before(g.coolUntil) {
		return false
	}
	if !g.last.IsZero() && now.Sub(g.last) < g.minInterval {
		return false
	}
	g.last = now
	return true
}

// coolDown начинает окно паузы
func (g *gate) coolDown() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.coolUntil = g.now().Add(g.coolOff)
}
