package daemon

import (
	"sync"
	"time"
)

// debouncer откладывает событие по ключу; повторное событие перезапускает таймер
// и заменяет отложенное событие
type debouncer struct {
	fire    func(event)
	pending map[string]*pendingEvent
	delay   time.Duration
	mu      sync.Mutex
}

type pendingEvent struct {
	timer *time.Timer
	ev    event
}

func newDebouncer(delay time.Duration, fire func(event)) *debouncer {
	return &debouncer{
		delay:   delay,
		fire:    fire,
		pending: make(map[string]*pendingEvent),
	}
}

func debounceKey(ev event) string {
	switch ev.kind {
	case evNoteEdited, evNoteRemoved:
		return "note:" + ev.id
	default:
		return ev.kind.String()
	}
}

func (d *debouncer) push(key string, ev event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[key]; ok {
		p.ev = ev
		p.timer.Reset(d.delay)
		return
	}

	p := &pendingEvent{ev: ev}
	p.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		cur, ok := d.pending[key]
		if !ok || cur != p {
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		fired := p.ev
		d.mu.Unlock()

		d.fire(fired)
	})
	d.pending[key] = p
}

// take забирает отложенные события заданного типа, не дожидаясь таймеров
func (d *debouncer) take(kind eventKind) []event {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []event
	for key, p := range d.pending {
		if p.ev.kind != kind {
			continue
		}
		p.timer.Stop()
		delete(d.pending, key)
		out = append(out, p.ev)
	}
	return out
}

func (d *debouncer) stopAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
	}
}

func (d *debouncer) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
