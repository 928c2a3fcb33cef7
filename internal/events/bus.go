package events

import (
	"context"
	"sync"

	"github.com/weblarek/storefront/internal/ports"
	"github.com/weblarek/storefront/pkg/metrics"
)

// Handler — обработчик события.
type Handler func(Event)

// Subscription — активная подписка; Cancel снимает её с шины.
type Subscription struct {
	bus  *Bus
	name Name
	id   uint64
}

// Cancel — отписаться. Повторный вызов безопасен.
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.cancel(s.name, s.id)
	s.bus = nil
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus — синхронная шина: Publish вызывает обработчиков в порядке подписки,
// в горутине публикующего. Паника одного обработчика изолируется и не
// прерывает доставку остальным.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Name][]subscriber
	log    ports.Logger
}

// NewBus — конструктор; логгер нужен для сообщений об изолированных паниках.
func NewBus(log ports.Logger) *Bus {
	return &Bus{
		subs: make(map[Name][]subscriber),
		log:  log,
	}
}

// Subscribe — подписка на событие по имени (Any — на все события).
// Обработчики одного имени вызываются в порядке регистрации.
func (b *Bus) Subscribe(name Name, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[name] = append(b.subs[name], subscriber{id: b.nextID, handler: h})
	return &Subscription{bus: b, name: name, id: b.nextID}
}

// On — типизированная подписка: payload события проверяется компилятором.
func On[E Event](b *Bus, h func(E)) *Subscription {
	var zero E
	return b.Subscribe(zero.EventName(), func(e Event) {
		if typed, ok := e.(E); ok {
			h(typed)
		}
	})
}

// Publish — синхронная доставка события. Отсутствие подписчиков — no-op.
// Wildcard-подписчики получают событие после подписчиков его имени.
func (b *Bus) Publish(e Event) {
	name := e.EventName()

	b.mu.Lock()
	targets := make([]subscriber, 0, len(b.subs[name])+len(b.subs[Any]))
	targets = append(targets, b.subs[name]...)
	targets = append(targets, b.subs[Any]...)
	b.mu.Unlock()

	metrics.EventsPublished.WithLabelValues(string(name)).Inc()

	for _, sub := range targets {
		b.dispatch(name, sub, e)
	}
}

// dispatch — вызов одного обработчика с изоляцией паники.
func (b *Bus) dispatch(name Name, sub subscriber, e Event) {
	defer func() {
		if r := recover(); r != nil {
			metrics.EventHandlerPanics.WithLabelValues(string(name)).Inc()
			if b.log != nil {
				b.log.Errorf(context.Background(), "event handler panic event=%s err=%v", name, r)
			}
		}
	}()
	sub.handler(e)
}

func (b *Bus) cancel(name Name, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[name]
	for i, sub := range list {
		if sub.id == id {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		// последний обработчик снят — освобождаем регистрацию имени
		delete(b.subs, name)
		return
	}
	b.subs[name] = list
}
