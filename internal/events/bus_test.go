package events_test

import (
	"context"
	"testing"

	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/events"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newBus() *events.Bus { return events.NewBus(noopLogger{}) }

func TestPublish_OrderOfRegistration(t *testing.T) {
	bus := newBus()

	var got []int
	bus.Subscribe(events.NameCartOpened, func(events.Event) { got = append(got, 1) })
	bus.Subscribe(events.NameCartOpened, func(events.Event) { got = append(got, 2) })
	bus.Subscribe(events.NameCartOpened, func(events.Event) { got = append(got, 3) })

	bus.Publish(events.CartOpened{})

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("handlers out of registration order: %v", got)
	}
}

func TestOn_TypedPayload(t *testing.T) {
	bus := newBus()

	var seen events.CardSelected
	events.On(bus, func(e events.CardSelected) { seen = e })

	want := domain.Product{ID: "p1", Title: "Товар"}
	bus.Publish(events.CardSelected{Product: want})

	if seen.Product.ID != want.ID || seen.Product.Title != want.Title {
		t.Fatalf("payload lost in typed delivery: %+v", seen)
	}
}

func TestPublish_WildcardAfterNamed(t *testing.T) {
	bus := newBus()

	var got []string
	bus.Subscribe(events.Any, func(e events.Event) { got = append(got, "any") })
	bus.Subscribe(events.NameCartOpened, func(events.Event) { got = append(got, "named") })

	bus.Publish(events.CartOpened{})

	if len(got) != 2 || got[0] != "named" || got[1] != "any" {
		t.Fatalf("wildcard must run after named handlers: %v", got)
	}

	// wildcard видит и события без именных подписчиков
	got = nil
	bus.Publish(events.ModalCloseRequested{})
	if len(got) != 1 || got[0] != "any" {
		t.Fatalf("wildcard must see every event: %v", got)
	}
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	bus := newBus()
	bus.Publish(events.CartOpened{}) // не должно паниковать
}

func TestSubscription_Cancel(t *testing.T) {
	bus := newBus()

	calls := 0
	sub := bus.Subscribe(events.NameCartOpened, func(events.Event) { calls++ })

	bus.Publish(events.CartOpened{})
	sub.Cancel()
	sub.Cancel() // повторная отмена безопасна
	bus.Publish(events.CartOpened{})

	if calls != 1 {
		t.Fatalf("handler called after cancel: calls=%d", calls)
	}
}

func TestSubscription_CancelKeepsOthers(t *testing.T) {
	bus := newBus()

	var got []int
	first := bus.Subscribe(events.NameCartOpened, func(events.Event) { got = append(got, 1) })
	bus.Subscribe(events.NameCartOpened, func(events.Event) { got = append(got, 2) })

	first.Cancel()
	bus.Publish(events.CartOpened{})

	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("remaining handler must survive cancel: %v", got)
	}
}

func TestDispatch_PanicIsolated(t *testing.T) {
	bus := newBus()

	var after bool
	bus.Subscribe(events.NameCartOpened, func(events.Event) { panic("boom") })
	bus.Subscribe(events.NameCartOpened, func(events.Event) { after = true })

	bus.Publish(events.CartOpened{})

	if !after {
		t.Fatal("panic in one handler must not stop delivery to the next")
	}
}

func TestPublish_HandlerMayPublish(t *testing.T) {
	bus := newBus()

	var chained bool
	bus.Subscribe(events.NameCartOpened, func(events.Event) {
		bus.Publish(events.ModalCloseRequested{})
	})
	bus.Subscribe(events.NameModalCloseRequested, func(events.Event) { chained = true })

	bus.Publish(events.CartOpened{})

	if !chained {
		t.Fatal("publish from inside a handler must be delivered")
	}
}
