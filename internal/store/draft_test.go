package store_test

import (
	"testing"

	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/store"
)

func newDraft() (*store.OrderDraft, *events.Bus) {
	bus := events.NewBus(noopLogger{})
	return store.NewOrderDraft(bus), bus
}

func TestOrderDraft_ValidateOrderStep(t *testing.T) {
	tests := []struct {
		name    string
		payment domain.PaymentMethod
		address string
		field   domain.Field
		wantMsg string
	}{
		{"empty address", domain.PaymentCard, "", domain.FieldAddress, "Необходимо указать адрес"},
		{"short address", domain.PaymentCard, "ул. 1", domain.FieldAddress, "Адрес должен содержать не менее 7 символов"},
		{"bad characters", domain.PaymentCard, "Москва, <script>", domain.FieldAddress, "Адрес содержит недопустимые символы"},
		{"no payment", domain.PaymentNone, "Москва, Тверская 1", domain.FieldPayment, "Выберите способ оплаты"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft, _ := newDraft()
			draft.SetPayment(tc.payment)
			draft.SetAddress(tc.address)

			errs := draft.ValidateOrderStep()
			if got := errs[tc.field]; got != tc.wantMsg {
				t.Fatalf("errs[%s] = %q, want %q", tc.field, got, tc.wantMsg)
			}
		})
	}
}

func TestOrderDraft_ValidateContactsStep(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		phone   string
		field   domain.Field
		wantMsg string
	}{
		{"empty email", "", "+7 999 000 12 34", domain.FieldEmail, "Необходимо указать email"},
		{"bad email", "not-an-email", "+7 999 000 12 34", domain.FieldEmail, "Некорректный формат email"},
		{"empty phone", "a@b.ru", "", domain.FieldPhone, "Необходимо указать телефон"},
		{"short phone", "a@b.ru", "+7 999", domain.FieldPhone, "Телефон должен содержать 11 цифр"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft, _ := newDraft()
			draft.SetEmail(tc.email)
			draft.SetPhone(tc.phone)

			errs := draft.ValidateContactsStep()
			if got := errs[tc.field]; got != tc.wantMsg {
				t.Fatalf("errs[%s] = %q, want %q", tc.field, got, tc.wantMsg)
			}
		})
	}
}

func TestOrderDraft_FirstErrorWins(t *testing.T) {
	draft, _ := newDraft()
	// оба поля невалидны: адрес идёт раньше оплаты
	errs := draft.ValidateOrderStep()

	if got := errs.First(); got != "Необходимо указать адрес" {
		t.Fatalf("first error = %q, want the address message", got)
	}
}

func TestOrderDraft_PhoneNormalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"89990001234", "+7 999 000 12 34"},
		{"+7 (999) 000-12-34", "+7 999 000 12 34"},
		{"+7 999 000 12 34", "+7 999 000 12 34"}, // идемпотентность
		{"79990001234", "+7 999 000 12 34"},
		{"", ""},
	}

	for _, tc := range tests {
		draft, _ := newDraft()
		draft.SetPhone(tc.in)
		if got := draft.Phone(); got != tc.want {
			t.Errorf("SetPhone(%q): stored %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOrderDraft_PhaseProgression(t *testing.T) {
	draft, _ := newDraft()
	if draft.Phase() != store.PhaseEmpty {
		t.Fatalf("initial phase = %s", draft.Phase())
	}

	draft.SetAddress("Москва, Тверская 1")
	if draft.Phase() != store.PhaseAddressEntered {
		t.Fatalf("after address phase = %s", draft.Phase())
	}

	draft.SetPayment(domain.PaymentCard)
	if draft.Phase() != store.PhasePaymentChosen {
		t.Fatalf("after payment phase = %s", draft.Phase())
	}

	draft.SetEmail("a@b.ru")
	draft.SetPhone("89990001234")
	draft.ValidateOrderStep()
	draft.ValidateContactsStep()
	if draft.Phase() != store.PhaseValid {
		t.Fatalf("after validation phase = %s", draft.Phase())
	}
}

func TestOrderDraft_SubmitTokens(t *testing.T) {
	draft, _ := newDraft()

	first := draft.BeginSubmit()
	if draft.Phase() != store.PhaseSubmitting {
		t.Fatalf("phase after BeginSubmit = %s", draft.Phase())
	}

	// новая отправка вытесняет старую
	second := draft.BeginSubmit()

	if draft.Confirm(first) {
		t.Fatal("stale token must be rejected")
	}
	if !draft.Confirm(second) {
		t.Fatal("active token must be accepted")
	}
	if draft.Phase() != store.PhaseConfirmed {
		t.Fatalf("phase after Confirm = %s", draft.Phase())
	}
	if draft.Confirm(second) {
		t.Fatal("token must be single-use")
	}
}

func TestOrderDraft_FailKeepsFields(t *testing.T) {
	draft, _ := newDraft()
	draft.SetPayment(domain.PaymentCash)
	draft.SetAddress("Москва, Тверская 1")
	draft.SetEmail("a@b.ru")
	draft.SetPhone("89990001234")

	token := draft.BeginSubmit()
	if !draft.Fail(token) {
		t.Fatal("active token must be accepted")
	}
	if draft.Phase() != store.PhaseFailed {
		t.Fatalf("phase after Fail = %s", draft.Phase())
	}
	if draft.Email() != "a@b.ru" || draft.Address() != "Москва, Тверская 1" {
		t.Fatal("fields must survive a failed submission")
	}
}

func TestOrderDraft_BuildOrder(t *testing.T) {
	draft, _ := newDraft()
	draft.SetPayment(domain.PaymentCard)
	draft.SetAddress("Москва, Тверская 1")
	draft.SetEmail("a@b.ru")
	draft.SetPhone("89990001234")

	snap := domain.CartSnapshot{
		Items: []domain.Product{product("p1", intPtr(100)), product("p2", intPtr(50))},
		Total: 150,
	}

	order := draft.BuildOrder(snap)
	if order.Payment != domain.PaymentCard || order.Total != 150 {
		t.Fatalf("order = %+v", order)
	}
	if order.Phone != "+7 999 000 12 34" {
		t.Fatalf("phone = %q, want normalized form", order.Phone)
	}
	if len(order.Items) != 2 || order.Items[0] != "p1" || order.Items[1] != "p2" {
		t.Fatalf("items = %v", order.Items)
	}
}

func TestOrderDraft_Reset(t *testing.T) {
	draft, bus := newDraft()
	draft.SetPayment(domain.PaymentCard)
	draft.SetAddress("Москва, Тверская 1")
	draft.ValidateOrderStep()

	var steps []string
	events.On(bus, func(e events.DraftErrorsChanged) {
		steps = append(steps, e.Step)
		if !e.Errors.Valid() {
			t.Errorf("errors after reset must be empty: %v", e.Errors)
		}
	})

	draft.Reset()

	if draft.Phase() != store.PhaseEmpty || draft.Payment() != domain.PaymentNone || draft.Address() != "" {
		t.Fatal("reset must return the draft to its initial state")
	}
	if len(steps) != 2 {
		t.Fatalf("reset must republish empty errors for both steps: %v", steps)
	}
}

func TestOrderDraft_ErrorsClonedOnPublish(t *testing.T) {
	draft, bus := newDraft()

	var published domain.ValidationErrors
	events.On(bus, func(e events.DraftErrorsChanged) { published = e.Errors })

	draft.ValidateOrderStep()
	published[domain.FieldAddress] = "mutated"

	if got := draft.OrderErrors()[domain.FieldAddress]; got == "mutated" {
		t.Fatal("published errors must be a copy of the store state")
	}
}
