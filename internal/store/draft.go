package store

import (
	"regexp"
	"strings"
	"sync"

	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/pkg/phonefmt"
)

// Phase — фаза оформления заказа.
type Phase string

const (
	PhaseEmpty          Phase = "empty"
	PhaseAddressEntered Phase = "address_entered"
	PhasePaymentChosen  Phase = "payment_chosen"
	PhaseValid          Phase = "valid"
	PhaseInvalid        Phase = "invalid"
	PhaseSubmitting     Phase = "submitting"
	PhaseConfirmed      Phase = "confirmed"
	PhaseFailed         Phase = "failed"
)

// Шаги валидации: оплата+адрес и email+телефон проверяются независимо,
// потому что показываются двумя последовательными экранами.
const (
	StepOrder    = "order"
	StepContacts = "contacts"
)

const minAddressLen = 7

var (
	addressRe = regexp.MustCompile(`^[а-яА-ЯёЁa-zA-Z0-9\s.,\-/]+$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Тексты ошибок валидации, как их видит пользователь.
const (
	msgAddressRequired = "Необходимо указать адрес"
	msgAddressShort    = "Адрес должен содержать не менее 7 символов"
	msgAddressChars    = "Адрес содержит недопустимые символы"
	msgPaymentRequired = "Выберите способ оплаты"
	msgEmailRequired   = "Необходимо указать email"
	msgEmailFormat     = "Некорректный формат email"
	msgPhoneRequired   = "Необходимо указать телефон"
	msgPhoneDigits     = "Телефон должен содержать 11 цифр"
)

// OrderDraft — стор черновика заказа: поля двух форм, ошибки валидации
// и фаза оформления. Телефон хранится в нормализованном виде.
type OrderDraft struct {
	mu sync.Mutex

	payment domain.PaymentMethod
	address string
	email   string
	phone   string

	orderErrs    domain.ValidationErrors
	contactsErrs domain.ValidationErrors

	phase     Phase
	submitSeq uint64
	inFlight  uint64 // 0 — нет активной отправки

	bus *events.Bus
}

func NewOrderDraft(bus *events.Bus) *OrderDraft {
	return &OrderDraft{
		phase:        PhaseEmpty,
		orderErrs:    domain.ValidationErrors{},
		contactsErrs: domain.ValidationErrors{},
		bus:          bus,
	}
}

// SetPayment — выбрать способ оплаты.
func (d *OrderDraft) SetPayment(method domain.PaymentMethod) {
	d.mu.Lock()
	d.payment = method
	if method != domain.PaymentNone && (d.phase == PhaseEmpty || d.phase == PhaseAddressEntered) {
		d.phase = PhasePaymentChosen
	}
	d.mu.Unlock()

	d.bus.Publish(events.DraftFieldChanged{Field: domain.FieldPayment, Value: string(method)})
}

// SetAddress — ввести адрес доставки.
func (d *OrderDraft) SetAddress(value string) {
	d.mu.Lock()
	d.address = value
	if strings.TrimSpace(value) != "" && d.phase == PhaseEmpty {
		d.phase = PhaseAddressEntered
	}
	d.mu.Unlock()

	d.bus.Publish(events.DraftFieldChanged{Field: domain.FieldAddress, Value: value})
}

// SetEmail — ввести email.
func (d *OrderDraft) SetEmail(value string) {
	d.mu.Lock()
	d.email = value
	d.mu.Unlock()

	d.bus.Publish(events.DraftFieldChanged{Field: domain.FieldEmail, Value: value})
}

// SetPhone — ввести телефон. Сырой ввод нормализуется к групповому
// формату «+7 999 000 12 34»; пустой ввод остаётся пустым.
func (d *OrderDraft) SetPhone(value string) {
	normalized := ""
	if strings.TrimSpace(value) != "" {
		normalized = phonefmt.Format(value)
	}

	d.mu.Lock()
	d.phone = normalized
	d.mu.Unlock()

	d.bus.Publish(events.DraftFieldChanged{Field: domain.FieldPhone, Value: normalized})
}

// ValidateOrderStep — проверка первого шага (адрес, затем оплата).
// Ошибки пересобираются целиком и публикуются отдельным событием.
func (d *OrderDraft) ValidateOrderStep() domain.ValidationErrors {
	d.mu.Lock()
	errs := validateOrderFields(d.address, d.payment)
	d.orderErrs = errs
	d.advanceValidityLocked()
	d.mu.Unlock()

	d.bus.Publish(events.DraftErrorsChanged{Step: StepOrder, Errors: errs.Clone()})
	return errs.Clone()
}

// ValidateContactsStep — проверка второго шага (email, затем телефон).
func (d *OrderDraft) ValidateContactsStep() domain.ValidationErrors {
	d.mu.Lock()
	errs := validateContactsFields(d.email, d.phone)
	d.contactsErrs = errs
	d.advanceValidityLocked()
	d.mu.Unlock()

	d.bus.Publish(events.DraftErrorsChanged{Step: StepContacts, Errors: errs.Clone()})
	return errs.Clone()
}

// advanceValidityLocked — свести фазу к Valid/Invalid по итогам проверок.
// Активную отправку и терминальные фазы пересчёт не трогает.
func (d *OrderDraft) advanceValidityLocked() {
	if d.phase == PhaseSubmitting || d.phase == PhaseConfirmed {
		return
	}
	if d.orderErrs.Valid() && d.contactsErrs.Valid() {
		d.phase = PhaseValid
		return
	}
	d.phase = PhaseInvalid
}

// BuildOrder — собрать payload из полей черновика и переданного снапшота.
// Снапшот передаётся вызывающим кодом: сумма и состав берутся на момент
// отправки, а не из ранее захваченной копии.
func (d *OrderDraft) BuildOrder(snap domain.CartSnapshot) domain.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	return domain.Order{
		Payment: d.payment,
		Email:   d.email,
		Phone:   d.phone,
		Address: d.address,
		Total:   snap.Total,
		Items:   snap.ItemIDs(),
	}
}

// BeginSubmit — перейти в фазу отправки. Возвращённый токен предъявляется
// в Confirm/Fail: результат устаревшей отправки игнорируется.
func (d *OrderDraft) BeginSubmit() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.submitSeq++
	d.inFlight = d.submitSeq
	d.phase = PhaseSubmitting
	return d.inFlight
}

// InFlight — токен всё ещё соответствует активной отправке.
func (d *OrderDraft) InFlight(token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return token != 0 && d.inFlight == token
}

// Confirm — успешное оформление; черновик остаётся очищать вызывающему
// коду через Reset. Устаревший токен — no-op.
func (d *OrderDraft) Confirm(token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if token == 0 || d.inFlight != token {
		return false
	}
	d.inFlight = 0
	d.phase = PhaseConfirmed
	return true
}

// Fail — сервер отклонил заказ; поля сохраняются, форма снова редактируема.
func (d *OrderDraft) Fail(token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if token == 0 || d.inFlight != token {
		return false
	}
	d.inFlight = 0
	d.phase = PhaseFailed
	return true
}

// Reset — вернуть черновик в исходное состояние. Вызывается после
// успешного оформления или явной отмены.
func (d *OrderDraft) Reset() {
	d.mu.Lock()
	d.payment = domain.PaymentNone
	d.address = ""
	d.email = ""
	d.phone = ""
	d.orderErrs = domain.ValidationErrors{}
	d.contactsErrs = domain.ValidationErrors{}
	d.phase = PhaseEmpty
	d.inFlight = 0
	d.mu.Unlock()

	d.bus.Publish(events.DraftErrorsChanged{Step: StepOrder, Errors: domain.ValidationErrors{}})
	d.bus.Publish(events.DraftErrorsChanged{Step: StepContacts, Errors: domain.ValidationErrors{}})
}

func (d *OrderDraft) Payment() domain.PaymentMethod {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.payment
}

func (d *OrderDraft) Address() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.address
}

func (d *OrderDraft) Email() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.email
}

func (d *OrderDraft) Phone() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phone
}

func (d *OrderDraft) Phase() Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phase
}

// OrderErrors — копия ошибок первого шага.
func (d *OrderDraft) OrderErrors() domain.ValidationErrors {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.orderErrs.Clone()
}

// ContactsErrors — копия ошибок второго шага.
func (d *OrderDraft) ContactsErrors() domain.ValidationErrors {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contactsErrs.Clone()
}

// validateOrderFields — правила первого шага. Адрес проверяется раньше
// оплаты: его ошибка становится первой в сводном сообщении.
func validateOrderFields(address string, payment domain.PaymentMethod) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	trimmed := strings.TrimSpace(address)
	switch {
	case trimmed == "":
		errs[domain.FieldAddress] = msgAddressRequired
	case len([]rune(trimmed)) < minAddressLen:
		errs[domain.FieldAddress] = msgAddressShort
	case !addressRe.MatchString(trimmed):
		errs[domain.FieldAddress] = msgAddressChars
	}

	if payment != domain.PaymentCard && payment != domain.PaymentCash {
		errs[domain.FieldPayment] = msgPaymentRequired
	}
	return errs
}

// validateContactsFields — правила второго шага.
func validateContactsFields(email, phone string) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	switch {
	case strings.TrimSpace(email) == "":
		errs[domain.FieldEmail] = msgEmailRequired
	case !emailRe.MatchString(strings.TrimSpace(email)):
		errs[domain.FieldEmail] = msgEmailFormat
	}

	switch {
	case strings.TrimSpace(phone) == "":
		errs[domain.FieldPhone] = msgPhoneRequired
	case !phonefmt.Complete(phone):
		errs[domain.FieldPhone] = msgPhoneDigits
	}
	return errs
}
