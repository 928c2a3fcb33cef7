package domain

// PaymentMethod — способ оплаты заказа.
type PaymentMethod string

const (
	PaymentNone PaymentMethod = ""
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// Order — итоговый payload заказа, единственный wire-контракт ядра.
// Поля и их имена должны совпадать с контрактом сервера байт-в-байт.
type Order struct {
	Payment PaymentMethod `json:"payment"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Address string        `json:"address"`
	Total   int           `json:"total"`
	Items   []string      `json:"items"`
}

// OrderResult — ответ сервера на успешное оформление.
type OrderResult struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
}
