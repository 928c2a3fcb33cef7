package domain

// Field — имя поля формы, к которому привязана ошибка валидации.
type Field string

const (
	FieldAddress Field = "address"
	FieldPayment Field = "payment"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
)

// fieldOrder — фиксированный порядок полей для сводного сообщения.
// Ошибка адреса перекрывает ошибку оплаты, email — телефон.
var fieldOrder = []Field{FieldAddress, FieldPayment, FieldEmail, FieldPhone}

// ValidationErrors — ошибки валидации по полям.
// Пустая map эквивалентна «форма валидна». Пересобирается целиком
// при каждом изменении поля, без точечных правок.
type ValidationErrors map[Field]string

// Valid — нет ни одной ошибки.
func (e ValidationErrors) Valid() bool { return len(e) == 0 }

// Clone — независимая копия map ошибок.
func (e ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(e))
	for f, msg := range e {
		out[f] = msg
	}
	return out
}

// First — первая ошибка в фиксированном порядке полей.
// Именно она показывается пользователю в сводной строке формы.
func (e ValidationErrors) First() string {
	for _, f := range fieldOrder {
		if msg, ok := e[f]; ok {
			return msg
		}
	}
	return ""
}
