// Пакет phonefmt — нормализация российских телефонных номеров
// в фиксированный формат показа: +7 999 000 12 34.
package phonefmt

import "strings"

// maxDigits — страна + 10 значащих цифр.
const maxDigits = 11

// Digits — только цифры номера: ведущая 8 канонизируется в 7,
// длина ограничивается 11 цифрами.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "8") {
		digits = "7" + digits[1:]
	}
	if len(digits) > maxDigits {
		digits = digits[:maxDigits]
	}
	return digits
}

// Format — привести произвольный ввод к групповому формату
// «+7 AAA BBB CC DD». Идемпотентна: Format(Format(s)) == Format(s).
func Format(raw string) string {
	digits := Digits(raw)
	if digits == "" {
		return "+7"
	}

	var b strings.Builder
	b.WriteString("+7")
	if len(digits) > 1 {
		b.WriteString(" " + digits[1:min(4, len(digits))])
	}
	if len(digits) > 4 {
		b.WriteString(" " + digits[4:min(7, len(digits))])
	}
	if len(digits) > 7 {
		b.WriteString(" " + digits[7:min(9, len(digits))])
	}
	if len(digits) > 9 {
		b.WriteString(" " + digits[9:])
	}
	return b.String()
}

// Complete — номер содержит все 11 цифр.
func Complete(raw string) bool {
	return len(Digits(raw)) == maxDigits
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
