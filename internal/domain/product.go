package domain

// Product — товар каталога. Неизменяем после загрузки из API.
// Цена в синапсах; nil означает «бесценный» товар, который нельзя купить.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       *int   `json:"price"`
	Image       string `json:"image"`
}

// ForSale — можно ли положить товар в корзину.
func (p Product) ForSale() bool { return p.Price != nil }

// CartSnapshot — производное, read-only представление корзины.
// Total пересчитывается при каждом построении и нигде не хранится отдельно.
type CartSnapshot struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
}

// ItemIDs — идентификаторы товаров снапшота (для сборки заказа).
func (s CartSnapshot) ItemIDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		ids = append(ids, it.ID)
	}
	return ids
}

// SumTotal — единственное место, где считается сумма корзины:
// складываются только товары с ненулевой ценой.
func SumTotal(items []Product) int {
	total := 0
	for _, it := range items {
		if it.Price != nil {
			total += *it.Price
		}
	}
	return total
}
