package domain

// PaymentIntent - платёжное намерение внешнего провайдера.
// ClientSecret передаётся клиенту для завершения оплаты;
// смена статуса заказа приходит отдельно (webhook провайдера).
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
