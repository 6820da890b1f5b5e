package payment

type PaymentMethodResponse struct {
	UUID          string `json:"uuid"`
	Name          string `json:"name"`
	PaymentMethod string `json:"payment_method"`
}
