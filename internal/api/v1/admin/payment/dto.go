package payment

type CreateConfigInput struct {
	Name          string                 `json:"name" binding:"required"`
	PaymentMethod string                 `json:"payment_method" binding:"required,oneof=epay"`
	Config        map[string]interface{} `json:"config" binding:"required"`
	Enable        bool                   `json:"enable"`
}

type CompleteOrderInput struct {
	OrderID string `json:"order_id" binding:"required"`
}
