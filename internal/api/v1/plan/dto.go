package plan

import (
	"encoding/json"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

type PlanResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Credits      int      `json:"credits"`
	Price        float64  `json:"price"`
	DurationDays int      `json:"duration_days"`
	Features     []string `json:"features"`
	IsActive     bool     `json:"is_active"`
}

type PurchaseInput struct {
	PaymentUUID    string `json:"payment_uuid" binding:"required"`
	PaymentChannel string `json:"payment_channel"`
	ReturnURL      string `json:"return_url"`
}

type PurchaseResponse struct {
	OrderID string  `json:"order_id"`
	Credits int     `json:"credits"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
	PayURL  string  `json:"pay_url"`
}

func toPlanResponse(p *models.Plan) PlanResponse {
	var features []string
	if len(p.Features) > 0 {
		json.Unmarshal(p.Features, &features)
	}
	return PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		Credits:      p.Credits,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		Features:     features,
		IsActive:     p.IsActive,
	}
}
