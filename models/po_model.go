package models

import "github.com/google/uuid"

// EoiModel is a buyer expression-of-interest attached to a purchase order.
// Read-only on the dashboard.
type EoiModel struct {
	UserId      string  `json:"userId"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	Quantity    float64 `json:"quantity"`
	CreatedAt   string  `json:"createdAt"`
}

type POModel struct {
	PoId           string            `json:"_id"`
	CompanyId      string            `json:"companyId"`
	CropName       string            `json:"cropName"`
	Quantity       float64           `json:"quantity"`
	QuantityUnit   string            `json:"quantityUnit"`
	PricePerUnit   float64           `json:"pricePerUnit"`
	Status         string            `json:"status"`
	Specifications map[string]string `json:"specifications"`
	Terms          map[string]string `json:"terms"`
	ExpiryDate     string            `json:"expiryDate"`
	Eois           []EoiModel        `json:"eois"`
}

func (m *POModel) Id() string {
	if m.PoId == "" {
		m.PoId = uuid.New().String()
	}

	return m.PoId
}
