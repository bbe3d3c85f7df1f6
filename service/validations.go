package service

import (
	"errors"
	"strings"

	"github.com/Kotlang/opsGo/models"
)

// all input validations will be added here.

// ValidateLeadRecord checks required lead fields before any network call and
// reports every missing field in one joined message.
func ValidateLeadRecord(record *models.LeadRecord) error {
	var missing []string

	if strings.TrimSpace(record.Name) == "" {
		missing = append(missing, "Name")
	}
	if strings.TrimSpace(record.PhoneNumber) == "" {
		missing = append(missing, "Phone number")
	}
	if strings.TrimSpace(record.CropName) == "" {
		missing = append(missing, "Crop")
	}

	if len(missing) > 0 {
		return errors.New("Missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

func ValidatePO(po *models.POModel) error {
	var missing []string

	if strings.TrimSpace(po.CompanyId) == "" {
		missing = append(missing, "Company")
	}
	if strings.TrimSpace(po.CropName) == "" {
		missing = append(missing, "Crop")
	}
	if po.Quantity <= 0 {
		missing = append(missing, "Quantity")
	}
	if po.PricePerUnit <= 0 {
		missing = append(missing, "Price")
	}

	if len(missing) > 0 {
		return errors.New("Missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}
