package models

import "fmt"

type CompanyModel struct {
	CompanyId     string   `json:"_id"`
	Name          string   `json:"name"`
	Taluk         string   `json:"taluk"`
	District      string   `json:"district"`
	AddressLine   string   `json:"address"`
	ContactNumber string   `json:"contactNumber"`
	Email         string   `json:"email"`
	Crops         []string `json:"crops"`
}

func (m *CompanyModel) Id() string {
	return m.CompanyId
}

// DisplayName decorates the company name with taluk/district so that two
// branches of the same company are distinguishable in dropdowns.
func (m *CompanyModel) DisplayName() string {
	if m.Taluk != "" && m.District != "" {
		return fmt.Sprintf("%s (%s, %s)", m.Name, m.Taluk, m.District)
	}
	if m.District != "" {
		return fmt.Sprintf("%s (%s)", m.Name, m.District)
	}
	return m.Name
}
