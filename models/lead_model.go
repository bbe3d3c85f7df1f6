package models

import "github.com/google/uuid"

// LeadModel is the aggregator-lead record as the marketplace backend returns
// it from /aggregator-leads.
type LeadModel struct {
	LeadId             string   `json:"_id"`
	UserId             string   `json:"userId"`
	Name               string   `json:"name"`
	PhoneNumber        string   `json:"phoneNumber"`
	CropName           string   `json:"cropName"`
	Capacity           float64  `json:"capacity"`
	CapacityUnit       string   `json:"capacityUnit"`
	Experience         float64  `json:"experience"`
	Frequency          string   `json:"frequency"`
	HasStock           bool     `json:"hasStock"`
	Stock              string   `json:"stock"`
	Radius             float64  `json:"radius"`
	Confidence         float64  `json:"confidence"`
	IsTcCompliant      bool     `json:"isTcCompliant"`
	IsInterestedToWork bool     `json:"isInterestedToWork"`
	InterestsCompanies []string `json:"interestsCompanies"`
	LastInteractedOn   string   `json:"lastInteractedOn"`
	NextAction         string   `json:"nextAction"`
	NextActionDueOn    string   `json:"nextActionDueOn"`
	Notes              string   `json:"notes"`
	Tag                string   `json:"tag"`
	Address            Address  `json:"address"`
	CreatedAt          string   `json:"createdAt"`
}

func (m *LeadModel) Id() string {
	if m.LeadId == "" {
		m.LeadId = uuid.New().String()
	}

	return m.LeadId
}

// LeadRecord is the dashboard-facing shape of a lead: booleans rendered as
// Yes/No, interaction dates as yyyy-mm-dd, address flattened for the table.
type LeadRecord struct {
	LeadId             string   `json:"leadId"`
	UserId             string   `json:"userId"`
	Name               string   `json:"name"`
	PhoneNumber        string   `json:"phoneNumber"`
	CropName           string   `json:"cropName"`
	Capacity           float64  `json:"capacity"`
	CapacityUnit       string   `json:"capacityUnit"`
	Experience         float64  `json:"experience"`
	Frequency          string   `json:"frequency"`
	HasStock           string   `json:"hasStock"`
	Stock              string   `json:"stock"`
	Radius             float64  `json:"radius"`
	Confidence         float64  `json:"confidence"`
	IsTcCompliant      string   `json:"isTcCompliant"`
	IsInterestedToWork string   `json:"isInterestedToWork"`
	InterestsCompanies []string `json:"interestsCompanies"`
	LastInteractedOn   string   `json:"lastInteractedOn"`
	NextAction         string   `json:"nextAction"`
	NextActionDueOn    string   `json:"nextActionDueOn"`
	Notes              string   `json:"notes"`
	Tag                string   `json:"tag"`
	State              string   `json:"state"`
	District           string   `json:"district"`
	Taluk              string   `json:"taluk"`
	Village            string   `json:"village"`
}

type LeadFilters struct {
	Search       string
	CropName     string
	Tag          string
	State        string
	District     string
	Taluk        string
	Village      string
	HasStock     *bool
	TcCompliant  *bool
	PhoneNumbers []string
}

type UserCompanyStatus struct {
	UserId string `json:"userId"`
	Status string `json:"status"`
}

// AddCompanyResponse is returned by /aggregator-leads/add-company-to-users;
// per-user statuses are created, updated or skipped.
type AddCompanyResponse struct {
	Statuses []UserCompanyStatus `json:"statuses"`
}
