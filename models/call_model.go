package models

type CallModel struct {
	CallId      string `json:"_id"`
	UserId      string `json:"userId"`
	CompanyId   string `json:"companyId"`
	CallerName  string `json:"callerName"`
	PhoneNumber string `json:"phoneNumber"`
	DurationSec int64  `json:"durationSec"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

func (m *CallModel) Id() string {
	return m.CallId
}
