package models

type Location struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

type Address struct {
	State    string `json:"state"`
	District string `json:"district"`
	Taluk    string `json:"taluk"`
	Village  string `json:"village"`
}

func (a Address) IsEmpty() bool {
	return a.State == "" && a.District == "" && a.Taluk == "" && a.Village == ""
}

// MetaEntry is one key/value pair of the generic meta array the backend keeps
// on a user. Buyer flags like isActive live here.
type MetaEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type UserModel struct {
	UserId      string      `json:"_id"`
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phoneNumber"`
	UserType    string      `json:"userType"`
	BuyerType   string      `json:"buyerType"`
	IsVerified  bool        `json:"isVerified"`
	Address     Address     `json:"address"`
	Location    Location    `json:"location"`
	Meta        []MetaEntry `json:"meta"`
	CreatedOn   int64       `json:"createdOn,omitempty"`
}

func (m *UserModel) Id() string {
	return m.UserId
}

// MetaValue returns the value for key or empty string.
func (m *UserModel) MetaValue(key string) string {
	for _, entry := range m.Meta {
		if entry.Key == key {
			return entry.Value
		}
	}
	return ""
}

// SetMetaValue upserts key in the meta array, preserving every other entry.
func (m *UserModel) SetMetaValue(key, value string) {
	for i, entry := range m.Meta {
		if entry.Key == key {
			m.Meta[i].Value = value
			return
		}
	}
	m.Meta = append(m.Meta, MetaEntry{Key: key, Value: value})
}
