package web

type Profile struct {
	Id            int64  `json:"id"`
	Nickname      string `json:"nickname"`
	Avatar        string `json:"avatar"`
	Phone         string `json:"phone"`
	PhoneVerified bool   `json:"phoneVerified"`
	Region        string `json:"region"`
	District      string `json:"district"`
	Street        string `json:"street"`
	PostalCode    string `json:"postalCode"`
}
