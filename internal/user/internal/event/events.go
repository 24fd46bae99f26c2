package event

const RegistrationEventName = "user_registration_events"

type RegistrationEvent struct {
	Uid int64 `json:"uid"`
	// Phone 规范化之后的本地手机号
	Phone string `json:"phone"`
}
