package web

type SendCodeReq struct {
	Phone string `json:"phone"`
}

type VerifyCodeReq struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type CooldownReq struct {
	Phone string `json:"phone"`
}

type CooldownResp struct {
	CanResend bool `json:"canResend"`
	// RemainingSeconds 为 0 的时候可以重发
	RemainingSeconds int64 `json:"remainingSeconds"`
}

type Profile struct {
	Id            int64  `json:"id"`
	Nickname      string `json:"nickname"`
	Phone         string `json:"phone"`
	PhoneVerified bool   `json:"phoneVerified"`
}
