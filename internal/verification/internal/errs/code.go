package errs

var (
	SystemError   = ErrorCode{Code: 504001, Msg: "系统错误"}
	InvalidPhone  = ErrorCode{Code: 504002, Msg: "手机号不合法"}
	TooFrequent   = ErrorCode{Code: 504003, Msg: "发送太频繁，稍后再试"}
	InvalidCode   = ErrorCode{Code: 504004, Msg: "验证码格式不对"}
	CodeIncorrect = ErrorCode{Code: 504005, Msg: "验证码不对"}
	CodeExpired   = ErrorCode{Code: 504006, Msg: "验证码已过期"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
