package errs

var (
	SystemError       = ErrorCode{Code: 502001, Msg: "系统错误"}
	OrderNotFound     = ErrorCode{Code: 502002, Msg: "订单不存在"}
	EmptyCart         = ErrorCode{Code: 502003, Msg: "购物车为空"}
	DuplicateRequest  = ErrorCode{Code: 502004, Msg: "重复的下单请求"}
	InvalidTransition = ErrorCode{Code: 502005, Msg: "非法的订单状态流转"}
	InvalidStatus     = ErrorCode{Code: 502006, Msg: "未知的订单状态"}
	InconsistentTotal = ErrorCode{Code: 502007, Msg: "订单金额校验失败"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
