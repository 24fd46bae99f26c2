package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/mkulima/duka/internal/cart/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
