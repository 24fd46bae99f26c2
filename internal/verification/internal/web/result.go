package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/mkulima/duka/internal/verification/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidPhoneResult = ginx.Result{
		Code: errs.InvalidPhone.Code,
		Msg:  errs.InvalidPhone.Msg,
	}
	tooFrequentResult = ginx.Result{
		Code: errs.TooFrequent.Code,
		Msg:  errs.TooFrequent.Msg,
	}
	invalidCodeResult = ginx.Result{
		Code: errs.InvalidCode.Code,
		Msg:  errs.InvalidCode.Msg,
	}
	codeIncorrectResult = ginx.Result{
		Code: errs.CodeIncorrect.Code,
		Msg:  errs.CodeIncorrect.Msg,
	}
	codeExpiredResult = ginx.Result{
		Code: errs.CodeExpired.Code,
		Msg:  errs.CodeExpired.Msg,
	}
)
