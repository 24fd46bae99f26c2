package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/mkulima/duka/internal/order/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	invalidStatusResult = ginx.Result{
		Code: errs.InvalidStatus.Code,
		Msg:  errs.InvalidStatus.Msg,
	}
	inconsistentTotalResult = ginx.Result{
		Code: errs.InconsistentTotal.Code,
		Msg:  errs.InconsistentTotal.Msg,
	}
)
