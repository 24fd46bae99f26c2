// Copyright 2025 mkulima
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/mkulima/duka/internal/verification/internal/service"
	"github.com/pkg/errors"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
	// 管理员手机号白名单
	admins []string
}

func NewHandler(svc service.Service, admins []string) *Handler {
	return &Handler{svc: svc, admins: admins}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/phone")
	g.POST("/code/send", ginx.B[SendCodeReq](h.SendCode))
	g.POST("/code/verify", ginx.B[VerifyCodeReq](h.VerifyCode))
	g.POST("/code/cooldown", ginx.B[CooldownReq](h.Cooldown))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) SendCode(ctx *ginx.Context, req SendCodeReq) (ginx.Result, error) {
	err := h.svc.Send(ctx.Request.Context(), req.Phone)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvalidPhone):
		return invalidPhoneResult, err
	case errors.Is(err, service.ErrTooFrequent):
		return tooFrequentResult, err
	default:
		return systemErrorResult, err
	}
}

// VerifyCode 验证通过即登录, 没注册过的手机号会自动注册
func (h *Handler) VerifyCode(ctx *ginx.Context, req VerifyCodeReq) (ginx.Result, error) {
	u, err := h.svc.Verify(ctx.Request.Context(), req.Phone, req.Code)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidPhone):
		return invalidPhoneResult, err
	case errors.Is(err, service.ErrInvalidCode):
		return invalidCodeResult, err
	case errors.Is(err, service.ErrCodeIncorrect):
		return codeIncorrectResult, err
	case errors.Is(err, service.ErrCodeExpired):
		return codeExpiredResult, err
	default:
		return systemErrorResult, err
	}
	admin := slice.Contains(h.admins, u.Phone)
	_, err = session.NewSessionBuilder(ctx, u.Id).
		// 设置是否 admin 的标记位，后续引入权限控制再来改造
		SetJwtData(map[string]string{
			"admin": strconv.FormatBool(admin),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:            u.Id,
			Nickname:      u.Nickname,
			Phone:         u.Phone,
			PhoneVerified: u.PhoneVerified,
		},
	}, nil
}

func (h *Handler) Cooldown(ctx *ginx.Context, req CooldownReq) (ginx.Result, error) {
	remaining, err := h.svc.CooldownRemaining(ctx.Request.Context(), req.Phone)
	switch {
	case errors.Is(err, service.ErrInvalidPhone):
		return invalidPhoneResult, err
	case err != nil:
		return systemErrorResult, err
	}
	secs := int64(remaining.Seconds())
	if remaining > 0 && secs == 0 {
		// 不满一秒也算一秒, 免得前端看到 0 又立刻点
		secs = 1
	}
	return ginx.Result{
		Data: CooldownResp{
			CanResend:        remaining == 0,
			RemainingSeconds: secs,
		},
	}, nil
}
