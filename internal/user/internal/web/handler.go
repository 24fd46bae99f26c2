package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/mkulima/duka/internal/user/internal/domain"
	"github.com/mkulima/duka/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

// PublicRoutes 登录走 verification 模块的手机验证码
func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return ginx.Result{}, err
	}
	return ginx.Result{
		Data: Profile{
			Id:            u.Id,
			Nickname:      u.Nickname,
			Avatar:        u.Avatar,
			Phone:         u.Phone,
			PhoneVerified: u.PhoneVerified,
			Region:        u.Address.Region,
			District:      u.Address.District,
			Street:        u.Address.Street,
			PostalCode:    u.Address.PostalCode,
		},
	}, nil
}

type EditReq struct {
	Avatar     string `json:"avatar"`
	Nickname   string `json:"nickname"`
	Region     string `json:"region"`
	District   string `json:"district"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
		Address: domain.Address{
			Region:     req.Region,
			District:   req.District,
			Street:     req.Street,
			PostalCode: req.PostalCode,
		},
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
