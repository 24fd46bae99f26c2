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
	"fmt"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/mkulima/duka/internal/cart/internal/domain"
	"github.com/mkulima/duka/internal/cart/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/detail", ginx.S(h.Detail))
	g.POST("/add", ginx.BS[AddItemReq](h.AddItem))
	g.POST("/remove", ginx.BS[RemoveItemReq](h.RemoveItem))
	g.POST("/quantity", ginx.BS[UpdateQuantityReq](h.UpdateQuantity))
	g.POST("/clear", ginx.S(h.Clear))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.GetCart(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("读取购物车失败: %w", err)
	}
	return ginx.Result{Data: toCartVO(cart)}, nil
}

func (h *Handler) AddItem(ctx *ginx.Context, req AddItemReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.AddItem(ctx.Request.Context(), sess.Claims().Uid, domain.Item{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Image:     req.Image,
		Category:  req.Category,
		Supplier:  req.Supplier,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("加购失败: %w", err)
	}
	return ginx.Result{Data: toCartVO(cart)}, nil
}

func (h *Handler) RemoveItem(ctx *ginx.Context, req RemoveItemReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.RemoveItem(ctx.Request.Context(), sess.Claims().Uid, req.ProductID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("删除购物车行失败: %w", err)
	}
	return ginx.Result{Data: toCartVO(cart)}, nil
}

func (h *Handler) UpdateQuantity(ctx *ginx.Context, req UpdateQuantityReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.UpdateQuantity(ctx.Request.Context(), sess.Claims().Uid, req.ProductID, req.Quantity)
	if err != nil {
		return systemErrorResult, fmt.Errorf("更新数量失败: %w", err)
	}
	return ginx.Result{Data: toCartVO(cart)}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.svc.ClearCart(ctx.Request.Context(), sess.Claims().Uid); err != nil {
		return systemErrorResult, fmt.Errorf("清空购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
