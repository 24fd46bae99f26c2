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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/mkulima/duka/internal/order/internal/domain"
	"github.com/mkulima/duka/internal/order/internal/service"
)

// AdminHandler 挂在独立的运营端服务上, 买家端永远不会触发状态流转
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/status/list", ginx.B[ListOrdersByStatusReq](h.ListByStatus))
	g.POST("/status/update", ginx.B[UpdateStatusReq](h.UpdateStatus))
	g.POST("/delivery", ginx.B[SetDeliveryReq](h.SetDelivery))
	g.POST("/delete", ginx.B[DeleteOrderReq](h.Delete))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

type ListOrdersByStatusReq struct {
	Status string `json:"status"`
	Offset int    `json:"offset,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type UpdateStatusReq struct {
	OrderSN string `json:"sn"`
	Status  string `json:"status"`
	Notes   string `json:"notes,omitempty"`
}

type SetDeliveryReq struct {
	OrderSN           string `json:"sn"`
	TrackingNumber    string `json:"trackingNumber"`
	EstimatedDelivery int64  `json:"estimatedDelivery"`
}

type DeleteOrderReq struct {
	OrderSN string `json:"sn"`
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	list, total, err := h.svc.ListAllOrders(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(list, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) ListByStatus(ctx *ginx.Context, req ListOrdersByStatusReq) (ginx.Result, error) {
	list, total, err := h.svc.ListOrdersByStatus(ctx.Request.Context(),
		domain.Status(req.Status), req.Offset, req.Limit)
	if errors.Is(err, service.ErrInvalidStatus) {
		return invalidStatusResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(list, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx.Request.Context(), req.OrderSN, domain.Status(req.Status), req.Notes)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, nil
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, nil
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, nil
	case err != nil:
		return systemErrorResult, fmt.Errorf("更新订单状态失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) SetDelivery(ctx *ginx.Context, req SetDeliveryReq) (ginx.Result, error) {
	err := h.svc.SetDelivery(ctx.Request.Context(), req.OrderSN, req.TrackingNumber, req.EstimatedDelivery)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("补录配送信息失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteOrderReq) (ginx.Result, error) {
	err := h.svc.DeleteOrder(ctx.Request.Context(), req.OrderSN)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("删除订单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
