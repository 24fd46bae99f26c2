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
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/mkulima/duka/internal/order/internal/domain"
	"github.com/mkulima/duka/internal/order/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/status/list", ginx.BS[ListOrdersByStatusReq](h.ListOrdersByStatus))
	g.POST("/timeline", ginx.BS[OrderTimelineReq](h.RetrieveOrderTimeline))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrder 把购物车快照连同配送与支付选择落为一笔订单。
// 成功返回订单号之后, 客户端才允许清空本地购物车
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.CreateOrder(ctx.Request.Context(), h.toDomain(req, sess.Claims().Uid), req.RequestID)
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, nil
	case errors.Is(err, service.ErrDuplicateRequest):
		return duplicateRequestResult, nil
	case errors.Is(err, service.ErrInconsistentTotal):
		return inconsistentTotalResult, nil
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}
	return ginx.Result{
		Data: CreateOrderResp{OrderSN: order.SN},
	}, nil
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	list, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单列表失败: %w", err)
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

// ListOrdersByStatus 订单页的状态页签, 只返回当前买家的单
func (h *Handler) ListOrdersByStatus(ctx *ginx.Context, req ListOrdersByStatusReq, sess session.Session) (ginx.Result, error) {
	list, total, err := h.svc.ListBuyerOrdersByStatus(ctx.Request.Context(),
		sess.Claims().Uid, domain.Status(req.Status), req.Offset, req.Limit)
	if errors.Is(err, service.ErrInvalidStatus) {
		return invalidStatusResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("按状态查询订单列表失败: %w", err)
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

func (h *Handler) RetrieveOrderTimeline(ctx *ginx.Context, req OrderTimelineReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	return ginx.Result{
		Data: OrderTimelineResp{
			Steps: slice.Map(domain.Timeline(order.Status), func(idx int, src domain.TimelineStep) TimelineStep {
				meta := src.Status.Meta()
				return TimelineStep{
					Status: src.Status.String(),
					State:  string(src.State),
					Meta: StatusMeta{
						Label: meta.Label,
						Color: meta.Color,
						Icon:  meta.Icon,
					},
				}
			}),
		},
	}, nil
}

func (h *Handler) toDomain(req CreateOrderReq, uid int64) domain.Order {
	return domain.Order{
		BuyerID: uid,
		Items: slice.Map(req.Items, func(idx int, src Item) domain.OrderItem {
			return domain.OrderItem{
				ProductID: src.ProductID,
				Name:      src.Name,
				UnitPrice: src.UnitPrice,
				Image:     src.Image,
				Category:  src.Category,
				Supplier:  src.Supplier,
				Quantity:  src.Quantity,
			}
		}),
		Subtotal:       req.Summary.Subtotal,
		Tax:            req.Summary.Tax,
		ShippingCost:   req.Summary.ShippingCost,
		DiscountAmount: req.Summary.DiscountAmount,
		Total:          req.Summary.Total,
		ShippingAddress: domain.Address{
			FullName:   req.ShippingAddress.FullName,
			Street:     req.ShippingAddress.Street,
			District:   req.ShippingAddress.District,
			Region:     req.ShippingAddress.Region,
			PostalCode: req.ShippingAddress.PostalCode,
			Phone:      req.ShippingAddress.Phone,
		},
		PaymentMethod: domain.PaymentMethod{ID: req.PaymentMethod.ID, Name: req.PaymentMethod.Name},
		ShippingMethod: domain.ShippingMethod{
			ID:            req.ShippingMethod.ID,
			Name:          req.ShippingMethod.Name,
			Description:   req.ShippingMethod.Description,
			Price:         req.ShippingMethod.Price,
			EstimatedDays: req.ShippingMethod.EstimatedDays,
			Regions:       req.ShippingMethod.Regions,
		},
		DiscountCode: req.DiscountCode,
	}
}
