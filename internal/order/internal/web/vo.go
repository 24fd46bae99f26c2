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
	"github.com/ecodeclub/ekit/slice"
	"github.com/mkulima/duka/internal/order/internal/domain"
)

// CreateOrderReq 创建订单请求, Items 是客户端购物车的快照
type CreateOrderReq struct {
	RequestID       string         `json:"requestID"` // 客户端生成, 用于下单去重
	Items           []Item         `json:"items"`
	PaymentMethod   Payment        `json:"paymentMethod"`
	ShippingAddress Address        `json:"shippingAddress"`
	ShippingMethod  Shipping       `json:"shippingMethod"`
	Summary         Summary        `json:"summary"`
	DiscountCode    string         `json:"discountCode,omitempty"`
}

type Summary struct {
	Subtotal       int64 `json:"subtotal"`
	Tax            int64 `json:"tax"`
	ShippingCost   int64 `json:"shippingCost"`
	DiscountAmount int64 `json:"discountAmount"`
	Total          int64 `json:"total"`
}

type CreateOrderResp struct {
	OrderSN string `json:"orderSN"`
}

type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Supplier  string `json:"supplier,omitempty"`
	Quantity  int64  `json:"quantity"`
}

type Payment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Address struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	District   string `json:"district"`
	Region     string `json:"region"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

type Shipping struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	EstimatedDays string   `json:"estimatedDays"`
	Regions       []string `json:"regions,omitempty"`
}

// RetrieveOrderDetailReq 获取订单详情
type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

// ListOrdersReq 分页查询订单
type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

// OrderTimelineReq 获取订单进度时间线
type OrderTimelineReq struct {
	OrderSN string `json:"sn"`
}

type OrderTimelineResp struct {
	Steps []TimelineStep `json:"steps"`
}

type TimelineStep struct {
	Status string     `json:"status"`
	State  string     `json:"state"`
	Meta   StatusMeta `json:"meta"`
}

// StatusMeta 状态展示元数据, 由状态机统一推导, 前端不再各自拼表
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type Order struct {
	SN                string     `json:"sn"`
	Status            string     `json:"status"`
	StatusMeta        StatusMeta `json:"statusMeta"`
	Items             []Item     `json:"items"`
	Subtotal          int64      `json:"subtotal"`
	Tax               int64      `json:"tax"`
	ShippingCost      int64      `json:"shippingCost"`
	DiscountAmount    int64      `json:"discountAmount"`
	Total             int64      `json:"total"`
	ShippingAddress   Address    `json:"shippingAddress"`
	PaymentMethod     Payment    `json:"paymentMethod"`
	ShippingMethod    Shipping   `json:"shippingMethod"`
	DiscountCode      string     `json:"discountCode,omitempty"`
	TrackingNumber    string     `json:"trackingNumber,omitempty"`
	EstimatedDelivery int64      `json:"estimatedDelivery,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	Priority          string     `json:"priority"`
	CustomerName      string     `json:"customerName"`
	CustomerPhone     string     `json:"customerPhone"`
	Ctime             int64      `json:"ctime"`
	Utime             int64      `json:"utime"`
}

func toOrderVO(src domain.Order) Order {
	meta := src.Status.Meta()
	return Order{
		SN:     src.SN,
		Status: src.Status.String(),
		StatusMeta: StatusMeta{
			Label: meta.Label,
			Color: meta.Color,
			Icon:  meta.Icon,
		},
		Items: slice.Map(src.Items, func(idx int, it domain.OrderItem) Item {
			return Item{
				ProductID: it.ProductID,
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Image:     it.Image,
				Category:  it.Category,
				Supplier:  it.Supplier,
				Quantity:  it.Quantity,
			}
		}),
		Subtotal:       src.Subtotal,
		Tax:            src.Tax,
		ShippingCost:   src.ShippingCost,
		DiscountAmount: src.DiscountAmount,
		Total:          src.Total,
		ShippingAddress: Address{
			FullName:   src.ShippingAddress.FullName,
			Street:     src.ShippingAddress.Street,
			District:   src.ShippingAddress.District,
			Region:     src.ShippingAddress.Region,
			PostalCode: src.ShippingAddress.PostalCode,
			Phone:      src.ShippingAddress.Phone,
		},
		PaymentMethod: Payment{ID: src.PaymentMethod.ID, Name: src.PaymentMethod.Name},
		ShippingMethod: Shipping{
			ID:            src.ShippingMethod.ID,
			Name:          src.ShippingMethod.Name,
			Description:   src.ShippingMethod.Description,
			Price:         src.ShippingMethod.Price,
			EstimatedDays: src.ShippingMethod.EstimatedDays,
			Regions:       src.ShippingMethod.Regions,
		},
		DiscountCode:      src.DiscountCode,
		TrackingNumber:    src.TrackingNumber,
		EstimatedDelivery: src.EstimatedDelivery,
		Notes:             src.Notes,
		Priority:          string(src.Priority),
		CustomerName:      src.CustomerName,
		CustomerPhone:     src.CustomerPhone,
		Ctime:             src.Ctime,
		Utime:             src.Utime,
	}
}
