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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/mkulima/duka/internal/order/internal/domain"
	"github.com/mkulima/duka/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound  = errors.New("订单不存在")
	ErrStatusConflict = dao.ErrStatusConflict
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrdersByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, error)
	TotalOrdersByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error)
	TotalOrders(ctx context.Context) (int64, error)
	ListOrdersByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Order, error)
	TotalOrdersByStatus(ctx context.Context, status domain.Status) (int64, error)
	ListBuyerOrdersByStatus(ctx context.Context, buyerID int64, status domain.Status, offset, limit int) ([]domain.Order, error)
	TotalBuyerOrdersByStatus(ctx context.Context, buyerID int64, status domain.Status) (int64, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, from, to domain.Status, notes string) error
	UpdateOrderDelivery(ctx context.Context, orderID int64, trackingNumber string, estimatedDelivery int64) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.Create(ctx, o.toEntity(order))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindBySN(ctx, sn)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order), nil
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindBySNAndBuyerID(ctx, sn, buyerID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order), nil
}

func (o *orderRepository) ListOrdersByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, error) {
	os, err := o.d.List(ctx, offset, limit, buyerID)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), nil
}

func (o *orderRepository) TotalOrdersByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	return o.d.Count(ctx, buyerID)
}

func (o *orderRepository) ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), nil
}

func (o *orderRepository) TotalOrders(ctx context.Context) (int64, error) {
	return o.d.CountAll(ctx)
}

func (o *orderRepository) ListOrdersByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.ListByStatus(ctx, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), nil
}

func (o *orderRepository) TotalOrdersByStatus(ctx context.Context, status domain.Status) (int64, error) {
	return o.d.CountByStatus(ctx, status.String())
}

func (o *orderRepository) ListBuyerOrdersByStatus(ctx context.Context, buyerID int64, status domain.Status, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.ListByBuyerAndStatus(ctx, buyerID, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), nil
}

func (o *orderRepository) TotalBuyerOrdersByStatus(ctx context.Context, buyerID int64, status domain.Status) (int64, error) {
	return o.d.CountByBuyerAndStatus(ctx, buyerID, status.String())
}

func (o *orderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, from, to domain.Status, notes string) error {
	return o.d.UpdateStatus(ctx, orderID, from.String(), to.String(), notes)
}

func (o *orderRepository) UpdateOrderDelivery(ctx context.Context, orderID int64, trackingNumber string, estimatedDelivery int64) error {
	return o.d.UpdateDelivery(ctx, orderID, trackingNumber, estimatedDelivery)
}

func (o *orderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	return o.d.Delete(ctx, orderID)
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:      order.ID,
		SN:      order.SN,
		BuyerId: order.BuyerID,
		Status:  order.Status.String(),
		Items: sqlx.JsonColumn[[]dao.Item]{
			Val: slice.Map(order.Items, func(idx int, src domain.OrderItem) dao.Item {
				return dao.Item{
					ProductID: src.ProductID,
					Name:      src.Name,
					UnitPrice: src.UnitPrice,
					Image:     src.Image,
					Category:  src.Category,
					Supplier:  src.Supplier,
					Quantity:  src.Quantity,
				}
			}),
			Valid: true,
		},
		Subtotal:       order.Subtotal,
		Tax:            order.Tax,
		ShippingCost:   order.ShippingCost,
		DiscountAmount: order.DiscountAmount,
		Total:          order.Total,
		ShippingAddress: sqlx.JsonColumn[dao.Address]{
			Val: dao.Address{
				FullName:   order.ShippingAddress.FullName,
				Street:     order.ShippingAddress.Street,
				District:   order.ShippingAddress.District,
				Region:     order.ShippingAddress.Region,
				PostalCode: order.ShippingAddress.PostalCode,
				Phone:      order.ShippingAddress.Phone,
			},
			Valid: true,
		},
		PaymentMethod: sqlx.JsonColumn[dao.Payment]{
			Val:   dao.Payment{ID: order.PaymentMethod.ID, Name: order.PaymentMethod.Name},
			Valid: true,
		},
		ShippingMethod: sqlx.JsonColumn[dao.Shipping]{
			Val: dao.Shipping{
				ID:            order.ShippingMethod.ID,
				Name:          order.ShippingMethod.Name,
				Description:   order.ShippingMethod.Description,
				Price:         order.ShippingMethod.Price,
				EstimatedDays: order.ShippingMethod.EstimatedDays,
				Regions:       order.ShippingMethod.Regions,
			},
			Valid: true,
		},
		DiscountCode:      order.DiscountCode,
		TrackingNumber:    order.TrackingNumber,
		EstimatedDelivery: order.EstimatedDelivery,
		Notes:             order.Notes,
		Priority:          string(order.Priority),
		CustomerName:      order.CustomerName,
		CustomerPhone:     order.CustomerPhone,
	}
}

func (o *orderRepository) toDomain(order dao.Order) domain.Order {
	return domain.Order{
		ID:      order.Id,
		SN:      order.SN,
		BuyerID: order.BuyerId,
		Status:  domain.Status(order.Status),
		Items: slice.Map(order.Items.Val, func(idx int, src dao.Item) domain.OrderItem {
			return domain.OrderItem{
				OrderID:   order.Id,
				ProductID: src.ProductID,
				Name:      src.Name,
				UnitPrice: src.UnitPrice,
				Image:     src.Image,
				Category:  src.Category,
				Supplier:  src.Supplier,
				Quantity:  src.Quantity,
			}
		}),
		Subtotal:       order.Subtotal,
		Tax:            order.Tax,
		ShippingCost:   order.ShippingCost,
		DiscountAmount: order.DiscountAmount,
		Total:          order.Total,
		ShippingAddress: domain.Address{
			FullName:   order.ShippingAddress.Val.FullName,
			Street:     order.ShippingAddress.Val.Street,
			District:   order.ShippingAddress.Val.District,
			Region:     order.ShippingAddress.Val.Region,
			PostalCode: order.ShippingAddress.Val.PostalCode,
			Phone:      order.ShippingAddress.Val.Phone,
		},
		PaymentMethod: domain.PaymentMethod{
			ID:   order.PaymentMethod.Val.ID,
			Name: order.PaymentMethod.Val.Name,
		},
		ShippingMethod: domain.ShippingMethod{
			ID:            order.ShippingMethod.Val.ID,
			Name:          order.ShippingMethod.Val.Name,
			Description:   order.ShippingMethod.Val.Description,
			Price:         order.ShippingMethod.Val.Price,
			EstimatedDays: order.ShippingMethod.Val.EstimatedDays,
			Regions:       order.ShippingMethod.Val.Regions,
		},
		DiscountCode:      order.DiscountCode,
		TrackingNumber:    order.TrackingNumber,
		EstimatedDelivery: order.EstimatedDelivery,
		Notes:             order.Notes,
		Priority:          domain.Priority(order.Priority),
		CustomerName:      order.CustomerName,
		CustomerPhone:     order.CustomerPhone,
		Ctime:             order.Ctime,
		Utime:             order.Utime,
	}
}
