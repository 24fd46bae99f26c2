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

package service

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/mkulima/duka/internal/order/internal/domain"
	"github.com/mkulima/duka/internal/order/internal/event"
	"github.com/mkulima/duka/internal/order/internal/repository"
	"github.com/mkulima/duka/internal/order/internal/repository/cache"
	"github.com/mkulima/duka/internal/pkg/sequencenumber"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnauthenticated   = errors.New("下单必须登录")
	ErrEmptyCart         = errors.New("购物车为空, 不能下单")
	ErrInconsistentTotal = errors.New("订单金额恒等式不成立")
	ErrInvalidStatus     = errors.New("未知的订单状态")
	ErrInvalidTransition = errors.New("非法的订单状态流转")
	ErrDuplicateRequest  = cache.ErrRequestDuplicated
	ErrOrderNotFound     = repository.ErrOrderNotFound
)

type Service interface {
	CreateOrder(ctx context.Context, order domain.Order, requestID string) (domain.Order, error)
	FindOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error)
	ListBuyerOrdersByStatus(ctx context.Context, buyerID int64, status domain.Status, offset, limit int) ([]domain.Order, int64, error)
	ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	ListOrdersByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, sn string, next domain.Status, notes string) error
	SetDelivery(ctx context.Context, sn string, trackingNumber string, estimatedDelivery int64) error
	DeleteOrder(ctx context.Context, sn string) error
}

func NewService(repo repository.OrderRepository,
	snGenerator *sequencenumber.Generator,
	requestIDs cache.RequestIDCache,
	producer event.OrderEventProducer,
) Service {
	return &service{
		repo:        repo,
		snGenerator: snGenerator,
		requestIDs:  requestIDs,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	snGenerator *sequencenumber.Generator
	requestIDs  cache.RequestIDCache
	producer    event.OrderEventProducer
	logger      *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order, requestID string) (domain.Order, error) {
	if order.BuyerID <= 0 {
		return domain.Order{}, ErrUnauthenticated
	}
	if len(order.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	if !order.ConsistentTotal() {
		return domain.Order{}, ErrInconsistentTotal
	}
	if _, err := domain.ParseEstimatedDays(order.ShippingMethod.EstimatedDays); err != nil {
		return domain.Order{}, errors.Wrap(err, "配送时效非法")
	}
	if requestID == "" {
		return domain.Order{}, errors.Wrap(ErrDuplicateRequest, "请求ID为空")
	}
	if err := s.requestIDs.Claim(ctx, requestID); err != nil {
		return domain.Order{}, err
	}

	sn, err := s.snGenerator.Generate(order.BuyerID)
	if err != nil {
		return domain.Order{}, errors.Wrap(err, "生成订单号失败")
	}
	order.SN = sn
	order.Status = domain.StatusPending
	order.Priority = domain.PriorityNormal
	// 预计送达时间不在创建时落库, 发货时由运营补录
	order.EstimatedDelivery = 0
	order.CustomerName = order.ShippingAddress.FullName
	order.CustomerPhone = order.ShippingAddress.Phone

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		// 落库失败归还请求ID, 客户端用同一个ID重试才走得通
		if er := s.requestIDs.Release(ctx, requestID); er != nil {
			s.logger.Error("归还下单请求ID失败",
				elog.FieldErr(er),
				elog.String("requestID", requestID))
		}
		return domain.Order{}, err
	}

	evt := event.OrderCreatedEvent{
		SN:        created.SN,
		BuyerID:   created.BuyerID,
		Total:     created.Total,
		ItemCount: int64(len(created.Items)),
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		// 事件丢失不影响下单结果
		s.logger.Error("发送订单创建事件失败",
			elog.FieldErr(er),
			elog.String("sn", created.SN))
	}
	return created, nil
}

func (s *service) FindOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	return s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrdersByBuyerID(ctx, offset, limit, buyerID)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrdersByBuyerID(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

// ListBuyerOrdersByStatus 买家订单页按状态页签过滤, 只看自己的单
func (s *service) ListBuyerOrdersByStatus(ctx context.Context, buyerID int64, status domain.Status, offset, limit int) ([]domain.Order, int64, error) {
	if !status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListBuyerOrdersByStatus(ctx, buyerID, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalBuyerOrdersByStatus(ctx, buyerID, status)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrders(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListOrdersByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Order, int64, error) {
	if !status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrdersByStatus(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrdersByStatus(ctx, status)
		return err
	})
	return os, total, eg.Wait()
}

// UpdateStatus 合法性在这一层强制校验, 不依赖调用方只发合法请求
func (s *service) UpdateStatus(ctx context.Context, sn string, next domain.Status, notes string) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(next) {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", order.Status, next)
	}
	err = s.repo.UpdateOrderStatus(ctx, order.ID, order.Status, next, notes)
	if errors.Is(err, repository.ErrStatusConflict) {
		// 读写之间被并发改掉, 按当前状态重新校验才知道合不合法
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", order.Status, next)
	}
	return err
}

func (s *service) SetDelivery(ctx context.Context, sn string, trackingNumber string, estimatedDelivery int64) error {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return err
	}
	return s.repo.UpdateOrderDelivery(ctx, order.ID, trackingNumber, estimatedDelivery)
}

func (s *service) DeleteOrder(ctx context.Context, sn string) error {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return err
	}
	return s.repo.DeleteOrder(ctx, order.ID)
}
