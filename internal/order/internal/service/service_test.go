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
	"strings"
	"testing"
	"time"

	"github.com/mkulima/duka/internal/order/internal/domain"
	"github.com/mkulima/duka/internal/order/internal/event"
	"github.com/mkulima/duka/internal/order/internal/repository"
	"github.com/mkulima/duka/internal/order/internal/repository/cache"
	"github.com/mkulima/duka/internal/pkg/sequencenumber"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(repo repository.OrderRepository) (Service, *fakeProducer) {
	producer := &fakeProducer{}
	sng := sequencenumber.NewGeneratorWith(
		func(_ time.Time) int64 { return 1700000000000 },
		func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })
	return NewService(repo, sng, newFakeRequestIDs(), producer), producer
}

func validOrder() domain.Order {
	return domain.Order{
		BuyerID: 42,
		Items: []domain.OrderItem{
			{ProductID: "maize-25kg", Name: "Maize Seed 25kg", UnitPrice: 100000, Quantity: 2},
			{ProductID: "hoe-01", Name: "Hand Hoe", UnitPrice: 50000, Quantity: 1},
		},
		Subtotal:       250000,
		Tax:            45000,
		ShippingCost:   5000,
		DiscountAmount: 10000,
		Total:          290000,
		ShippingAddress: domain.Address{
			FullName: "Asha Mdee",
			Street:   "Uhuru Street 14",
			District: "Ilala",
			Region:   "Dar es Salaam",
			Phone:    "+255712345678",
		},
		PaymentMethod:  domain.PaymentMethod{ID: "cod", Name: "Cash on Delivery"},
		ShippingMethod: domain.ShippingMethod{ID: "standard", Name: "Standard", EstimatedDays: "3-5 days", Price: 5000},
	}
}

func TestService_CreateOrder(t *testing.T) {
	t.Run("下单成功", func(t *testing.T) {
		repo := newFakeRepo()
		svc, producer := newTestService(repo)

		created, err := svc.CreateOrder(context.Background(), validOrder(), "req-1")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(created.SN, "ORD-"))
		assert.Equal(t, domain.StatusPending, created.Status)
		assert.Equal(t, domain.PriorityNormal, created.Priority)
		// 预计送达时间创建时不落库
		assert.Zero(t, created.EstimatedDelivery)
		// 收货人信息从地址快照复制
		assert.Equal(t, "Asha Mdee", created.CustomerName)
		assert.Equal(t, "+255712345678", created.CustomerPhone)
		require.Len(t, producer.events, 1)
		assert.Equal(t, created.SN, producer.events[0].SN)
		assert.Equal(t, int64(290000), producer.events[0].Total)
	})

	t.Run("未登录拒绝", func(t *testing.T) {
		repo := newFakeRepo()
		svc, _ := newTestService(repo)
		o := validOrder()
		o.BuyerID = 0
		_, err := svc.CreateOrder(context.Background(), o, "req-1")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("空购物车拒绝", func(t *testing.T) {
		repo := newFakeRepo()
		svc, _ := newTestService(repo)
		o := validOrder()
		o.Items = nil
		_, err := svc.CreateOrder(context.Background(), o, "req-1")
		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Zero(t, repo.created)
	})

	t.Run("金额恒等式不成立拒绝", func(t *testing.T) {
		repo := newFakeRepo()
		svc, _ := newTestService(repo)
		o := validOrder()
		o.Total = 290001
		_, err := svc.CreateOrder(context.Background(), o, "req-1")
		assert.ErrorIs(t, err, ErrInconsistentTotal)
	})

	t.Run("配送时效非法拒绝", func(t *testing.T) {
		repo := newFakeRepo()
		svc, _ := newTestService(repo)
		o := validOrder()
		o.ShippingMethod.EstimatedDays = "soon"
		_, err := svc.CreateOrder(context.Background(), o, "req-1")
		assert.Error(t, err)
		assert.Zero(t, repo.created)
	})

	t.Run("重复请求ID只成功一次", func(t *testing.T) {
		repo := newFakeRepo()
		svc, _ := newTestService(repo)
		_, err := svc.CreateOrder(context.Background(), validOrder(), "req-dup")
		require.NoError(t, err)
		_, err = svc.CreateOrder(context.Background(), validOrder(), "req-dup")
		assert.ErrorIs(t, err, ErrDuplicateRequest)
		assert.Equal(t, 1, repo.created)
	})

	t.Run("请求ID为空拒绝", func(t *testing.T) {
		repo := newFakeRepo()
		svc, _ := newTestService(repo)
		_, err := svc.CreateOrder(context.Background(), validOrder(), "")
		assert.ErrorIs(t, err, ErrDuplicateRequest)
	})

	t.Run("落库失败后同一请求ID可以重试", func(t *testing.T) {
		repo := newFakeRepo()
		repo.failCreates = 1
		svc, _ := newTestService(repo)

		_, err := svc.CreateOrder(context.Background(), validOrder(), "req-retry")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicateRequest)

		created, err := svc.CreateOrder(context.Background(), validOrder(), "req-retry")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(created.SN, "ORD-"))
		assert.Equal(t, 1, repo.created)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	newWithOrder := func(t *testing.T, status domain.Status) (Service, *fakeRepo, string) {
		repo := newFakeRepo()
		svc, _ := newTestService(repo)
		created, err := svc.CreateOrder(context.Background(), validOrder(), "req-1")
		require.NoError(t, err)
		if status != domain.StatusPending {
			repo.setStatus(created.SN, status)
		}
		return svc, repo, created.SN
	}

	testCases := []struct {
		name    string
		from    domain.Status
		to      domain.Status
		wantErr error
	}{
		{name: "待确认到已确认", from: domain.StatusPending, to: domain.StatusConfirmed},
		{name: "已发货到已送达", from: domain.StatusShipped, to: domain.StatusDelivered},
		{name: "备货中取消", from: domain.StatusProcessing, to: domain.StatusCancelled},
		{name: "跳步拒绝", from: domain.StatusPending, to: domain.StatusShipped, wantErr: ErrInvalidTransition},
		{name: "已送达终态拒绝", from: domain.StatusDelivered, to: domain.StatusCancelled, wantErr: ErrInvalidTransition},
		{name: "已取消终态拒绝", from: domain.StatusCancelled, to: domain.StatusConfirmed, wantErr: ErrInvalidTransition},
		{name: "未知状态拒绝", from: domain.StatusPending, to: domain.Status("refunded"), wantErr: ErrInvalidStatus},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, sn := newWithOrder(t, tc.from)
			err := svc.UpdateStatus(context.Background(), sn, tc.to, "")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.from, repo.status(sn))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, repo.status(sn))
		})
	}

	t.Run("订单不存在", func(t *testing.T) {
		svc, _ := newTestService(newFakeRepo())
		err := svc.UpdateStatus(context.Background(), "ORD-missing", domain.StatusConfirmed, "")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("并发写不回退终态", func(t *testing.T) {
		repo := newFakeRepo()
		svc, _ := newTestService(repo)
		created, err := svc.CreateOrder(context.Background(), validOrder(), "req-1")
		require.NoError(t, err)
		// 实际状态已经是已取消, 但本次请求读到的还是旧的已发货
		repo.setStatus(created.SN, domain.StatusCancelled)
		repo.staleRead = domain.StatusShipped

		err = svc.UpdateStatus(context.Background(), created.SN, domain.StatusDelivered, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, domain.StatusCancelled, repo.status(created.SN))
	})
}

func TestService_ListBuyerOrdersByStatus(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)
	first, err := svc.CreateOrder(context.Background(), validOrder(), "req-1")
	require.NoError(t, err)
	second, err := svc.CreateOrder(context.Background(), validOrder(), "req-2")
	require.NoError(t, err)
	other := validOrder()
	other.BuyerID = 99
	_, err = svc.CreateOrder(context.Background(), other, "req-3")
	require.NoError(t, err)
	repo.setStatus(second.SN, domain.StatusShipped)

	t.Run("只返回自己的指定状态订单", func(t *testing.T) {
		list, total, err := svc.ListBuyerOrdersByStatus(context.Background(),
			42, domain.StatusPending, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, first.SN, list[0].SN)
	})
	t.Run("已发货页签", func(t *testing.T) {
		list, total, err := svc.ListBuyerOrdersByStatus(context.Background(),
			42, domain.StatusShipped, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, second.SN, list[0].SN)
	})
	t.Run("未知状态拒绝", func(t *testing.T) {
		_, _, err := svc.ListBuyerOrdersByStatus(context.Background(),
			42, domain.Status("refunded"), 0, 10)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_FindOrder(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)
	created, err := svc.CreateOrder(context.Background(), validOrder(), "req-1")
	require.NoError(t, err)

	t.Run("本人可见", func(t *testing.T) {
		got, err := svc.FindOrder(context.Background(), created.SN, 42)
		require.NoError(t, err)
		assert.Equal(t, created.SN, got.SN)
	})
	t.Run("他人不可见", func(t *testing.T) {
		_, err := svc.FindOrder(context.Background(), created.SN, 43)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_SetDeliveryAndDelete(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)
	created, err := svc.CreateOrder(context.Background(), validOrder(), "req-1")
	require.NoError(t, err)

	require.NoError(t, svc.SetDelivery(context.Background(), created.SN, "TRK-001", 1700600000000))
	got, err := svc.FindOrder(context.Background(), created.SN, 42)
	require.NoError(t, err)
	assert.Equal(t, "TRK-001", got.TrackingNumber)
	assert.Equal(t, int64(1700600000000), got.EstimatedDelivery)

	require.NoError(t, svc.DeleteOrder(context.Background(), created.SN))
	_, err = svc.FindOrder(context.Background(), created.SN, 42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

// fakeRepo 内存版仓储, 按 SN 索引
type fakeRepo struct {
	orders  map[string]domain.Order
	nextID  int64
	created int
	// failCreates 前 N 次 CreateOrder 直接失败, 模拟落库故障
	failCreates int
	// staleRead 非空时 FindOrderBySN 返回这个旧状态,
	// 模拟读取和写入之间被并发改掉
	staleRead domain.Status
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: map[string]domain.Order{}}
}

func (f *fakeRepo) setStatus(sn string, status domain.Status) {
	o := f.orders[sn]
	o.Status = status
	f.orders[sn] = o
}

func (f *fakeRepo) status(sn string) domain.Status {
	return f.orders[sn].Status
}

func (f *fakeRepo) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	if f.failCreates > 0 {
		f.failCreates--
		return domain.Order{}, errors.New("数据库不可用")
	}
	f.nextID++
	f.created++
	order.ID = f.nextID
	f.orders[order.SN] = order
	return order, nil
}

func (f *fakeRepo) FindOrderBySN(_ context.Context, sn string) (domain.Order, error) {
	o, ok := f.orders[sn]
	if !ok {
		return domain.Order{}, repository.ErrOrderNotFound
	}
	if f.staleRead != "" {
		o.Status = f.staleRead
	}
	return o, nil
}

func (f *fakeRepo) FindOrderBySNAndBuyerID(_ context.Context, sn string, buyerID int64) (domain.Order, error) {
	o, ok := f.orders[sn]
	if !ok || o.BuyerID != buyerID {
		return domain.Order{}, repository.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeRepo) ListOrdersByBuyerID(_ context.Context, offset, limit int, buyerID int64) ([]domain.Order, error) {
	var os []domain.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			os = append(os, o)
		}
	}
	return os, nil
}

func (f *fakeRepo) TotalOrdersByBuyerID(_ context.Context, buyerID int64) (int64, error) {
	os, _ := f.ListOrdersByBuyerID(nil, 0, 0, buyerID)
	return int64(len(os)), nil
}

func (f *fakeRepo) ListOrders(_ context.Context, offset, limit int) ([]domain.Order, error) {
	var os []domain.Order
	for _, o := range f.orders {
		os = append(os, o)
	}
	return os, nil
}

func (f *fakeRepo) TotalOrders(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeRepo) ListOrdersByStatus(_ context.Context, status domain.Status, offset, limit int) ([]domain.Order, error) {
	var os []domain.Order
	for _, o := range f.orders {
		if o.Status == status {
			os = append(os, o)
		}
	}
	return os, nil
}

func (f *fakeRepo) TotalOrdersByStatus(_ context.Context, status domain.Status) (int64, error) {
	os, _ := f.ListOrdersByStatus(nil, status, 0, 0)
	return int64(len(os)), nil
}

func (f *fakeRepo) ListBuyerOrdersByStatus(_ context.Context, buyerID int64, status domain.Status, offset, limit int) ([]domain.Order, error) {
	var os []domain.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID && o.Status == status {
			os = append(os, o)
		}
	}
	return os, nil
}

func (f *fakeRepo) TotalBuyerOrdersByStatus(_ context.Context, buyerID int64, status domain.Status) (int64, error) {
	os, _ := f.ListBuyerOrdersByStatus(nil, buyerID, status, 0, 0)
	return int64(len(os)), nil
}

func (f *fakeRepo) UpdateOrderStatus(_ context.Context, orderID int64, from, to domain.Status, notes string) error {
	for sn, o := range f.orders {
		if o.ID == orderID {
			if o.Status != from {
				return repository.ErrStatusConflict
			}
			o.Status = to
			if notes != "" {
				o.Notes = notes
			}
			f.orders[sn] = o
			return nil
		}
	}
	return repository.ErrOrderNotFound
}

func (f *fakeRepo) UpdateOrderDelivery(_ context.Context, orderID int64, trackingNumber string, estimatedDelivery int64) error {
	for sn, o := range f.orders {
		if o.ID == orderID {
			o.TrackingNumber = trackingNumber
			o.EstimatedDelivery = estimatedDelivery
			f.orders[sn] = o
			return nil
		}
	}
	return repository.ErrOrderNotFound
}

func (f *fakeRepo) DeleteOrder(_ context.Context, orderID int64) error {
	for sn, o := range f.orders {
		if o.ID == orderID {
			delete(f.orders, sn)
			return nil
		}
	}
	return repository.ErrOrderNotFound
}

type fakeRequestIDs struct {
	claimed map[string]bool
}

func newFakeRequestIDs() cache.RequestIDCache {
	return &fakeRequestIDs{claimed: map[string]bool{}}
}

func (f *fakeRequestIDs) Claim(_ context.Context, requestID string) error {
	if f.claimed[requestID] {
		return cache.ErrRequestDuplicated
	}
	f.claimed[requestID] = true
	return nil
}

func (f *fakeRequestIDs) Release(_ context.Context, requestID string) error {
	delete(f.claimed, requestID)
	return nil
}

type fakeProducer struct {
	events []event.OrderCreatedEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.OrderCreatedEvent) error {
	f.events = append(f.events, evt)
	return nil
}
