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
	"testing"

	"github.com/mkulima/duka/internal/cart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uid = int64(42)

func TestService_AddItem(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.AddItem(context.Background(), uid, domain.Item{ProductID: "a", UnitPrice: 1000, Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.AddItem(context.Background(), uid, domain.Item{ProductID: "a", UnitPrice: 1000, Quantity: 1})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(3), cart.Items[0].Quantity)

	// 变更落回存储, 重新读还在
	got, err := svc.GetCart(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TotalItems())
}

func TestService_UpdateQuantity(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.AddItem(context.Background(), uid, domain.Item{ProductID: "a", UnitPrice: 1000, Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(context.Background(), uid, "a", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.TotalItems())
}

func TestService_ClearCart(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.AddItem(context.Background(), uid, domain.Item{ProductID: "a", UnitPrice: 1000, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), uid, domain.Item{ProductID: "b", UnitPrice: 500, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(context.Background(), uid))

	got, err := svc.GetCart(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.TotalItems())
}

func TestService_UsersAreIsolated(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.AddItem(context.Background(), 1, domain.Item{ProductID: "a", UnitPrice: 1000, Quantity: 2})
	require.NoError(t, err)

	got, err := svc.GetCart(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

// fakeRepo 模拟整读整写的存储语义
type fakeRepo struct {
	carts map[int64]domain.Cart
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{carts: map[int64]domain.Cart{}}
}

func (f *fakeRepo) GetCart(_ context.Context, uid int64) (domain.Cart, error) {
	return f.carts[uid], nil
}

func (f *fakeRepo) SaveCart(_ context.Context, uid int64, cart domain.Cart) error {
	f.carts[uid] = cart
	return nil
}

func (f *fakeRepo) ClearCart(_ context.Context, uid int64) error {
	delete(f.carts, uid)
	return nil
}
