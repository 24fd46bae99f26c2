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

	"github.com/mkulima/duka/internal/cart/internal/domain"
	"github.com/mkulima/duka/internal/cart/internal/repository"
)

type Service interface {
	AddItem(ctx context.Context, uid int64, item domain.Item) (domain.Cart, error)
	RemoveItem(ctx context.Context, uid int64, productID string) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, uid int64, productID string, quantity int64) (domain.Cart, error)
	ClearCart(ctx context.Context, uid int64) error
	GetCart(ctx context.Context, uid int64) (domain.Cart, error)
}

func NewService(repo repository.CartRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CartRepository
}

// 每个修改都是读最新状态、内存变更、整体写回。
// 同一会话内严格串行, 跨设备并发写以后写的为准, 不做合并

func (s *service) AddItem(ctx context.Context, uid int64, item domain.Item) (domain.Cart, error) {
	return s.mutate(ctx, uid, func(c *domain.Cart) {
		c.AddItem(item)
	})
}

func (s *service) RemoveItem(ctx context.Context, uid int64, productID string) (domain.Cart, error) {
	return s.mutate(ctx, uid, func(c *domain.Cart) {
		c.RemoveItem(productID)
	})
}

func (s *service) UpdateQuantity(ctx context.Context, uid int64, productID string, quantity int64) (domain.Cart, error) {
	return s.mutate(ctx, uid, func(c *domain.Cart) {
		c.UpdateQuantity(productID, quantity)
	})
}

func (s *service) ClearCart(ctx context.Context, uid int64) error {
	return s.repo.ClearCart(ctx, uid)
}

func (s *service) GetCart(ctx context.Context, uid int64) (domain.Cart, error) {
	return s.repo.GetCart(ctx, uid)
}

func (s *service) mutate(ctx context.Context, uid int64, fn func(c *domain.Cart)) (domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	fn(&cart)
	if err := s.repo.SaveCart(ctx, uid, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}
