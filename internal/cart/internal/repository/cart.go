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

	"github.com/mkulima/duka/internal/cart/internal/domain"
	"github.com/mkulima/duka/internal/cart/internal/repository/cache"
)

// CartRepository 购物车只有缓存一层存储: 设备换机不保, 不跨端同步,
// 真正要保证一致的校验都发生在下单时
type CartRepository interface {
	GetCart(ctx context.Context, uid int64) (domain.Cart, error)
	SaveCart(ctx context.Context, uid int64, cart domain.Cart) error
	ClearCart(ctx context.Context, uid int64) error
}

func NewCartRepository(c cache.CartCache) CartRepository {
	return &cartRepository{c: c}
}

type cartRepository struct {
	c cache.CartCache
}

func (r *cartRepository) GetCart(ctx context.Context, uid int64) (domain.Cart, error) {
	return r.c.Get(ctx, uid)
}

func (r *cartRepository) SaveCart(ctx context.Context, uid int64, cart domain.Cart) error {
	return r.c.Save(ctx, uid, cart)
}

func (r *cartRepository) ClearCart(ctx context.Context, uid int64) error {
	return r.c.Del(ctx, uid)
}
