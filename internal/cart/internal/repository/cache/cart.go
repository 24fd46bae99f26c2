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

package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/mkulima/duka/internal/cart/internal/domain"
)

// CartCache 购物车整体作为一个 JSON 串存取, 每次整读整写,
// 没有行级的局部更新
type CartCache interface {
	Get(ctx context.Context, uid int64) (domain.Cart, error)
	Save(ctx context.Context, uid int64, cart domain.Cart) error
	Del(ctx context.Context, uid int64) error
}

type cartECache struct {
	cache ecache.Cache
	// 过期时间。购物车允许长期留存, 九十天未动再回收
	expiration time.Duration
}

// NewCartECache 注意缓存前缀
func NewCartECache(c ecache.Cache) CartCache {
	return &cartECache{
		cache: &ecache.NamespaceCache{
			Namespace: "cart:",
			C:         c,
		},
		expiration: 90 * 24 * time.Hour,
	}
}

func (c *cartECache) Get(ctx context.Context, uid int64) (domain.Cart, error) {
	val := c.cache.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		// 没有记录等价于空购物车
		return domain.Cart{}, nil
	}
	if val.Err != nil {
		return domain.Cart{}, val.Err
	}
	data, err := val.String()
	if err != nil {
		return domain.Cart{}, err
	}
	var cart domain.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (c *cartECache) Save(ctx context.Context, uid int64, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(uid), string(data), c.expiration)
}

func (c *cartECache) Del(ctx context.Context, uid int64) error {
	_, err := c.cache.Delete(ctx, c.key(uid))
	return err
}

func (c *cartECache) key(uid int64) string {
	return strconv.FormatInt(uid, 10)
}
