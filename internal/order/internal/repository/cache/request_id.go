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
	"errors"
	"time"

	"github.com/ecodeclub/ecache"
)

var ErrRequestDuplicated = errors.New("重复的下单请求")

// RequestIDCache 占用客户端生成的请求ID, 同一个ID只允许下单一次。
// 下单落库失败时调用 Release 归还占用, 否则客户端按约定用同一个ID
// 重试会一直被拒
type RequestIDCache interface {
	Claim(ctx context.Context, requestID string) error
	Release(ctx context.Context, requestID string) error
}

type requestIDECache struct {
	cache ecache.Cache
	// 保留一天, 足够覆盖客户端的超时重试窗口
	expiration time.Duration
}

// NewRequestIDECache 注意缓存前缀
func NewRequestIDECache(c ecache.Cache) RequestIDCache {
	return &requestIDECache{
		cache: &ecache.NamespaceCache{
			Namespace: "order:reqid:",
			C:         c,
		},
		expiration: 24 * time.Hour,
	}
}

func (r *requestIDECache) Claim(ctx context.Context, requestID string) error {
	ok, err := r.cache.SetNX(ctx, requestID, requestID, r.expiration)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRequestDuplicated
	}
	return nil
}

func (r *requestIDECache) Release(ctx context.Context, requestID string) error {
	_, err := r.cache.Delete(ctx, requestID)
	return err
}
