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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// 订单号是面向买家的, 必须全局唯一且只在服务端生成,
// 客户端并发下单时本地造号会撞号

const prefix = "ORD-"

// TimestampGenerateFunc 生成时间戳的函数类型
type TimestampGenerateFunc func(time.Time) int64

// ShortUUIDGenerateFunc 生成ShortUUID的函数类型
type ShortUUIDGenerateFunc func() string

type Generator struct {
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(
		func(t time.Time) int64 { return t.UnixMilli() },
		func() string { return shortuuid.New() })
}

// Generate 生成订单号: ORD- + 毫秒时间戳 + 买家ID后四位 + uuid 凑位,
// 定长 28 位
func (s *Generator) Generate(buyerID int64) (string, error) {
	timestamp := s.timestampGenFunc(time.Now())
	lastFour := fmt.Sprintf("%04d", buyerID%10000)
	uuid := s.shortUUIDGenFunc()
	return prefix + fmt.Sprintf("%d%s%s", timestamp, lastFour, uuid)[:24], nil
}
