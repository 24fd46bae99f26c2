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

package domain

import (
	"strconv"
	"strings"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	Status  Status
	Items   []OrderItem
	// 所有金额一律以分为单位, 12500 表示 TSh 125.00
	Subtotal       int64
	Tax            int64
	ShippingCost   int64
	DiscountAmount int64
	Total          int64
	ShippingAddress   Address
	PaymentMethod     PaymentMethod
	ShippingMethod    ShippingMethod
	DiscountCode      string
	TrackingNumber    string
	EstimatedDelivery int64
	Notes             string
	Priority          Priority
	CustomerName      string
	CustomerPhone     string
	Ctime             int64
	Utime             int64
}

// ConsistentTotal 校验订单金额恒等式, 整数分运算, 不存在浮点误差
func (o Order) ConsistentTotal() bool {
	return o.Total == o.Subtotal+o.Tax+o.ShippingCost-o.DiscountAmount
}

// OrderItem 下单时购物车行的快照, 创建后不可变
type OrderItem struct {
	OrderID   int64
	ProductID string
	Name      string
	UnitPrice int64
	Image     string
	Category  string
	Supplier  string
	Quantity  int64
}

// Address 下单时从用户资料复制的收货地址, 之后修改资料不回溯
type Address struct {
	FullName   string
	Street     string
	District   string
	Region     string
	PostalCode string
	Phone      string
}

type PaymentMethod struct {
	ID   string
	Name string
}

type ShippingMethod struct {
	ID            string
	Name          string
	Description   string
	Price         int64
	EstimatedDays string
	Regions       []string
}

// ParseEstimatedDays 解析配送时效文案, "1-2 days" 取上界, "3 days"/"3" 取单值
func ParseEstimatedDays(s string) (int, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "days"))
	if idx := strings.LastIndex(s, "-"); idx >= 0 {
		s = s[idx+1:]
	}
	return strconv.Atoi(strings.TrimSpace(s))
}
