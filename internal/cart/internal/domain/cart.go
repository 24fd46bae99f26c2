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

// Item 购物车行, 同一个商品只存在一行
type Item struct {
	ProductID string
	Name      string
	// UnitPrice 单位为分
	UnitPrice int64
	Image     string
	Category  string
	Supplier  string
	Quantity  int64
}

type Cart struct {
	Items []Item
}

// AddItem 已存在同商品则数量累加, 否则追加新行。
// 数量来自客户端, 不可信: 累加后小于等于零删除整行,
// 新行数量小于一直接丢弃, 购物车里不保留零或负数数量。
// 库存校验是调用方加购前的责任, 这里不做
func (c *Cart) AddItem(item Item) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			if c.Items[i].Quantity <= 0 {
				c.RemoveItem(item.ProductID)
			}
			return
		}
	}
	if item.Quantity < 1 {
		return
	}
	c.Items = append(c.Items, item)
}

// RemoveItem 不存在时静默跳过, 不算错误
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity 绝对值覆盖, 不是增量; 数量小于等于零等价于删除,
// 购物车里不保留零数量的行
func (c *Cart) UpdateQuantity(productID string, quantity int64) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) TotalItems() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice 每次现算, 不缓存
func (c Cart) TotalPrice() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.UnitPrice * it.Quantity
	}
	return total
}
