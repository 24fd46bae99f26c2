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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem(t *testing.T) {
	t.Run("重复加购按商品合并数量", func(t *testing.T) {
		var c Cart
		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: 2})
		c.AddItem(Item{ProductID: "b", UnitPrice: 500, Quantity: 1})
		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: 1})

		require.Len(t, c.Items, 2)
		assert.Equal(t, int64(3), c.Items[0].Quantity)
		assert.Equal(t, int64(4), c.TotalItems())
	})

	t.Run("多次合并只留一行", func(t *testing.T) {
		var c Cart
		for i := 0; i < 5; i++ {
			c.AddItem(Item{ProductID: "a", UnitPrice: 100, Quantity: 2})
		}
		require.Len(t, c.Items, 1)
		assert.Equal(t, int64(10), c.Items[0].Quantity)
	})

	t.Run("新行数量为零直接丢弃", func(t *testing.T) {
		var c Cart
		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: 0})
		assert.Empty(t, c.Items)
	})

	t.Run("新行数量为负直接丢弃", func(t *testing.T) {
		var c Cart
		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: -3})
		assert.Empty(t, c.Items)
	})

	t.Run("累加到零删除整行", func(t *testing.T) {
		var c Cart
		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: 2})
		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: -2})
		assert.Empty(t, c.Items)
	})

	t.Run("累加到负数同样删除", func(t *testing.T) {
		var c Cart
		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: 1})
		c.AddItem(Item{ProductID: "b", UnitPrice: 500, Quantity: 1})
		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: -5})
		require.Len(t, c.Items, 1)
		assert.Equal(t, "b", c.Items[0].ProductID)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	newCart := func() Cart {
		var c Cart
		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: 2})
		c.AddItem(Item{ProductID: "b", UnitPrice: 500, Quantity: 1})
		return c
	}

	t.Run("绝对值覆盖", func(t *testing.T) {
		c := newCart()
		c.UpdateQuantity("a", 7)
		assert.Equal(t, int64(7), c.Items[0].Quantity)
		assert.Equal(t, int64(8), c.TotalItems())
	})
	t.Run("数量为零删除整行", func(t *testing.T) {
		c := newCart()
		c.UpdateQuantity("a", 0)
		require.Len(t, c.Items, 1)
		assert.Equal(t, int64(1), c.TotalItems())
	})
	t.Run("负数同样删除", func(t *testing.T) {
		c := newCart()
		c.UpdateQuantity("a", -1)
		require.Len(t, c.Items, 1)
		assert.Equal(t, "b", c.Items[0].ProductID)
	})
	t.Run("不存在的商品是空操作", func(t *testing.T) {
		c := newCart()
		c.UpdateQuantity("missing", 3)
		assert.Equal(t, int64(3), c.TotalItems())
	})
}

func TestCart_RemoveItem(t *testing.T) {
	var c Cart
	c.AddItem(Item{ProductID: "a", Quantity: 1})
	c.RemoveItem("a")
	assert.Empty(t, c.Items)
	// 再删一次不报错
	c.RemoveItem("a")
	assert.Empty(t, c.Items)
}

func TestCart_TotalPrice(t *testing.T) {
	t.Run("场景: 2x1000 + 1x500", func(t *testing.T) {
		var c Cart
		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: 2})
		c.AddItem(Item{ProductID: "b", UnitPrice: 500, Quantity: 1})
		assert.Equal(t, int64(2500), c.TotalPrice())

		c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: 1})
		assert.Equal(t, int64(3500), c.TotalPrice())
		assert.Equal(t, int64(3), c.Items[0].Quantity)
	})

	t.Run("加购顺序不影响总价", func(t *testing.T) {
		items := []Item{
			{ProductID: "a", UnitPrice: 1000, Quantity: 2},
			{ProductID: "b", UnitPrice: 500, Quantity: 1},
			{ProductID: "c", UnitPrice: 250, Quantity: 4},
		}
		var c1, c2 Cart
		for _, it := range items {
			c1.AddItem(it)
		}
		for i := len(items) - 1; i >= 0; i-- {
			c2.AddItem(items[i])
		}
		assert.Equal(t, c1.TotalPrice(), c2.TotalPrice())
		assert.Equal(t, c1.TotalItems(), c2.TotalItems())
	})
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	c.AddItem(Item{ProductID: "a", UnitPrice: 1000, Quantity: 2})
	c.AddItem(Item{ProductID: "b", UnitPrice: 500, Quantity: 3})
	c.Clear()
	assert.Equal(t, int64(0), c.TotalItems())
	assert.Equal(t, int64(0), c.TotalPrice())
}

func TestFormatPrice(t *testing.T) {
	testCases := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "整元千分位", amount: 1250000, want: "TSh 12,500"},
		{name: "小额", amount: 50000, want: "TSh 500"},
		{name: "零", amount: 0, want: "TSh 0"},
		{name: "带分", amount: 1250050, want: "TSh 12,500.50"},
		{name: "百万", amount: 123456700, want: "TSh 1,234,567"},
		{name: "负数", amount: -50000, want: "-TSh 500"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPrice(tc.amount))
		})
	}
}
