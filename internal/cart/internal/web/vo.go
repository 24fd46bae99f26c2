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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/mkulima/duka/internal/cart/internal/domain"
)

type AddItemReq struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Supplier  string `json:"supplier,omitempty"`
	Quantity  int64  `json:"quantity"`
}

type RemoveItemReq struct {
	ProductID string `json:"productId"`
}

type UpdateQuantityReq struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Supplier  string `json:"supplier,omitempty"`
	Quantity  int64  `json:"quantity"`
}

type CartResp struct {
	Items []Item `json:"items"`
	// TotalPrice 单位为分, FormattedTotal 是给界面直接用的文案
	TotalItems     int64  `json:"totalItems"`
	TotalPrice     int64  `json:"totalPrice"`
	FormattedTotal string `json:"formattedTotal"`
}

func toCartVO(c domain.Cart) CartResp {
	return CartResp{
		Items: slice.Map(c.Items, func(idx int, src domain.Item) Item {
			return Item{
				ProductID: src.ProductID,
				Name:      src.Name,
				UnitPrice: src.UnitPrice,
				Image:     src.Image,
				Category:  src.Category,
				Supplier:  src.Supplier,
				Quantity:  src.Quantity,
			}
		}),
		TotalItems:     c.TotalItems(),
		TotalPrice:     c.TotalPrice(),
		FormattedTotal: domain.FormatPrice(c.TotalPrice()),
	}
}
