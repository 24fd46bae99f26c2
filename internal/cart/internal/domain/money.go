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
	"fmt"
	"strconv"
)

// FormatPrice 把以分为单位的金额渲染成坦桑尼亚先令的展示文案,
// 千分位分组, 整元不带小数。纯展示, 不做任何业务舍入
func FormatPrice(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	shillings := amount / 100
	cents := amount % 100

	s := strconv.FormatInt(shillings, 10)
	var grouped []byte
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, ch)
	}

	out := "TSh " + string(grouped)
	if cents != 0 {
		out += fmt.Sprintf(".%02d", cents)
	}
	if negative {
		out = "-" + out
	}
	return out
}
