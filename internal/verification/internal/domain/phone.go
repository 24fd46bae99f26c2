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
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidPhone = errors.New("手机号不合法")
	ErrInvalidCode  = errors.New("验证码格式不对")
)

// NormalizePhone 把用户输入整理成本地格式 0XXXXXXXXX。
// 接受 0712345678、+255712345678、255712345678 以及带空格横线的写法,
// 坦桑尼亚手机号必须是 07 或 06 开头的 10 位数字。
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, raw)

	switch {
	case strings.HasPrefix(cleaned, "+255"):
		cleaned = "0" + cleaned[len("+255"):]
	case strings.HasPrefix(cleaned, "255") && len(cleaned) == 12:
		cleaned = "0" + cleaned[len("255"):]
	}

	if !isLocalPhone(cleaned) {
		return "", errors.Wrap(ErrInvalidPhone, raw)
	}
	return cleaned, nil
}

// ToInternational 本地格式转国际格式, 发短信用
func ToInternational(phone string) string {
	if strings.HasPrefix(phone, "0") {
		return "+255" + phone[1:]
	}
	return phone
}

func isLocalPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	if !strings.HasPrefix(phone, "07") && !strings.HasPrefix(phone, "06") {
		return false
	}
	return isDigits(phone)
}

// ValidCode 验证码必须是 6 位数字
func ValidCode(code string) bool {
	return len(code) == 6 && isDigits(code)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
