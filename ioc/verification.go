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

package ioc

import (
	"github.com/ecodeclub/ecache"
	"github.com/gotomicro/ego/core/econf"
	"github.com/mkulima/duka/internal/sms/client"
	"github.com/mkulima/duka/internal/user"
	"github.com/mkulima/duka/internal/verification"
)

func InitVerificationModule(ec ecache.Cache,
	smsClient client.Client,
	userModule *user.Module) *verification.Module {
	type AdminConfig struct {
		// 管理员手机号白名单
		Phones []string `yaml:"phones"`
	}
	var cfg AdminConfig
	err := econf.UnmarshalKey("admin", &cfg)
	if err != nil {
		panic(err)
	}
	return verification.InitModule(ec, smsClient, userModule.Svc, cfg.Phones)
}
