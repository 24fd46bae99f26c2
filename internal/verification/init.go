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

package verification

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/mkulima/duka/internal/sms/client"
	"github.com/mkulima/duka/internal/user"
	"github.com/mkulima/duka/internal/verification/internal/repository"
	"github.com/mkulima/duka/internal/verification/internal/service"
)

func initService(c client.Client,
	repo repository.VerificationCodeRepo,
	userSvc user.UserService) service.Service {
	type Config struct {
		TemplateID string `yaml:"templateID"`
		SignName   string `yaml:"signName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewService(c, repo, userSvc, cfg.TemplateID, cfg.SignName)
}
