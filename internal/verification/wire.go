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

//go:build wireinject

package verification

import (
	"github.com/ecodeclub/ecache"
	"github.com/google/wire"
	"github.com/mkulima/duka/internal/sms/client"
	"github.com/mkulima/duka/internal/user"
	"github.com/mkulima/duka/internal/verification/internal/repository"
	"github.com/mkulima/duka/internal/verification/internal/repository/cache"
	"github.com/mkulima/duka/internal/verification/internal/web"
)

func InitModule(ec ecache.Cache, smsClient client.Client, userSvc user.UserService, admins []string) *Module {
	wire.Build(
		cache.NewVerificationCodeECache,
		repository.NewVerificationCodeRepository,
		initService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
