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

package service

import (
	"context"
	"errors"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/mkulima/duka/internal/user/internal/domain"
	"github.com/mkulima/duka/internal/user/internal/event"
	"github.com/mkulima/duka/internal/user/internal/repository"
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// FindOrCreateByPhone 查找或者初始化
	// phone 必须是规范化之后的本地手机号
	FindOrCreateByPhone(ctx context.Context, phone string) (domain.User, error)

	// UpdateNonSensitiveInfo 更新非敏感数据
	// 手机号和序列号不走这里
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error

	// MarkPhoneVerified 验证码通过之后调用
	MarkPhoneVerified(ctx context.Context, id int64) error
}

type userService struct {
	repo     repository.UserRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号和手机号
	user.SN = ""
	user.Phone = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) FindOrCreateByPhone(ctx context.Context,
	phone string) (domain.User, error) {
	// 大部分人只是重复登录，数据在我们这里是有的
	u, err := svc.repo.FindByPhone(ctx, phone)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	sn := shortuuid.New()
	id, err := svc.repo.Create(ctx, domain.User{
		Phone:    phone,
		SN:       sn,
		Nickname: sn[:4],
	})

	if err != nil {
		return domain.User{}, err
	}

	// 发送注册成功消息
	evt := event.RegistrationEvent{Uid: id, Phone: phone}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}

	return domain.User{
		Id:    id,
		Phone: phone,
		SN:    sn,
	}, nil
}

func (svc *userService) MarkPhoneVerified(ctx context.Context, id int64) error {
	return svc.repo.MarkPhoneVerified(ctx, id)
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	// 在系统内部，基本上都是用 ID 的
	return svc.repo.FindById(ctx, id)
}
