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
	"crypto/rand"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/mkulima/duka/internal/sms/client"
	"github.com/mkulima/duka/internal/user"
	"github.com/mkulima/duka/internal/verification/internal/domain"
	"github.com/mkulima/duka/internal/verification/internal/repository"
	"github.com/pkg/errors"
)

// ResendCooldown 两次发送之间的最短间隔
const ResendCooldown = time.Minute

var (
	ErrInvalidPhone  = domain.ErrInvalidPhone
	ErrInvalidCode   = domain.ErrInvalidCode
	ErrTooFrequent   = errors.New("发送太频繁")
	ErrCodeExpired   = errors.New("验证码已过期")
	ErrCodeIncorrect = errors.New("验证码不对")
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go -typed Service
type Service interface {
	// Send 给手机号发验证码, phone 接受用户的原始输入
	Send(ctx context.Context, phone string) error
	// Verify 校验验证码, 通过之后查找或者初始化用户
	Verify(ctx context.Context, phone string, code string) (user.User, error)
	// CooldownRemaining 距离允许重发还剩多久, 0 表示可以发
	CooldownRemaining(ctx context.Context, phone string) (time.Duration, error)
}

type verificationService struct {
	client     client.Client
	repo       repository.VerificationCodeRepo
	userSvc    user.UserService
	templateID string
	signName   string
	logger     *elog.Component
}

func NewService(c client.Client,
	repo repository.VerificationCodeRepo,
	userSvc user.UserService,
	templateID, signName string,
) Service {
	return &verificationService{
		client:     c,
		repo:       repo,
		userSvc:    userSvc,
		templateID: templateID,
		signName:   signName,
		logger:     elog.DefaultLogger,
	}
}

func (s *verificationService) Send(ctx context.Context, phone string) error {
	normalized, err := domain.NormalizePhone(phone)
	if err != nil {
		return err
	}
	remaining, err := s.repo.ClaimCooldown(ctx, normalized, ResendCooldown)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return errors.Wrapf(ErrTooFrequent, "还剩 %s", remaining)
	}
	code := s.generateCode()
	err = s.repo.SetPhoneCode(ctx, normalized, code)
	if err != nil {
		s.releaseCooldown(ctx, normalized)
		return err
	}
	resp, err := s.client.Send(client.SendReq{
		PhoneNumbers: []string{domain.ToInternational(normalized)},
		SignName:     s.signName,
		TemplateID:   s.templateID,
		TemplateParam: map[string]string{
			"code": code,
		},
	})
	if err != nil {
		s.releaseCooldown(ctx, normalized)
		return err
	}
	for _, status := range resp.PhoneNumbers {
		if status.Code != client.OK {
			s.releaseCooldown(ctx, normalized)
			return errors.New(status.Message)
		}
	}
	return nil
}

// releaseCooldown 发送失败不烧冷却窗口, 用户可以立刻重试
func (s *verificationService) releaseCooldown(ctx context.Context, phone string) {
	if err := s.repo.ReleaseCooldown(ctx, phone); err != nil {
		s.logger.Error("归还重发冷却窗口失败",
			elog.FieldErr(err),
			elog.String("phone", phone),
		)
	}
}

func (s *verificationService) Verify(ctx context.Context, phone string, code string) (user.User, error) {
	normalized, err := domain.NormalizePhone(phone)
	if err != nil {
		return user.User{}, err
	}
	if !domain.ValidCode(code) {
		return user.User{}, errors.Wrap(ErrInvalidCode, code)
	}
	stored, err := s.repo.GetPhoneCode(ctx, normalized)
	if errors.Is(err, repository.ErrCodeNotFound) {
		return user.User{}, ErrCodeExpired
	}
	if err != nil {
		return user.User{}, err
	}
	if stored != code {
		return user.User{}, ErrCodeIncorrect
	}
	// 一个验证码只能用一次
	if err = s.repo.DelPhoneCode(ctx, normalized); err != nil {
		s.logger.Error("删除已使用的验证码失败",
			elog.FieldErr(err),
			elog.String("phone", normalized),
		)
	}
	u, err := s.userSvc.FindOrCreateByPhone(ctx, normalized)
	if err != nil {
		return user.User{}, err
	}
	if !u.PhoneVerified {
		if err = s.userSvc.MarkPhoneVerified(ctx, u.Id); err != nil {
			return user.User{}, err
		}
		u.PhoneVerified = true
	}
	return u, nil
}

func (s *verificationService) CooldownRemaining(ctx context.Context, phone string) (time.Duration, error) {
	normalized, err := domain.NormalizePhone(phone)
	if err != nil {
		return 0, err
	}
	return s.repo.CooldownRemaining(ctx, normalized)
}

func (s *verificationService) generateCode() string {
	// 使用 crypto/rand 生成随机字节
	bytes := make([]byte, 6)
	_, _ = rand.Read(bytes)
	// 将字节转换为六位数字验证码
	code := ""
	for _, b := range bytes {
		// 将字节值映射到 0-9 范围
		digit := int(b) % 10
		code += fmt.Sprintf("%d", digit)
	}
	return code
}
