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
	"testing"
	"time"

	"github.com/mkulima/duka/internal/sms/client"
	"github.com/mkulima/duka/internal/user"
	"github.com/mkulima/duka/internal/verification/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(sms *fakeSMSClient, repo *fakeCodeRepo, users *fakeUserService) Service {
	return NewService(sms, repo, users, "SMS_12345", "duka")
}

func TestService_Send(t *testing.T) {
	sms := &fakeSMSClient{}
	repo := newFakeCodeRepo()
	svc := newTestService(sms, repo, newFakeUserService())

	err := svc.Send(context.Background(), "+255 712 345 678")
	require.NoError(t, err)

	// 验证码落进了存储, 而且是规范化之后的本地号
	code, err := repo.GetPhoneCode(context.Background(), "0712345678")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	// 短信发到国际格式的号码上
	require.Len(t, sms.sent, 1)
	assert.Equal(t, []string{"+255712345678"}, sms.sent[0].PhoneNumbers)
	assert.Equal(t, code, sms.sent[0].TemplateParam["code"])
}

func TestService_Send_InvalidPhone(t *testing.T) {
	svc := newTestService(&fakeSMSClient{}, newFakeCodeRepo(), newFakeUserService())
	for _, phone := range []string{"07123", "07123456789", "0812345678", ""} {
		err := svc.Send(context.Background(), phone)
		assert.ErrorIs(t, err, ErrInvalidPhone, phone)
	}
}

func TestService_Send_Cooldown(t *testing.T) {
	sms := &fakeSMSClient{}
	repo := newFakeCodeRepo()
	svc := newTestService(sms, repo, newFakeUserService())

	require.NoError(t, svc.Send(context.Background(), "0712345678"))
	err := svc.Send(context.Background(), "0712345678")
	assert.ErrorIs(t, err, ErrTooFrequent)
	assert.Len(t, sms.sent, 1)

	// 冷却窗口过了就可以重发
	repo.cooldowns["0712345678"] = time.Now().Add(-time.Second)
	require.NoError(t, svc.Send(context.Background(), "0712345678"))
	assert.Len(t, sms.sent, 2)
}

func TestService_Send_FailureReleasesCooldown(t *testing.T) {
	sms := &fakeSMSClient{failSends: 1}
	repo := newFakeCodeRepo()
	svc := newTestService(sms, repo, newFakeUserService())

	err := svc.Send(context.Background(), "0712345678")
	require.Error(t, err)

	// 发送失败不烧冷却窗口, 立刻重试要能成功
	remaining, err := svc.CooldownRemaining(context.Background(), "0712345678")
	require.NoError(t, err)
	assert.Zero(t, remaining)

	require.NoError(t, svc.Send(context.Background(), "0712345678"))
	assert.Len(t, sms.sent, 1)
}

func TestService_CooldownRemaining(t *testing.T) {
	repo := newFakeCodeRepo()
	svc := newTestService(&fakeSMSClient{}, repo, newFakeUserService())

	remaining, err := svc.CooldownRemaining(context.Background(), "0712345678")
	require.NoError(t, err)
	assert.Zero(t, remaining)

	require.NoError(t, svc.Send(context.Background(), "0712345678"))
	remaining, err = svc.CooldownRemaining(context.Background(), "0712345678")
	require.NoError(t, err)
	assert.Greater(t, remaining, time.Duration(0))
	assert.LessOrEqual(t, remaining, ResendCooldown)
}

func TestService_Verify(t *testing.T) {
	sms := &fakeSMSClient{}
	repo := newFakeCodeRepo()
	users := newFakeUserService()
	svc := newTestService(sms, repo, users)

	require.NoError(t, svc.Send(context.Background(), "0712345678"))
	code := sms.sent[0].TemplateParam["code"]

	u, err := svc.Verify(context.Background(), "0712345678", code)
	require.NoError(t, err)
	assert.Equal(t, "0712345678", u.Phone)
	assert.True(t, u.PhoneVerified)

	// 一个验证码只能用一次
	_, err = svc.Verify(context.Background(), "0712345678", code)
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestService_Verify_Incorrect(t *testing.T) {
	sms := &fakeSMSClient{}
	repo := newFakeCodeRepo()
	svc := newTestService(sms, repo, newFakeUserService())

	require.NoError(t, svc.Send(context.Background(), "0712345678"))
	code := sms.sent[0].TemplateParam["code"]
	wrong := "000000"
	if code == wrong {
		wrong = "999999"
	}

	_, err := svc.Verify(context.Background(), "0712345678", wrong)
	assert.ErrorIs(t, err, ErrCodeIncorrect)

	// 猜错不销毁验证码, 正确的还能用
	_, err = svc.Verify(context.Background(), "0712345678", code)
	require.NoError(t, err)
}

func TestService_Verify_BadCodeFormat(t *testing.T) {
	svc := newTestService(&fakeSMSClient{}, newFakeCodeRepo(), newFakeUserService())
	for _, code := range []string{"12345", "1234567", "12345a", ""} {
		_, err := svc.Verify(context.Background(), "0712345678", code)
		assert.ErrorIs(t, err, ErrInvalidCode, code)
	}
}

func TestService_Verify_Expired(t *testing.T) {
	svc := newTestService(&fakeSMSClient{}, newFakeCodeRepo(), newFakeUserService())
	_, err := svc.Verify(context.Background(), "0712345678", "123456")
	assert.ErrorIs(t, err, ErrCodeExpired)
}

type fakeSMSClient struct {
	sent []client.SendReq
	// failSends 前 N 次发送直接失败, 模拟网关故障
	failSends int
}

func (f *fakeSMSClient) Send(req client.SendReq) (client.SendResp, error) {
	if f.failSends > 0 {
		f.failSends--
		return client.SendResp{}, client.ErrSendFailed
	}
	f.sent = append(f.sent, req)
	statuses := make(map[string]client.SendRespStatus, len(req.PhoneNumbers))
	for _, phone := range req.PhoneNumbers {
		statuses[phone] = client.SendRespStatus{Code: client.OK}
	}
	return client.SendResp{RequestID: "fake", PhoneNumbers: statuses}, nil
}

type fakeCodeRepo struct {
	codes     map[string]string
	cooldowns map[string]time.Time
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{
		codes:     map[string]string{},
		cooldowns: map[string]time.Time{},
	}
}

func (f *fakeCodeRepo) SetPhoneCode(_ context.Context, phone string, code string) error {
	f.codes[phone] = code
	return nil
}

func (f *fakeCodeRepo) GetPhoneCode(_ context.Context, phone string) (string, error) {
	code, ok := f.codes[phone]
	if !ok {
		return "", repository.ErrCodeNotFound
	}
	return code, nil
}

func (f *fakeCodeRepo) DelPhoneCode(_ context.Context, phone string) error {
	delete(f.codes, phone)
	return nil
}

func (f *fakeCodeRepo) ClaimCooldown(_ context.Context, phone string, window time.Duration) (time.Duration, error) {
	until, ok := f.cooldowns[phone]
	if ok && time.Until(until) > 0 {
		return time.Until(until), nil
	}
	f.cooldowns[phone] = time.Now().Add(window)
	return 0, nil
}

func (f *fakeCodeRepo) ReleaseCooldown(_ context.Context, phone string) error {
	delete(f.cooldowns, phone)
	return nil
}

func (f *fakeCodeRepo) CooldownRemaining(_ context.Context, phone string) (time.Duration, error) {
	until, ok := f.cooldowns[phone]
	if !ok {
		return 0, nil
	}
	remaining := time.Until(until)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

type fakeUserService struct {
	nextID int64
	users  map[string]user.User
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{nextID: 1, users: map[string]user.User{}}
}

func (f *fakeUserService) FindOrCreateByPhone(_ context.Context, phone string) (user.User, error) {
	if u, ok := f.users[phone]; ok {
		return u, nil
	}
	u := user.User{Id: f.nextID, Phone: phone}
	f.nextID++
	f.users[phone] = u
	return u, nil
}

func (f *fakeUserService) Profile(_ context.Context, id int64) (user.User, error) {
	for _, u := range f.users {
		if u.Id == id {
			return u, nil
		}
	}
	return user.User{}, nil
}

func (f *fakeUserService) UpdateNonSensitiveInfo(_ context.Context, _ user.User) error {
	return nil
}

func (f *fakeUserService) MarkPhoneVerified(_ context.Context, id int64) error {
	for phone, u := range f.users {
		if u.Id == id {
			u.PhoneVerified = true
			f.users[phone] = u
		}
	}
	return nil
}
