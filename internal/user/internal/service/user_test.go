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

	"github.com/mkulima/duka/internal/user/internal/domain"
	"github.com/mkulima/duka/internal/user/internal/event"
	"github.com/mkulima/duka/internal/user/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_FindOrCreateByPhone_New(t *testing.T) {
	repo := newFakeUserRepo()
	producer := &fakeProducer{}
	svc := NewUserService(repo, producer)

	u, err := svc.FindOrCreateByPhone(context.Background(), "0712345678")
	require.NoError(t, err)
	assert.Equal(t, "0712345678", u.Phone)
	assert.NotEmpty(t, u.SN)
	assert.NotZero(t, u.Id)
	// 新注册要发消息
	require.Len(t, producer.events, 1)
	assert.Equal(t, u.Id, producer.events[0].Uid)
	assert.Equal(t, "0712345678", producer.events[0].Phone)
}

func TestUserService_FindOrCreateByPhone_Existing(t *testing.T) {
	repo := newFakeUserRepo()
	producer := &fakeProducer{}
	svc := NewUserService(repo, producer)

	first, err := svc.FindOrCreateByPhone(context.Background(), "0712345678")
	require.NoError(t, err)
	second, err := svc.FindOrCreateByPhone(context.Background(), "0712345678")
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	// 老用户不再发注册消息
	assert.Len(t, producer.events, 1)
}

func TestUserService_MarkPhoneVerified(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeProducer{})

	u, err := svc.FindOrCreateByPhone(context.Background(), "0698765432")
	require.NoError(t, err)
	assert.False(t, u.PhoneVerified)

	require.NoError(t, svc.MarkPhoneVerified(context.Background(), u.Id))
	got, err := svc.Profile(context.Background(), u.Id)
	require.NoError(t, err)
	assert.True(t, got.PhoneVerified)
}

func TestUserService_UpdateNonSensitiveInfo(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeProducer{})

	u, err := svc.FindOrCreateByPhone(context.Background(), "0712345678")
	require.NoError(t, err)

	err = svc.UpdateNonSensitiveInfo(context.Background(), domain.User{
		Id:       u.Id,
		Nickname: "Juma",
		// 试图改手机号，应该被丢弃
		Phone: "0600000000",
		Address: domain.Address{
			Region:   "Morogoro",
			District: "Kilosa",
		},
	})
	require.NoError(t, err)

	got, err := svc.Profile(context.Background(), u.Id)
	require.NoError(t, err)
	assert.Equal(t, "Juma", got.Nickname)
	assert.Equal(t, "0712345678", got.Phone)
	assert.Equal(t, "Morogoro", got.Address.Region)
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int64]domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u domain.User) (int64, error) {
	u.Id = f.nextID
	f.nextID++
	f.users[u.Id] = u
	return u.Id, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u domain.User) error {
	cur := f.users[u.Id]
	if u.Nickname != "" {
		cur.Nickname = u.Nickname
	}
	if u.Avatar != "" {
		cur.Avatar = u.Avatar
	}
	if u.Address.Region != "" {
		cur.Address.Region = u.Address.Region
	}
	if u.Address.District != "" {
		cur.Address.District = u.Address.District
	}
	if u.Address.Street != "" {
		cur.Address.Street = u.Address.Street
	}
	if u.Address.PostalCode != "" {
		cur.Address.PostalCode = u.Address.PostalCode
	}
	f.users[u.Id] = cur
	return nil
}

func (f *fakeUserRepo) FindByPhone(_ context.Context, phone string) (domain.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindById(_ context.Context, id int64) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) MarkPhoneVerified(_ context.Context, id int64) error {
	u := f.users[id]
	u.PhoneVerified = true
	f.users[id] = u
	return nil
}

type fakeProducer struct {
	events []event.RegistrationEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.RegistrationEvent) error {
	f.events = append(f.events, evt)
	return nil
}
