package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mkulima/duka/internal/user/internal/domain"
	"github.com/mkulima/duka/internal/user/internal/repository/cache"
	"github.com/mkulima/duka/internal/user/internal/repository/dao"
)

var ErrUserNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	FindByPhone(ctx context.Context, phone string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	MarkPhoneVerified(ctx context.Context, id int64) error
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

// NewCachedUserRepository 支持缓存的实现
func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, dao.User{
		SN:       u.SN,
		Nickname: u.Nickname,
		Phone: sql.NullString{
			String: u.Phone,
			Valid:  u.Phone != "",
		},
		PhoneVerified: u.PhoneVerified,
		Region:        u.Address.Region,
		District:      u.Address.District,
		Street:        u.Address.Street,
		PostalCode:    u.Address.PostalCode,
	})
}

func (ur *CachedUserRepository) FindByPhone(ctx context.Context,
	phone string) (domain.User, error) {
	u, err := ur.dao.FindByPhone(ctx, phone)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) MarkPhoneVerified(ctx context.Context, id int64) error {
	err := ur.dao.MarkPhoneVerified(ctx, id)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:         u.Id,
		Nickname:   u.Nickname,
		Avatar:     u.Avatar,
		Region:     u.Address.Region,
		District:   u.Address.District,
		Street:     u.Address.Street,
		PostalCode: u.Address.PostalCode,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:            ue.Id,
		Nickname:      ue.Nickname,
		SN:            ue.SN,
		Avatar:        ue.Avatar,
		Phone:         ue.Phone.String,
		PhoneVerified: ue.PhoneVerified,
		Address: domain.Address{
			Region:     ue.Region,
			District:   ue.District,
			Street:     ue.Street,
			PostalCode: ue.PostalCode,
		},
	}
}
