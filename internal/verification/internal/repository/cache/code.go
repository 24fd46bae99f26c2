package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
)

var ErrKeyNotFound = errors.New("key not found")

//go:generate mockgen -source=./code.go -package=cachemocks -destination=mocks/code.mock.go VerificationCodeCache
type VerificationCodeCache interface {
	SetPhoneCode(ctx context.Context, phone string, code string) error
	GetPhoneCode(ctx context.Context, phone string) (string, error)
	DelPhoneCode(ctx context.Context, phone string) error
	// ClaimCooldown 原子性地占住重发冷却窗口。
	// 占住了返回 (0, nil), 没占住返回剩余的冷却时长
	ClaimCooldown(ctx context.Context, phone string, window time.Duration) (time.Duration, error)
	// ReleaseCooldown 归还已占住的冷却窗口, 发送失败时调用,
	// 不让用户空等一个没有验证码的冷却期
	ReleaseCooldown(ctx context.Context, phone string) error
	// CooldownRemaining 只读查询剩余冷却时长, 可以发返回 0
	CooldownRemaining(ctx context.Context, phone string) (time.Duration, error)
}

type verificationCodeCache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

// NewVerificationCodeECache 注意缓存前缀
func NewVerificationCodeECache(c ecache.Cache) VerificationCodeCache {
	return &verificationCodeCache{
		cache: &ecache.NamespaceCache{
			Namespace: "otp:",
			C:         c,
		},
		// 默认五分钟
		expiration: time.Minute * 5,
	}
}

func (s *verificationCodeCache) SetPhoneCode(ctx context.Context, phone string, code string) error {
	return s.cache.Set(ctx, phone, code, s.expiration)
}

func (s *verificationCodeCache) GetPhoneCode(ctx context.Context, phone string) (string, error) {
	val := s.cache.Get(ctx, phone)
	if val.KeyNotFound() {
		return "", ErrKeyNotFound
	}
	if val.Err != nil {
		return "", val.Err
	}
	return val.String()
}

func (s *verificationCodeCache) DelPhoneCode(ctx context.Context, phone string) error {
	_, err := s.cache.Delete(ctx, phone)
	return err
}

func (s *verificationCodeCache) ClaimCooldown(ctx context.Context, phone string, window time.Duration) (time.Duration, error) {
	until := time.Now().Add(window).UnixMilli()
	ok, err := s.cache.SetNX(ctx, s.cooldownKey(phone), strconv.FormatInt(until, 10), window)
	if err != nil {
		return 0, err
	}
	if ok {
		return 0, nil
	}
	return s.CooldownRemaining(ctx, phone)
}

func (s *verificationCodeCache) ReleaseCooldown(ctx context.Context, phone string) error {
	_, err := s.cache.Delete(ctx, s.cooldownKey(phone))
	return err
}

func (s *verificationCodeCache) CooldownRemaining(ctx context.Context, phone string) (time.Duration, error) {
	val := s.cache.Get(ctx, s.cooldownKey(phone))
	if val.KeyNotFound() {
		return 0, nil
	}
	if val.Err != nil {
		return 0, val.Err
	}
	str, err := val.String()
	if err != nil {
		return 0, err
	}
	until, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, err
	}
	remaining := time.Until(time.UnixMilli(until))
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (s *verificationCodeCache) cooldownKey(phone string) string {
	return "cooldown:" + phone
}
