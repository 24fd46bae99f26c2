package repository

import (
	"context"
	"time"

	"github.com/mkulima/duka/internal/verification/internal/repository/cache"
)

var ErrCodeNotFound = cache.ErrKeyNotFound

type VerificationCodeRepo interface {
	SetPhoneCode(ctx context.Context, phone string, code string) error
	GetPhoneCode(ctx context.Context, phone string) (string, error)
	DelPhoneCode(ctx context.Context, phone string) error
	ClaimCooldown(ctx context.Context, phone string, window time.Duration) (time.Duration, error)
	ReleaseCooldown(ctx context.Context, phone string) error
	CooldownRemaining(ctx context.Context, phone string) (time.Duration, error)
}

type verificationRepository struct {
	cache.VerificationCodeCache
}

func NewVerificationCodeRepository(codeCache cache.VerificationCodeCache) VerificationCodeRepo {
	return &verificationRepository{
		VerificationCodeCache: codeCache,
	}
}
