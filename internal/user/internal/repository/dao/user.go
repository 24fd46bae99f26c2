package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 这个算是 user 专属的
var ErrUserDuplicate = errors.New("用户已经注册")

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindByPhone(ctx context.Context, phone string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	MarkPhoneVerified(ctx context.Context, id int64) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindByPhone(ctx context.Context, phone string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "phone = ?", phone).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) MarkPhoneVerified(ctx context.Context, id int64) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"phone_verified": true,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

type User struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	Nickname string
	Avatar   string
	SN       string         `gorm:"type:varchar(256);unique"`
	Phone    sql.NullString `gorm:"type:varchar(16);unique"`
	// 手机号是否通过短信验证码验证过
	PhoneVerified bool
	Region        string `gorm:"type:varchar(64)"`
	District      string `gorm:"type:varchar(64)"`
	Street        string `gorm:"type:varchar(128)"`
	PostalCode    string `gorm:"type:varchar(16)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
