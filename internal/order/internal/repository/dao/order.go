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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict 状态条件更新没有命中任何行,
	// 订单在读取和写入之间被并发改过
	ErrStatusConflict = errors.New("订单状态已被并发修改")
)

type OrderDAO interface {
	Create(ctx context.Context, o Order) (int64, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	List(ctx context.Context, offset, limit int, buyerID int64) ([]Order, error)
	Count(ctx context.Context, buyerID int64) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]Order, error)
	CountAll(ctx context.Context) (int64, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]Order, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	ListByBuyerAndStatus(ctx context.Context, buyerID int64, status string, offset, limit int) ([]Order, error)
	CountByBuyerAndStatus(ctx context.Context, buyerID int64, status string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to string, notes string) error
	UpdateDelivery(ctx context.Context, id int64, trackingNumber string, estimatedDelivery int64) error
	Delete(ctx context.Context, id int64) error
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &gormOrderDAO{db: db}
}

type gormOrderDAO struct {
	db *egorm.Component
}

func (g *gormOrderDAO) Create(ctx context.Context, o Order) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := g.db.WithContext(ctx).Create(&o).Error
	return o.Id, err
}

func (g *gormOrderDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("order_number = ?", sn).First(&o).Error
	return o, err
}

func (g *gormOrderDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).
		Where("order_number = ? AND user_id = ?", sn, buyerID).First(&o).Error
	return o, err
}

func (g *gormOrderDAO) List(ctx context.Context, offset, limit int, buyerID int64) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).Where("user_id = ?", buyerID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&os).Error
	return os, err
}

func (g *gormOrderDAO) Count(ctx context.Context, buyerID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("user_id = ?", buyerID).Count(&count).Error
	return count, err
}

func (g *gormOrderDAO) ListAll(ctx context.Context, offset, limit int) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&os).Error
	return os, err
}

func (g *gormOrderDAO) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Count(&count).Error
	return count, err
}

func (g *gormOrderDAO) ListByStatus(ctx context.Context, status string, offset, limit int) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).Where("status = ?", status).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&os).Error
	return os, err
}

func (g *gormOrderDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

func (g *gormOrderDAO) ListByBuyerAndStatus(ctx context.Context, buyerID int64, status string, offset, limit int) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).Where("user_id = ? AND status = ?", buyerID, status).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&os).Error
	return os, err
}

func (g *gormOrderDAO) CountByBuyerAndStatus(ctx context.Context, buyerID int64, status string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("user_id = ? AND status = ?", buyerID, status).Count(&count).Error
	return count, err
}

// UpdateStatus 带状态条件的 CAS 写, 终态写入后并发的旧写命不中任何行
func (g *gormOrderDAO) UpdateStatus(ctx context.Context, id int64, from, to string, notes string) error {
	updates := map[string]any{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	if notes != "" {
		updates["notes"] = notes
	}
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *gormOrderDAO) UpdateDelivery(ctx context.Context, id int64, trackingNumber string, estimatedDelivery int64) error {
	return g.db.WithContext(ctx).Model(&Order{}).Where("id = ?", id).
		Updates(map[string]any{
			"tracking_number":    trackingNumber,
			"estimated_delivery": estimatedDelivery,
			"utime":              time.Now().UnixMilli(),
		}).Error
}

func (g *gormOrderDAO) Delete(ctx context.Context, id int64) error {
	// 硬删除, 不留墓碑
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&Order{}).Error
}

// Order 表结构保持与线上库一致的 snake_case 列名,
// 嵌套对象落 JSON 列, 列名与 JSON 键名只在本包出现
type Order struct {
	Id                int64                      `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN                string                     `gorm:"column:order_number;type:varchar(64);not null;uniqueIndex:uniq_order_number;comment:对外订单号"`
	BuyerId           int64                      `gorm:"column:user_id;not null;index:idx_user_id;comment:买家ID"`
	Status            string                     `gorm:"type:varchar(16);not null;default:'pending';index:idx_status;comment:订单状态"`
	Items             sqlx.JsonColumn[[]Item]    `gorm:"type:json;not null;comment:下单时的购物车快照"`
	Subtotal          int64                      `gorm:"not null;comment:商品小计;单位为分"`
	Tax               int64                      `gorm:"not null;comment:税费;单位为分"`
	ShippingCost      int64                      `gorm:"column:shipping_cost;not null;comment:运费;单位为分"`
	DiscountAmount    int64                      `gorm:"column:discount_amount;not null;comment:优惠金额;单位为分"`
	Total             int64                      `gorm:"not null;comment:应付总额;单位为分"`
	ShippingAddress   sqlx.JsonColumn[Address]   `gorm:"column:shipping_address;type:json;not null;comment:收货地址快照"`
	PaymentMethod     sqlx.JsonColumn[Payment]   `gorm:"column:payment_method;type:json;not null;comment:支付方式"`
	ShippingMethod    sqlx.JsonColumn[Shipping]  `gorm:"column:shipping_method;type:json;not null;comment:配送方式"`
	DiscountCode      string                     `gorm:"column:discount_code;type:varchar(64);comment:优惠码"`
	TrackingNumber    string                     `gorm:"column:tracking_number;type:varchar(64);comment:物流单号"`
	EstimatedDelivery int64                      `gorm:"column:estimated_delivery;comment:预计送达时间, 创建时不填, 由运营补录"`
	Notes             string                     `gorm:"type:varchar(512);comment:备注"`
	Priority          string                     `gorm:"type:varchar(8);not null;default:'normal';comment:优先级 high/normal/low"`
	CustomerName      string                     `gorm:"column:customer_name;type:varchar(128);not null;comment:收货人姓名"`
	CustomerPhone     string                     `gorm:"column:customer_phone;type:varchar(16);not null;comment:收货人手机号"`
	Ctime             int64                      `gorm:"column:ctime;index:idx_ctime"`
	Utime             int64                      `gorm:"column:utime"`
}

func (Order) TableName() string {
	return "orders"
}

type Item struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Supplier  string `json:"supplier"`
	Quantity  int64  `json:"quantity"`
}

type Address struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	District   string `json:"district"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

type Payment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Shipping struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	EstimatedDays string   `json:"estimated_days"`
	Regions       []string `json:"regions"`
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{})
}
