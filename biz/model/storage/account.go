package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

type AccountRecord struct {
	GormModel
	AccountId string `gorm:"size:64;not null;uniqueIndex"` // 账号唯一索引
	Email     string `gorm:"size:64;not null;uniqueIndex"` // 注册邮箱, 唯一
	Name      string `gorm:"size:64;not null"`             // 用户姓名
}

func (AccountRecord) TableName() string {
	return "accounts"
}

type AccountCredentialRecord struct {
	GormModel
	AccountId    string `gorm:"size:64;not null;uniqueIndex"` // 账号唯一索引
	PasswordSalt string `gorm:"size:64;not null"`
	PasswordHash string `gorm:"size:128;not null"`
}

func (AccountCredentialRecord) TableName() string {
	return "account_credentials"
}
