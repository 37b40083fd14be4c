package repo

import (
	"context"

	"join_now/be/biz/model/storage"

	"gorm.io/gorm"
)

type AccountCredentialRepository struct {
	db *gorm.DB
}

func NewAccountCredentialRepository(db *gorm.DB) *AccountCredentialRepository {
	return &AccountCredentialRepository{db: db}
}

func (r *AccountCredentialRepository) Create(ctx context.Context, c *storage.AccountCredentialRecord) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *AccountCredentialRepository) FindByAccountID(ctx context.Context, accountID string) (*storage.AccountCredentialRecord, error) {
	var m storage.AccountCredentialRecord
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *AccountCredentialRepository) Update(ctx context.Context, c *storage.AccountCredentialRecord) error {
	return r.db.WithContext(ctx).Save(c).Error
}
