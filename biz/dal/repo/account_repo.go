package repo

import (
	"context"

	"join_now/be/biz/model/storage"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *storage.AccountRecord) (*storage.AccountRecord, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AccountRepository) FindByAccountID(ctx context.Context, accountID string) (*storage.AccountRecord, error) {
	var m storage.AccountRecord
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*storage.AccountRecord, error) {
	var m storage.AccountRecord
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *AccountRepository) Update(ctx context.Context, a *storage.AccountRecord) error {
	return r.db.WithContext(ctx).Save(a).Error
}
