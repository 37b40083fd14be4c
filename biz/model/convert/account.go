package convert

import (
	"join_now/be/biz/model/domain"
	"join_now/be/biz/model/storage"
)

func AccountDomainToRecord(a *domain.Account) *storage.AccountRecord {
	if a == nil {
		return nil
	}
	return &storage.AccountRecord{
		GormModel: storage.GormModel{
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		},
		AccountId: a.AccountID,
		Email:     a.Email,
		Name:      a.Name,
	}
}

func AccountRecordToDomain(m *storage.AccountRecord) *domain.Account {
	if m == nil {
		return nil
	}
	return &domain.Account{
		AccountID: m.AccountId,
		Email:     m.Email,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
