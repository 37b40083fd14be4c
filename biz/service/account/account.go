package account

import (
	"context"

	"join_now/be/biz/dal/repo"
	"join_now/be/biz/db/mysql"
	"join_now/be/biz/model/convert"
	"join_now/be/biz/model/domain"
	"join_now/be/biz/model/errs"
	"join_now/be/biz/model/storage"
	"join_now/be/biz/util/encode"
	"join_now/be/biz/util/random"

	"github.com/google/uuid"
)

type AccountRepo interface {
	Create(ctx context.Context, a *storage.AccountRecord) (*storage.AccountRecord, error)
	FindByEmail(ctx context.Context, email string) (*storage.AccountRecord, error)
}

type CredentialRepo interface {
	Create(ctx context.Context, c *storage.AccountCredentialRecord) error
}

type Service struct {
	accounts    AccountRepo
	credentials CredentialRepo
}

func New(accounts AccountRepo, credentials CredentialRepo) *Service {
	return &Service{accounts: accounts, credentials: credentials}
}

func NewDefault() *Service {
	db := mysql.GetDbConn()
	return New(repo.NewAccountRepository(db), repo.NewAccountCredentialRepository(db))
}

type AddParam struct {
	Name     string
	Email    string
	Password string
}

// Add persists a new account and its credential, generating the account id.
// The returned account carries the stored password hash, not the raw input.
func (s *Service) Add(ctx context.Context, param AddParam) (*domain.Account, error) {
	existing, err := s.accounts.FindByEmail(ctx, param.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.EmailDuplicatedErr
	}

	rec, err := s.accounts.Create(ctx, &storage.AccountRecord{
		AccountId: uuid.New().String(),
		Email:     param.Email,
		Name:      param.Name,
	})
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.EmailDuplicatedErr
		}
		return nil, err
	}

	salt := random.RandStr(16)
	hash := encode.EncodePassword(salt, param.Password)
	if err := s.credentials.Create(ctx, &storage.AccountCredentialRecord{
		AccountId:    rec.AccountId,
		PasswordSalt: salt,
		PasswordHash: hash,
	}); err != nil {
		return nil, err
	}

	a := convert.AccountRecordToDomain(rec)
	a.Password = hash
	return a, nil
}
