package mysql

import (
	"github.com/pkg/errors"
	"github.com/yhlin/social-network/domain"
	ormKit "github.com/yhlin/social-network/kit/orm"
	utilKit "github.com/yhlin/social-network/kit/util"
)

type accountEntity struct {
	domain.Account
}

func (accountEntity) TableName() string {
	return "account"
}

type accountRepo struct {
	db *ormKit.DB
}

func CreateAccountRepo(db *ormKit.DB) domain.AccountRepo {
	return &accountRepo{
		db: db,
	}
}

// Create hashes the password exactly once, at first persistence.
func (a *accountRepo) Create(email, firstname, lastname, password string) (*domain.Account, error) {
	uniqueIDGenerate, err := utilKit.GetUniqueIDGenerate()
	if err != nil {
		return nil, errors.Wrap(err, "generate unique id failed")
	}

	hash, err := utilKit.GetBcrypt(password)
	if err != nil {
		return nil, errors.Wrap(err, "get bcrypt failed")
	}

	account := accountEntity{
		Account: domain.Account{
			ID:        uniqueIDGenerate.Generate().GetInt64(),
			Email:     email,
			Firstname: firstname,
			Lastname:  lastname,
			Password:  hash,
		},
	}

	if err = a.db.Create(&account).Error; err != nil {
		return nil, errors.Wrap(err, "create account failed")
	}

	return &account.Account, nil
}

func (a *accountRepo) Get(userID int64) (*domain.Account, error) {
	var account accountEntity
	if err := a.db.First(&account, userID); err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return &account.Account, nil
}

func (a *accountRepo) GetByEmail(email string) (*domain.Account, error) {
	var account accountEntity
	if err := a.db.First(&account, "email = ?", email); err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return &account.Account, nil
}

func (a *accountRepo) List(pagination domain.Pagination) ([]*domain.Account, error) {
	var entities []*accountEntity
	tx := a.db.Model(&accountEntity{})
	if pagination.Limit > 0 {
		tx = tx.Limit(pagination.Limit)
	}
	if pagination.Offset > 0 {
		tx = tx.Offset(pagination.Offset)
	}
	if err := tx.Find(&entities).Error; err != nil {
		return nil, errors.Wrap(err, "list accounts failed")
	}
	accounts := make([]*domain.Account, 0, len(entities))
	for _, entity := range entities {
		account := entity.Account
		accounts = append(accounts, &account)
	}
	return accounts, nil
}
