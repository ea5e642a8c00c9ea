package domain

import "time"

type Account struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"-"`

	AccessToken  string `gorm:"-" json:"access_token,omitempty"`
	RefreshToken string `gorm:"-" json:"refresh_token,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// PublicAccount is the outward projection of an account. The hashed
// password never leaves the repository layer through it.
type PublicAccount struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

func (a *Account) ToPublic() *PublicAccount {
	return &PublicAccount{
		ID:        a.ID,
		Email:     a.Email,
		Firstname: a.Firstname,
		Lastname:  a.Lastname,
	}
}

type AccountRepo interface {
	Create(email, firstname, lastname, password string) (*Account, error)
	Get(userID int64) (*Account, error)
	GetByEmail(email string) (*Account, error)
	List(pagination Pagination) ([]*Account, error)
}

type AccountUseCase interface {
	Register(email, firstname, lastname, password string) (*PublicAccount, error)
	Get(userID int64) (*PublicAccount, error)
	List(pagination Pagination) ([]*PublicAccount, error)
	Update(userID int64) string
	Remove(userID int64) string
}
