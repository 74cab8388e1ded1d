package users

type Repo interface {
	Upsert(user *User) error
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	Delete(id string) error
}
