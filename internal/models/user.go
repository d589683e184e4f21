package models

import (
	"time"

	"github.com/coursehub/coursehub-backend/internal/api/validate"
)

type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	EmailAddress string    `json:"emailAddress"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPublic is the profile embedded in course responses and returned by the
// who-am-I endpoint. Never carries the hash.
type UserPublic struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

func (u *User) Public() UserPublic {
	return UserPublic{FirstName: u.FirstName, LastName: u.LastName, EmailAddress: u.EmailAddress}
}

func (u *User) Validate() validate.Errs {
	var errs validate.Errs
	errs = errs.Append(validate.Required("firstName", u.FirstName))
	errs = errs.Append(validate.Required("lastName", u.LastName))
	errs = errs.Append(validate.Required("emailAddress", u.EmailAddress))
	return errs
}
