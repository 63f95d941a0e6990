package request

import (
	"bookstore-api/internal/pkg/patch"
)

type SignupUserRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Email     string `json:"email" binding:"omitempty,email"`
}

type SignupRequest struct {
	User           SignupUserRequest `json:"user" binding:"required"`
	MailingAddress *string           `json:"mailing_address"`
}

type UpdateCustomerUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// UpdateCustomerRequest accepts the profile fields either flat or nested under user.
// An empty mailing_address clears it.
type UpdateCustomerRequest struct {
	FirstName      *string                    `json:"first_name" binding:"omitempty,max=150"`
	LastName       *string                    `json:"last_name" binding:"omitempty,max=150"`
	Email          *string                    `json:"email" binding:"omitempty,email"`
	User           *UpdateCustomerUserRequest `json:"user"`
	MailingAddress *string                    `json:"mailing_address"`
}

type ProfileChanges struct {
	FirstName      *string
	LastName       *string
	Email          *string
	MailingAddress *string
}

// ToChanges merges both shapes; a nested value wins over the flat one.
func (r *UpdateCustomerRequest) ToChanges() ProfileChanges {
	nested := UpdateCustomerUserRequest{}
	if r.User != nil {
		nested = *r.User
	}
	return ProfileChanges{
		FirstName:      patch.First(nested.FirstName, r.FirstName),
		LastName:       patch.First(nested.LastName, r.LastName),
		Email:          patch.First(nested.Email, r.Email),
		MailingAddress: r.MailingAddress,
	}
}

func (c ProfileChanges) TouchesUser() bool {
	return c.FirstName != nil || c.LastName != nil || c.Email != nil
}
