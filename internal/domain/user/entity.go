package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the login identity. Staff users may manage the catalog and every customer.
type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	firstName    string
	lastName     string
	email        Email
	isStaff      bool
	isActive     bool
	dateJoined   time.Time
	lastLogin    *time.Time
}

type Profile struct {
	FirstName string
	LastName  string
	Email     string
}

func NewUser(username Username, passwordHash string, profile Profile, now time.Time) (*User, error) {
	u := &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		isActive:     true,
		dateJoined:   now,
	}
	if err := u.applyProfile(&profile.FirstName, &profile.LastName, &profile.Email); err != nil {
		return nil, err
	}
	return u, nil
}

func Reconstruct(id uuid.UUID, username, passwordHash string, profile Profile, isStaff, isActive bool, dateJoined time.Time, lastLogin *time.Time) *User {
	return &User{
		id:           id,
		username:     Username{value: username},
		passwordHash: passwordHash,
		firstName:    profile.FirstName,
		lastName:     profile.LastName,
		email:        Email{value: profile.Email},
		isStaff:      isStaff,
		isActive:     isActive,
		dateJoined:   dateJoined,
		lastLogin:    lastLogin,
	}
}

// UpdateProfile applies only the non-nil fields.
func (u *User) UpdateProfile(firstName, lastName, email *string) error {
	return u.applyProfile(firstName, lastName, email)
}

func (u *User) applyProfile(firstName, lastName, email *string) error {
	first, last, mail := u.firstName, u.lastName, u.email
	var err error
	if firstName != nil {
		if first, err = NewName(*firstName); err != nil {
			return err
		}
	}
	if lastName != nil {
		if last, err = NewName(*lastName); err != nil {
			return err
		}
	}
	if email != nil {
		if mail, err = NewEmail(*email); err != nil {
			return err
		}
	}
	u.firstName, u.lastName, u.email = first, last, mail
	return nil
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Username() Username    { return u.username }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) FirstName() string     { return u.firstName }
func (u *User) LastName() string      { return u.lastName }
func (u *User) Email() Email          { return u.email }
func (u *User) IsStaff() bool         { return u.isStaff }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) DateJoined() time.Time { return u.dateJoined }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
