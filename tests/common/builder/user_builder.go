//go:build unit || e2e

package builder

import (
	"bookstore-api/internal/domain/user"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	IsStaff      bool
	IsActive     bool
	CustomerID   *uuid.UUID
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "reader",
		PasswordHash: "hashed_password",
		FirstName:    "Ada",
		LastName:     "Reader",
		Email:        "reader@example.com",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, u.PasswordHash, u.profile(), FixedTime)
}

func (u *UserBuilder) BuildReconstructed(id uuid.UUID) *user.User {
	return user.Reconstruct(id, u.Username, u.PasswordHash, u.profile(), u.IsStaff, u.IsActive, FixedTime, nil)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:           uuid.New(),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		IsStaff:      u.IsStaff,
		IsActive:     u.IsActive,
		DateJoined:   pgconv.TimeToPgtype(FixedTime),
		LastLogin:    pgtype.Timestamptz{},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:         uuid.New(),
		Username:   u.Username,
		IsStaff:    u.IsStaff,
		IsActive:   u.IsActive,
		CustomerID: u.CustomerID,
	}
}

func (u *UserBuilder) profile() user.Profile {
	return user.Profile{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithCustomerID(customerID *uuid.UUID) *UserBuilder {
	u.CustomerID = customerID
	return u
}

func (u *UserBuilder) AsStaff() *UserBuilder {
	u.IsStaff = true
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
