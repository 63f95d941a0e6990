package auth

import (
	"errors"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("you do not have permission to perform this action")

// Identity is the authenticated caller. CustomerID is nil for users without a customer profile.
type Identity struct {
	UserID     uuid.UUID
	Username   string
	IsStaff    bool
	CustomerID *uuid.UUID
}

func (i Identity) OwnsCustomer(customerID uuid.UUID) bool {
	return i.CustomerID != nil && *i.CustomerID == customerID
}

type policyKind int

const (
	policyStaffOnly policyKind = iota + 1
	policySelfOrStaff
)

// Policy is a pure authorization rule evaluated after authentication.
type Policy struct {
	kind  policyKind
	param string
}

func StaffOnly() Policy {
	return Policy{kind: policyStaffOnly}
}

// SelfOrStaff allows staff, or the caller whose customer id equals the named route parameter.
func SelfOrStaff(param string) Policy {
	return Policy{kind: policySelfOrStaff, param: param}
}

// Param is the route parameter carrying the target id, empty for StaffOnly.
func (p Policy) Param() string {
	return p.param
}

func (p Policy) Evaluate(id Identity, target string) error {
	if id.IsStaff {
		return nil
	}
	switch p.kind {
	case policySelfOrStaff:
		targetID, err := uuid.Parse(target)
		if err != nil {
			return ErrForbidden
		}
		if id.OwnsCustomer(targetID) {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}
