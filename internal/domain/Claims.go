package domain

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type OperatorRole int

const (
	RoleAdmin    OperatorRole = 1
	RoleOperator OperatorRole = 2
	RoleViewer   OperatorRole = 3
)

var roleNames = map[OperatorRole]string{
	RoleAdmin:    "admin",
	RoleOperator: "operator",
	RoleViewer:   "viewer",
}

// Claims identify an operator of the admin surface.
type Claims struct {
	OperatorName string       `json:"operator_name"`
	Role         OperatorRole `json:"role"`
	jwt.RegisteredClaims
}

func (r OperatorRole) IsValid() bool {
	return r >= RoleAdmin && r <= RoleViewer
}

func (r OperatorRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func ParseOperatorRole(name string) (OperatorRole, error) {
	for role, roleName := range roleNames {
		if strings.EqualFold(roleName, strings.TrimSpace(name)) {
			return role, nil
		}
	}
	return 0, NewInvalidInputError(fmt.Sprintf("unknown operator role %q", name))
}
