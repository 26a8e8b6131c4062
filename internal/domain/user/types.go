package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is carried in the identity token. Shoppers are viewers, floor staff are operators.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleRank = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above minRole. Unknown roles never qualify.
func (r Role) AtLeast(minRole Role) bool {
	have, ok := roleRank[r]
	need, okMin := roleRank[minRole]
	return ok && okMin && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
