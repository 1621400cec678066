package entities

import "time"

type User struct {
	ID           int64
	FullName     string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         UserRoleType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRoleType string

const (
	RoleClient UserRoleType = "client"
	RoleRunner UserRoleType = "runner"
)

const DefaultUserRole = RoleClient

func (r UserRoleType) String() string {
	return string(r)
}

type UserModify struct {
	ID           *int64
	FullName     *string
	Username     *string
	Email        *string
	Phone        *string
	PasswordHash *string
	Role         *UserRoleType
}
