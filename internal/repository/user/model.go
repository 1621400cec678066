package user

import "time"

type UserDB struct {
	ID           int64
	FullName     string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserModifyDB struct {
	ID           *int64
	FullName     *string
	Username     *string
	Email        *string
	Phone        *string
	PasswordHash *string
	Role         *string
}
