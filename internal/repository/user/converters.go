package user

import (
	"errandgo/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:           u.ID,
		FullName:     u.FullName,
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Role:         entities.UserRoleType(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}
	userDB := &UserModifyDB{}

	if userModify.ID != nil {
		userDB.ID = userModify.ID
	}
	if userModify.FullName != nil {
		userDB.FullName = userModify.FullName
	}
	if userModify.Username != nil {
		userDB.Username = userModify.Username
	}
	if userModify.Email != nil {
		userDB.Email = userModify.Email
	}
	if userModify.Phone != nil {
		userDB.Phone = userModify.Phone
	}
	if userModify.PasswordHash != nil {
		userDB.PasswordHash = userModify.PasswordHash
	}
	if userModify.Role != nil {
		role := userModify.Role.String()
		userDB.Role = &role
	}

	return userDB
}
