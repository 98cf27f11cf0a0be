// Package service holds the gorm query layer behind the API controllers.
package service

import (
	"postboard/database"
	"postboard/database/model"
	"postboard/logger"
	"postboard/util/crypto"

	"gorm.io/gorm"
)

type UserService struct{}

func (s *UserService) GetAll() ([]model.User, error) {
	db := database.GetDB()

	var users []model.User
	err := db.Model(model.User{}).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByEmail(email string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies login credentials. It returns nil both for an unknown
// email and a wrong password so the two cases are indistinguishable.
func (s *UserService) CheckUser(email string, password string) *model.User {
	user, err := s.GetByEmail(email)
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPassword(user.Password, password) {
		return nil
	}
	return user
}

// EmailTaken reports whether another user already holds the email.
// excludeId skips the record being updated; pass 0 on create.
func (s *UserService) EmailTaken(email string, excludeId int) (bool, error) {
	db := database.GetDB()

	var count int64
	query := db.Model(model.User{}).Where("email = ?", email)
	if excludeId > 0 {
		query = query.Where("id <> ?", excludeId)
	}
	err := query.Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create hashes the password and persists the user.
func (s *UserService) Create(user *model.User, password string) error {
	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hashed

	db := database.GetDB()
	return db.Create(user).Error
}

func (s *UserService) Update(id int, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	db := database.GetDB()
	return db.Model(model.User{}).
		Where("id = ?", id).
		Updates(updates).
		Error
}

// Delete removes the user together with every token issued to them.
func (s *UserService) Delete(id int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.AccessToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
}
