package service

import (
	"crypto/subtle"

	"postboard/database"
	"postboard/database/model"
	"postboard/logger"
	"postboard/util/common"
	"postboard/web/token"
)

// ErrInvalidToken covers every verification failure: malformed plaintext,
// unknown record, secret mismatch, missing owner.
var ErrInvalidToken = common.NewError("invalid access token")

type TokenService struct {
	userService UserService
}

// Issue mints a new token bound to the user and ability set and returns the
// plaintext. Each call creates exactly one new record; earlier tokens stay
// valid.
func (s *TokenService) Issue(user *model.User, name string, abilities model.AbilitySet) (string, error) {
	secret := token.NewSecret()
	record := &model.AccessToken{
		UserId:    user.Id,
		Name:      name,
		TokenHash: token.Hash(secret),
		Abilities: abilities,
	}

	db := database.GetDB()
	if err := db.Create(record).Error; err != nil {
		return "", err
	}
	return token.Format(record.Id, secret), nil
}

// Resolve verifies a presented plaintext and returns the identity it was
// issued to.
func (s *TokenService) Resolve(plain string) (*token.Identity, error) {
	recordId, secret, err := token.Parse(plain)
	if err != nil {
		return nil, ErrInvalidToken
	}

	db := database.GetDB()
	record := &model.AccessToken{}
	err = db.Model(model.AccessToken{}).
		Where("id = ?", recordId).
		First(record).
		Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidToken
	} else if err != nil {
		logger.Warning("resolve token err:", err)
		return nil, err
	}

	presented := token.Hash(secret)
	if subtle.ConstantTimeCompare([]byte(record.TokenHash), []byte(presented)) != 1 {
		return nil, ErrInvalidToken
	}

	user, err := s.userService.Get(record.UserId)
	if database.IsNotFound(err) {
		return nil, ErrInvalidToken
	} else if err != nil {
		return nil, err
	}

	return &token.Identity{User: user, Abilities: record.Abilities}, nil
}
