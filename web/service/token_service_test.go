package service

import (
	"strings"
	"testing"

	"postboard/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndResolve(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}
	tokenService := TokenService{}

	user := &model.User{Name: "Frank", Email: "frank@example.com", Role: model.RoleUser}
	require.NoError(t, userService.Create(user, "secret1"))

	abilities := model.AbilitiesForRole(user.Role)
	plain, err := tokenService.Issue(user, "api-token", abilities)
	require.NoError(t, err)
	assert.Contains(t, plain, "|")

	identity, err := tokenService.Resolve(plain)
	require.NoError(t, err)
	assert.Equal(t, user.Id, identity.User.Id)
	assert.True(t, identity.Can(model.CreatePosts))
	assert.False(t, identity.Can(model.ViewUsers))
}

func TestTokenIssueIsUniquePerCall(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}
	tokenService := TokenService{}

	user := &model.User{Name: "Grace", Email: "grace@example.com", Role: model.RoleUser}
	require.NoError(t, userService.Create(user, "secret1"))

	abilities := model.AbilitiesForRole(user.Role)
	first, err := tokenService.Issue(user, "api-token", abilities)
	require.NoError(t, err)
	second, err := tokenService.Issue(user, "api-token", abilities)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// issuing again does not invalidate earlier tokens
	_, err = tokenService.Resolve(first)
	assert.NoError(t, err)
	_, err = tokenService.Resolve(second)
	assert.NoError(t, err)
}

func TestTokenResolveRejectsTampering(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}
	tokenService := TokenService{}

	user := &model.User{Name: "Heidi", Email: "heidi@example.com", Role: model.RoleAdmin}
	require.NoError(t, userService.Create(user, "secret1"))

	plain, err := tokenService.Issue(user, "api-token", model.AbilitiesForRole(user.Role))
	require.NoError(t, err)

	id, secret, found := strings.Cut(plain, "|")
	require.True(t, found)

	_, err = tokenService.Resolve(id + "|" + strings.Repeat("x", len(secret)))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokenService.Resolve("999999|" + secret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokenService.Resolve("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokenService.Resolve("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAdminAbilitySetIsSuperset(t *testing.T) {
	adminSet := model.AbilitiesForRole(model.RoleAdmin)
	userSet := model.AbilitiesForRole(model.RoleUser)

	for _, a := range userSet {
		assert.True(t, adminSet.Contains(a))
	}
	assert.True(t, adminSet.Contains(model.ViewUsers))
	assert.True(t, adminSet.Contains(model.CreateUsers))
	assert.True(t, adminSet.Contains(model.UpdateUsers))
	assert.True(t, adminSet.Contains(model.DeleteUsers))
	assert.False(t, userSet.Contains(model.ViewUsers))
}
