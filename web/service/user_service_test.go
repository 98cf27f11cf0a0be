package service

import (
	"os"
	"testing"

	"postboard/database"
	"postboard/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	teardown()
	require.NoError(t, database.InitDB("test.db"))
}

func teardown() {
	if database.GetDB() != nil {
		database.CloseDB()
	}
	os.Remove("test.db")
	os.Remove("test.db-wal")
	os.Remove("test.db-shm")
}

func TestUserServiceCRUD(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	user := &model.User{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  model.RoleUser,
	}
	err := service.Create(user, "secret1")
	require.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.NotEqual(t, "secret1", user.Password)

	retrieved, err := service.Get(user.Id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", retrieved.Name)
	assert.Equal(t, model.RoleUser, retrieved.Role)

	byEmail, err := service.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.Id, byEmail.Id)

	// the seeded admin plus Alice
	users, err := service.GetAll()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	err = service.Update(user.Id, map[string]any{"name": "Alice B"})
	require.NoError(t, err)
	updated, _ := service.Get(user.Id)
	assert.Equal(t, "Alice B", updated.Name)

	err = service.Delete(user.Id)
	require.NoError(t, err)
	_, err = service.Get(user.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestUserServiceCheckUser(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	user := &model.User{Name: "Bob", Email: "bob@example.com", Role: model.RoleUser}
	require.NoError(t, service.Create(user, "secret1"))

	assert.NotNil(t, service.CheckUser("bob@example.com", "secret1"))
	assert.Nil(t, service.CheckUser("bob@example.com", "wrong"))
	assert.Nil(t, service.CheckUser("nobody@example.com", "secret1"))
}

func TestUserServiceEmailTaken(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	user := &model.User{Name: "Carol", Email: "carol@example.com", Role: model.RoleUser}
	require.NoError(t, service.Create(user, "secret1"))

	taken, err := service.EmailTaken("carol@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	// the record itself is excluded on update
	taken, err = service.EmailTaken("carol@example.com", user.Id)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = service.EmailTaken("free@example.com", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserServiceDeleteRemovesTokens(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}
	tokenService := TokenService{}

	user := &model.User{Name: "Dave", Email: "dave@example.com", Role: model.RoleUser}
	require.NoError(t, userService.Create(user, "secret1"))

	plain, err := tokenService.Issue(user, "api-token", model.AbilitiesForRole(user.Role))
	require.NoError(t, err)

	require.NoError(t, userService.Delete(user.Id))

	_, err = tokenService.Resolve(plain)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
