package service

import (
	"testing"

	"postboard/database"
	"postboard/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostServiceCRUD(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}
	postService := PostService{}

	owner := &model.User{Name: "Eve", Email: "eve@example.com", Role: model.RoleUser}
	require.NoError(t, userService.Create(owner, "secret1"))

	post := &model.Post{
		UserId:      owner.Id,
		Title:       "First post",
		Description: "Hello",
	}
	require.NoError(t, postService.Create(post))
	assert.NotZero(t, post.Id)
	// Create reloads the post with its owner embedded
	require.NotNil(t, post.User)
	assert.Equal(t, owner.Id, post.User.Id)

	retrieved, err := postService.Get(post.Id)
	require.NoError(t, err)
	assert.Equal(t, "First post", retrieved.Title)
	require.NotNil(t, retrieved.User)
	assert.Equal(t, "eve@example.com", retrieved.User.Email)

	posts, err := postService.GetAll()
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	err = postService.Update(post.Id, map[string]any{"title": "Edited"})
	require.NoError(t, err)
	updated, _ := postService.Get(post.Id)
	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, "Hello", updated.Description)

	// empty update set is a no-op
	require.NoError(t, postService.Update(post.Id, map[string]any{}))

	require.NoError(t, postService.Delete(post.Id))
	_, err = postService.Get(post.Id)
	assert.True(t, database.IsNotFound(err))
}
