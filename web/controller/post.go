package controller

import (
	"net/http"

	"postboard/database"
	"postboard/database/model"
	"postboard/web/entity"
	"postboard/web/middleware"
	"postboard/web/service"
	"postboard/web/token"
	"postboard/web/validation"

	"github.com/gin-gonic/gin"
)

type createPostForm struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
}

type updatePostForm struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

// PostController handles post CRUD. Every route requires a valid token;
// update and delete additionally require ownership of the post.
type PostController struct {
	BaseController
	postService service.PostService
}

func NewPostController(g *gin.RouterGroup) *PostController {
	a := &PostController{}
	a.initRouter(g)
	return a
}

func (a *PostController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.index)
	g.POST("", middleware.RequireAbility(model.CreatePosts), a.store)
	g.GET("/:id", a.getById)
	g.PUT("/:id", a.update)
	g.DELETE("/:id", a.delete)
}

func (a *PostController) index(c *gin.Context) {
	posts, err := a.postService.GetAll()
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonSuccess(c, http.StatusOK, "Posts retrieved successfully", gin.H{
		"posts": posts,
	})
}

func (a *PostController) store(c *gin.Context) {
	var form createPostForm
	if apiErr := validation.BindJSON(c, &form); apiErr != nil {
		jsonError(c, apiErr)
		return
	}

	identity := token.GetIdentity(c)
	post := &model.Post{
		UserId:      identity.User.Id,
		Title:       form.Title,
		Description: form.Description,
	}
	if err := a.postService.Create(post); err != nil {
		jsonError(c, err)
		return
	}

	jsonSuccess(c, http.StatusCreated, "Post created successfully", gin.H{
		"post": post,
	})
}

func (a *PostController) getById(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonError(c, entity.NotFound("Post not found"))
		return
	}

	post, err := a.postService.Get(id)
	if database.IsNotFound(err) {
		jsonError(c, entity.NotFound("Post not found"))
		return
	} else if err != nil {
		jsonError(c, err)
		return
	}

	jsonSuccess(c, http.StatusOK, "Post retrieved successfully", gin.H{
		"post": post,
	})
}

// update mutates a post after the fetch and ownership checks, in that
// order: a missing id is 404 before any ownership decision.
func (a *PostController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonError(c, entity.NotFound("Post not found"))
		return
	}

	post, err := a.postService.Get(id)
	if database.IsNotFound(err) {
		jsonError(c, entity.NotFound("Post not found"))
		return
	} else if err != nil {
		jsonError(c, err)
		return
	}

	identity := token.GetIdentity(c)
	if post.UserId != identity.User.Id {
		jsonError(c, entity.Forbidden("Unauthorized to update this post"))
		return
	}

	var form updatePostForm
	if apiErr := validation.BindJSON(c, &form); apiErr != nil {
		jsonError(c, apiErr)
		return
	}

	updates := map[string]any{}
	if form.Title != nil {
		updates["title"] = *form.Title
	}
	if form.Description != nil {
		updates["description"] = *form.Description
	}
	if err := a.postService.Update(post.Id, updates); err != nil {
		jsonError(c, err)
		return
	}

	post, err = a.postService.Get(post.Id)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonSuccess(c, http.StatusOK, "Post updated successfully", gin.H{
		"post": post,
	})
}

func (a *PostController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonError(c, entity.NotFound("Post not found"))
		return
	}

	post, err := a.postService.Get(id)
	if database.IsNotFound(err) {
		jsonError(c, entity.NotFound("Post not found"))
		return
	} else if err != nil {
		jsonError(c, err)
		return
	}

	identity := token.GetIdentity(c)
	if post.UserId != identity.User.Id {
		jsonError(c, entity.Forbidden("Unauthorized to delete this post"))
		return
	}

	if err := a.postService.Delete(post.Id); err != nil {
		jsonError(c, err)
		return
	}
	jsonSuccess(c, http.StatusOK, "Post deleted successfully", gin.H{})
}
