package controller

import (
	"net/http"

	"postboard/database"
	"postboard/database/model"
	"postboard/web/entity"
	"postboard/web/middleware"
	"postboard/web/service"
	"postboard/web/validation"

	"github.com/gin-gonic/gin"
)

type createUserForm struct {
	Name     string      `json:"name" binding:"required,max=255"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     *model.Role `json:"role" binding:"omitempty,oneof=user admin"`
}

type updateUserForm struct {
	Name  *string     `json:"name" binding:"omitempty,max=255"`
	Email *string     `json:"email" binding:"omitempty,email"`
	Role  *model.Role `json:"role" binding:"omitempty,oneof=user admin"`
}

// UserController handles the admin-gated user management surface. Each
// route is gated by its own ability; only admin tokens carry them.
type UserController struct {
	BaseController
	userService service.UserService
}

func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.GET("", middleware.RequireAbility(model.ViewUsers), a.index)
	g.POST("", middleware.RequireAbility(model.CreateUsers), a.store)
	g.GET("/:id", middleware.RequireAbility(model.ViewUsers), a.getById)
	g.PUT("/:id", middleware.RequireAbility(model.UpdateUsers), a.update)
	g.DELETE("/:id", middleware.RequireAbility(model.DeleteUsers), a.delete)
}

func (a *UserController) index(c *gin.Context) {
	users, err := a.userService.GetAll()
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonSuccess(c, http.StatusOK, "Users retrieved successfully", gin.H{
		"users": users,
	})
}

func (a *UserController) store(c *gin.Context) {
	var form createUserForm
	if apiErr := validation.BindJSON(c, &form); apiErr != nil {
		jsonError(c, apiErr)
		return
	}

	taken, err := a.userService.EmailTaken(form.Email, 0)
	if err != nil {
		jsonError(c, err)
		return
	}
	if taken {
		jsonError(c, entity.Validation(validation.EmailTakenError()))
		return
	}

	role := model.RoleUser
	if form.Role != nil {
		role = *form.Role
	}
	user := &model.User{
		Name:  form.Name,
		Email: form.Email,
		Role:  role,
	}
	if err := a.userService.Create(user, form.Password); err != nil {
		jsonError(c, err)
		return
	}

	jsonSuccess(c, http.StatusCreated, "User created successfully", gin.H{
		"user": user,
	})
}

func (a *UserController) getById(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonError(c, entity.NotFound("User not found"))
		return
	}

	user, err := a.userService.Get(id)
	if database.IsNotFound(err) {
		jsonError(c, entity.NotFound("User not found"))
		return
	} else if err != nil {
		jsonError(c, err)
		return
	}

	jsonSuccess(c, http.StatusOK, "User retrieved successfully", gin.H{
		"user": user,
	})
}

// update applies a partial change. A role change affects only tokens issued
// afterwards; already-issued tokens keep the ability set they were bound to.
func (a *UserController) update(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonError(c, entity.NotFound("User not found"))
		return
	}

	user, err := a.userService.Get(id)
	if database.IsNotFound(err) {
		jsonError(c, entity.NotFound("User not found"))
		return
	} else if err != nil {
		jsonError(c, err)
		return
	}

	var form updateUserForm
	if apiErr := validation.BindJSON(c, &form); apiErr != nil {
		jsonError(c, apiErr)
		return
	}

	if form.Email != nil {
		taken, err := a.userService.EmailTaken(*form.Email, user.Id)
		if err != nil {
			jsonError(c, err)
			return
		}
		if taken {
			jsonError(c, entity.Validation(validation.EmailTakenError()))
			return
		}
	}

	updates := map[string]any{}
	if form.Name != nil {
		updates["name"] = *form.Name
	}
	if form.Email != nil {
		updates["email"] = *form.Email
	}
	if form.Role != nil {
		updates["role"] = *form.Role
	}
	if err := a.userService.Update(user.Id, updates); err != nil {
		jsonError(c, err)
		return
	}

	user, err = a.userService.Get(user.Id)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonSuccess(c, http.StatusOK, "User updated successfully", gin.H{
		"user": user,
	})
}

func (a *UserController) delete(c *gin.Context) {
	id, err := pathId(c)
	if err != nil {
		jsonError(c, entity.NotFound("User not found"))
		return
	}

	if _, err := a.userService.Get(id); database.IsNotFound(err) {
		jsonError(c, entity.NotFound("User not found"))
		return
	} else if err != nil {
		jsonError(c, err)
		return
	}

	if err := a.userService.Delete(id); err != nil {
		jsonError(c, err)
		return
	}
	jsonSuccess(c, http.StatusOK, "User deleted successfully", gin.H{})
}
