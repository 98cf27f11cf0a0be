package controller

import (
	"net/http"

	"postboard/database/model"
	"postboard/web/entity"
	"postboard/web/service"
	"postboard/web/token"
	"postboard/web/validation"

	"github.com/gin-gonic/gin"
)

// tokenName labels every token minted through register/login.
const tokenName = "api-token"

type registerForm struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles registration, login and the profile lookup.
type AuthController struct {
	BaseController
	userService  service.UserService
	tokenService service.TokenService
}

// NewAuthController registers the public auth routes on api and the profile
// route on the token-protected group.
func NewAuthController(api *gin.RouterGroup, protected *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	api.POST("/register", a.register)
	api.POST("/login", a.login)
	protected.GET("/me", a.me)
	return a
}

// register creates an account and issues a token with the non-admin ability
// set. Role is never taken from the payload here; admin accounts come from
// the user-management surface.
func (a *AuthController) register(c *gin.Context) {
	var form registerForm
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

	user := &model.User{
		Name:  form.Name,
		Email: form.Email,
		Role:  model.RoleUser,
	}
	if err := a.userService.Create(user, form.Password); err != nil {
		jsonError(c, err)
		return
	}

	plain, err := a.tokenService.Issue(user, tokenName, model.AbilitiesForRole(model.RoleUser))
	if err != nil {
		jsonError(c, err)
		return
	}

	jsonSuccess(c, http.StatusOK, "User registered successfully", gin.H{
		"user":  user,
		"token": plain,
	})
}

// login verifies credentials and issues a token whose ability set reflects
// the user's current role. Prior tokens stay valid.
func (a *AuthController) login(c *gin.Context) {
	var form loginForm
	if apiErr := validation.BindJSON(c, &form); apiErr != nil {
		jsonError(c, apiErr)
		return
	}

	user := a.userService.CheckUser(form.Email, form.Password)
	if user == nil {
		jsonError(c, entity.Unauthenticated("Invalid credentials"))
		return
	}

	plain, err := a.tokenService.Issue(user, tokenName, model.AbilitiesForRole(user.Role))
	if err != nil {
		jsonError(c, err)
		return
	}

	jsonSuccess(c, http.StatusOK, "User login successfully", gin.H{
		"user":  user,
		"token": plain,
	})
}

func (a *AuthController) me(c *gin.Context) {
	identity := token.GetIdentity(c)
	if identity == nil {
		jsonError(c, entity.Unauthenticated("Unauthenticated"))
		return
	}
	jsonSuccess(c, http.StatusOK, "User profile retrieved successfully", gin.H{
		"user": identity.User,
	})
}
