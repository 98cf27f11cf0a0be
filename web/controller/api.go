package controller

import (
	"postboard/web/middleware"

	"github.com/gin-gonic/gin"
)

// APIController wires the /api route tree: public auth routes plus the
// token-protected post and user surfaces.
type APIController struct {
	BaseController
	authController *AuthController
	postController *PostController
	userController *UserController
}

func NewAPIController(g *gin.RouterGroup) *APIController {
	a := &APIController{}
	a.initRouter(g)
	return a
}

func (a *APIController) initRouter(g *gin.RouterGroup) {
	api := g.Group("/api")

	protected := api.Group("")
	protected.Use(middleware.TokenAuth())

	a.authController = NewAuthController(api, protected)
	a.postController = NewPostController(protected.Group("/posts"))
	a.userController = NewUserController(protected.Group("/users"))
}
