// Package controller provides the HTTP request handlers of the postboard
// API: authentication, post management and admin user management.
package controller

// BaseController provides common functionality shared by all controllers.
type BaseController struct{}
