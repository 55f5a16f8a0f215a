// Package router registers the HTTP routes of the API.
package router

import (
	"tnp/internal/delivery/http/middleware"
	"tnp/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the mount point of every versioned route.
const APIPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	AdminAuthHandler   *handler.AdminAuthHandler
	StudentAuthHandler *handler.StudentAuthHandler
	StudentHandler     *handler.StudentHandler
	DocumentHandler    *handler.DocumentHandler
	ExperienceHandler  *handler.ExperienceHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	adminAuthHandler   *handler.AdminAuthHandler
	studentAuthHandler *handler.StudentAuthHandler
	studentHandler     *handler.StudentHandler
	documentHandler    *handler.DocumentHandler
	experienceHandler  *handler.ExperienceHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adminAuthHandler:   params.AdminAuthHandler,
		studentAuthHandler: params.StudentAuthHandler,
		studentHandler:     params.StudentHandler,
		documentHandler:    params.DocumentHandler,
		experienceHandler:  params.ExperienceHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Welcome)
	e.GET("/health", handler.HealthCheck)

	api := e.Group(APIPrefix, middleware.Dispatch)

	requireStudent := r.authMiddleware.RequireStudent()
	requireAdmin := r.authMiddleware.RequireAdmin()

	// Auth routes
	adminAuth := api.Group("/auth/admin")
	{
		adminAuth.POST("/signup", r.adminAuthHandler.Signup)
		adminAuth.POST("/signin", r.adminAuthHandler.Signin)
		adminAuth.PUT("/update-password", r.adminAuthHandler.UpdatePassword, requireAdmin)
	}

	studentAuth := api.Group("/auth/student")
	{
		studentAuth.POST("/signup", r.studentAuthHandler.Signup)
		studentAuth.POST("/signin", r.studentAuthHandler.Signin)
		studentAuth.PUT("/update-password", r.studentAuthHandler.UpdatePassword, requireStudent)
	}

	// Student profiles; creation and listing stay public
	students := api.Group("/students")
	{
		students.POST("", r.studentHandler.CreateStudent)
		students.GET("", r.studentHandler.ListStudents)
		students.GET("/me", r.studentHandler.GetMe, requireStudent)
	}

	// Auth is attached per route: group middleware would also guard the
	// group's not-found fallback and turn unknown paths into 401.
	documents := api.Group("/documents")
	{
		documents.POST("/presign", r.documentHandler.Presign, requireStudent)
		documents.POST("", r.documentHandler.AddDocument, requireStudent)
		documents.GET("", r.documentHandler.ListDocuments, requireStudent)
	}

	experience := api.Group("/experience")
	{
		experience.POST("", r.experienceHandler.CreateExperience, requireStudent)
		experience.GET("", r.experienceHandler.ListExperiences, requireStudent)
		experience.PUT("/:id", r.experienceHandler.UpdateExperience, requireStudent)
		experience.DELETE("/:id", r.experienceHandler.DeleteExperience, requireStudent)
	}
}
