package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/R3Claimers/InsiderJobs/auth"
)

// Router groups the job board handlers so they can be mounted under one prefix
type Router struct {
	JWT       *auth.JWTService
	Company   *CompanyHandler
	Jobs      *JobsHandler
	Users     *UserHandler
	Locations *LocationHandler
	Tokens    *TokenHandler
}

// RegisterRootRoutes registers the endpoints served outside the API prefix
func (rt *Router) RegisterRootRoutes(root gin.IRoutes) {
	root.GET("/locations", rt.Locations.GetLocations)
}

// RegisterRoutes registers the job board endpoints on the given router group
func (rt *Router) RegisterRoutes(api *gin.RouterGroup) {
	company := api.Group("/company")
	{
		company.POST("/register", rt.Company.Register)
		company.POST("/login", rt.Company.Login)
	}

	companyProtected := api.Group("/company")
	companyProtected.Use(auth.RequireRole(rt.JWT, auth.RoleCompany))
	{
		companyProtected.GET("/company", rt.Company.GetCompany)
		companyProtected.POST("/post-job", rt.Company.PostJob)
		companyProtected.GET("/applicants", rt.Company.Applicants)
		companyProtected.GET("/list-jobs", rt.Company.ListJobs)
		companyProtected.PATCH("/application-status/:id", rt.Company.ChangeApplicationStatus)
		companyProtected.PATCH("/job-visibility/:id", rt.Company.ChangeVisibility)
		companyProtected.DELETE("/job/:id", rt.Company.DeleteJob)
		companyProtected.GET("/report", rt.Company.Report)
	}

	api.GET("/jobs", rt.Jobs.ListJobs)
	api.GET("/jobs/:id", auth.OptionalAuthMiddleware(rt.JWT), rt.Jobs.GetJob)

	api.POST("/auth/refresh", rt.Tokens.Refresh)

	users := api.Group("/users")
	{
		users.GET("/locations", rt.Locations.GetLocations)
		users.POST("/auth/google", rt.Users.GoogleAuth)
	}

	usersProtected := api.Group("/users")
	usersProtected.Use(auth.RequireRole(rt.JWT, auth.RoleUser))
	{
		usersProtected.GET("/user", rt.Users.GetUser)
		usersProtected.POST("/apply", rt.Users.Apply)
		usersProtected.GET("/applications", rt.Users.Applications)
		usersProtected.PUT("/resume", rt.Users.UpdateResume)
	}
}
