package router

import (
	"patidestek/controllers"
	"patidestek/middleware"

	"github.com/gin-gonic/gin"
)

// Init wires the full route table. Gate order on protected routes is fixed:
// authentication, then ban check, then role check.
func Init(r *gin.Engine) {
	r.GET("/health", controllers.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.Auth(), controllers.Me)
	}

	users := r.Group("/users")
	{
		users.GET("/me", middleware.Auth(), controllers.Me)
		users.GET("", middleware.Auth(), middleware.AdminOnly(), controllers.ListUsers)
		users.PATCH("/:id/role", middleware.Auth(), middleware.AdminOnly(), controllers.UpdateUserRole)
		users.PATCH("/:id/ban", middleware.Auth(), middleware.AdminOnly(), controllers.UpdateUserBan)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", controllers.ListCategories)
		categories.POST("", middleware.Auth(), middleware.AdminOnly(), controllers.CreateCategory)
		categories.PATCH("/:id", middleware.Auth(), middleware.AdminOnly(), controllers.UpdateCategory)
		categories.DELETE("/:id", middleware.Auth(), middleware.AdminOnly(), controllers.DeleteCategory)
	}

	tags := r.Group("/tags")
	{
		tags.GET("", controllers.ListTags)
		tags.POST("", middleware.Auth(), middleware.AdminOnly(), controllers.CreateTag)
		tags.PATCH("/:id", middleware.Auth(), middleware.AdminOnly(), controllers.UpdateTag)
		tags.DELETE("/:id", middleware.Auth(), middleware.AdminOnly(), controllers.DeleteTag)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", controllers.ListPublicPosts)
		posts.GET("/:id", controllers.GetPublicPost)
		posts.POST("", middleware.Auth(), middleware.NotBanned(), controllers.CreatePost)
		posts.PATCH("/:id", middleware.Auth(), controllers.UpdatePost)
		posts.PUT("/:id/tags", middleware.Auth(), middleware.NotBanned(), controllers.UpdatePostTags)
		posts.PATCH("/:id/resolve", middleware.Auth(), controllers.ResolvePost)
		posts.DELETE("/:id", middleware.Auth(), controllers.DeletePost)

		posts.GET("/:id/comments", controllers.ListComments)
		posts.POST("/:id/comments", middleware.Auth(), middleware.NotBanned(), controllers.CreateComment)
	}

	my := r.Group("/my", middleware.Auth())
	{
		my.GET("/posts", controllers.ListMyPosts)
		my.GET("/posts/:id", controllers.GetMyPost)
	}

	admin := r.Group("/admin", middleware.Auth(), middleware.AdminOnly())
	{
		admin.GET("/posts/pending", controllers.ListPendingPosts)
		admin.PATCH("/posts/:id/approve", controllers.ApprovePost)
		admin.PATCH("/posts/:id/reject", controllers.RejectPost)
	}

	r.DELETE("/comments/:id", middleware.Auth(), controllers.DeleteComment)

	reports := r.Group("/comment-reports")
	{
		reports.POST("", middleware.Auth(), middleware.NotBanned(), controllers.CreateReport)
		reports.GET("", middleware.Auth(), middleware.AdminOnly(), controllers.ListReports)
		reports.PATCH("/:id/resolve", middleware.Auth(), middleware.AdminOnly(), controllers.ResolveReport)
		reports.DELETE("/:id", middleware.Auth(), middleware.AdminOnly(), controllers.DeleteReport)
	}

	locations := r.Group("/locations")
	{
		locations.GET("/provinces", controllers.ListProvinces)
		locations.GET("/districts", controllers.ListDistricts)
		locations.GET("/neighbourhoods", controllers.ListNeighbourhoods)
	}
}
