package main

import (
	"log"
	"net/http"
	"os"

	"blog-api/authz"
	"blog-api/config"
	"blog-api/handlers"
	"blog-api/middleware"
	"blog-api/repositories"
	"blog-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Authorization engine with the default role table
	engine := authz.NewEngine(authz.DefaultRolePermissions())

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, engine)
	postService := services.NewPostService(postRepo, engine)
	commentService := services.NewCommentService(commentRepo, postRepo, engine)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	requireAuth := middleware.AuthMiddleware(authService)
	optionalAuth := middleware.OptionalAuthMiddleware(authService)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)

			// Admin user management
			users := auth.Group("/users")
			users.Use(requireAuth)
			{
				users.GET("", middleware.RequirePermission(engine, authz.PermManageUsers), userHandler.ListUsers)
				users.POST("", middleware.RequirePermission(engine, authz.PermManageUsers), userHandler.CreateUser)
				users.PUT("/:id", middleware.RequirePermission(engine, authz.PermManageUsers), userHandler.UpdateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		// Posts
		posts := v1.Group("/posts")
		{
			posts.GET("", optionalAuth, postHandler.ListPosts)
			posts.GET("/:id", postHandler.GetPost)
			posts.POST("", requireAuth, middleware.RequirePermission(engine, authz.PermCreatePost), postHandler.CreatePost)
			posts.PUT("/:id", requireAuth, postHandler.UpdatePost)
			posts.DELETE("/:id", requireAuth, postHandler.DeletePost)
			posts.PUT("/:id/like", requireAuth, postHandler.ToggleLike)
			posts.POST("/:id/comments", requireAuth, middleware.RequirePermission(engine, authz.PermCreateComment), commentHandler.AddComment)
		}

		// Comments
		v1.DELETE("/comments/:id", requireAuth, commentHandler.DeleteComment)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
