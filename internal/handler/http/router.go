package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/natnaelw/vendora/internal/handler/http/middleware"
	usecasecontract "github.com/natnaelw/vendora/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler    *UserHandler
	authHandler    *AuthHandler
	commentHandler *CommentHandler
	userUsecase    usecasecontract.IUserUseCase
}

func NewRouter(userUC usecasecontract.IUserUseCase, commentUC usecasecontract.ICommentUseCase, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		userHandler:    NewUserHandler(userUC),
		authHandler:    NewAuthHandler(userUC, config.GetAppBaseURL()),
		commentHandler: NewCommentHandler(commentUC),
		userUsecase:    userUC,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.CreateUser)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	users := v1.Group("/users")
	{
		users.GET("/profile/:id", r.userHandler.GetUser)
	}

	// Public comment reads. OptionalAuth resolves the viewer so
	// user_reacted flags are per-account; anonymous readers still get
	// the full thread.
	public := v1.Group("/")
	public.Use(middleware.OptionalAuth(r.userUsecase))
	{
		public.GET("/products/:productID/comments", r.commentHandler.GetProductComments)
		public.GET("/products/:productID/comments/count", r.commentHandler.GetProductCommentsCount)
		public.GET("/comments/:commentID", r.commentHandler.GetComment)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.userUsecase))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)

		protected.POST("/comments", r.commentHandler.CreateComment)
		protected.POST("/comments/:commentID/react", r.commentHandler.ToggleReaction)
		protected.DELETE("/comments/:commentID", r.commentHandler.DeleteComment)
	}
}
