package main

import (
	"github.com/gin-gonic/gin"
	"lawconnect.backend/internal/interfaces/http/handlers"
	"lawconnect.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	caseHandler     *handlers.CaseHandler
	clientHandler   *handlers.ClientHandler
	feeHandler      *handlers.FeeHandler
	userHandler     *handlers.UserHandler
	uploadHandler   *handlers.UploadHandler
	authMiddleware  gin.HandlerFunc
	adminMiddleware gin.HandlerFunc
	authRateLimit   gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited per IP)
		auth := api.Group("/auth")
		auth.Use(d.authRateLimit)
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.POST("/advocate", d.authHandler.RequestOTP)
			auth.POST("/verifyotp", d.authHandler.VerifyOTP)
			auth.POST("/existing", d.authHandler.VerifySecret)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
			auth.GET("/verify-token", d.authHandler.VerifyToken)
		}

		cases := api.Group("/cases")
		{
			cases.GET("/getcases", d.authMiddleware, d.caseHandler.ListCases)
			cases.POST("/createcase", d.authMiddleware, middleware.IdempotencyMiddleware(), d.caseHandler.CreateCase)
			cases.PUT("/updatecase/:case_ref_no", d.authMiddleware, d.caseHandler.UpdateCase)
			cases.DELETE("/deletecase/:case_ref_no", d.authMiddleware, d.caseHandler.DeleteCase)
			cases.GET("/hearings", d.authMiddleware, d.caseHandler.Hearings)
			cases.GET("/pendingcases", d.authMiddleware, d.caseHandler.PendingCases)
			cases.GET("/toknowc", d.adminMiddleware, d.caseHandler.ListAllCases)
		}

		clients := api.Group("/clients")
		{
			clients.GET("/clients", d.authMiddleware, d.clientHandler.ListClients)
			clients.POST("/createclient", d.authMiddleware, middleware.IdempotencyMiddleware(), d.clientHandler.CreateClient)
			clients.GET("/toknowcl", d.adminMiddleware, d.clientHandler.ListAllClients)
			clients.GET("/:case_ref_no", d.authMiddleware, d.clientHandler.GetClient)
		}

		fees := api.Group("/fees")
		fees.Use(d.authMiddleware)
		{
			fees.GET("/getfees", d.feeHandler.ListFees)
			fees.POST("/createfee", middleware.IdempotencyMiddleware(), d.feeHandler.CreateFee)
			fees.PUT("/updatefee/:id", d.feeHandler.UpdateFee)
			fees.DELETE("/deletefee/:id", d.feeHandler.DeleteFee)
		}

		users := api.Group("/users")
		{
			users.GET("/profile", d.authMiddleware, d.userHandler.GetProfile)
			users.PUT("/updateProfile", d.authMiddleware, d.userHandler.UpdateProfile)
			users.DELETE("/deleteadv/:email", d.adminMiddleware, d.userHandler.DeleteUser)
			users.GET("/toknow", d.adminMiddleware, d.userHandler.ListUsers)
		}

		api.POST("/upload/avatar", d.authMiddleware, d.uploadHandler.UploadAvatar)
	}
}
