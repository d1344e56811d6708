package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/binar-final-project-kelompok7/course-in/internal/http/handlers"
	"github.com/binar-final-project-kelompok7/course-in/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, uh *handlers.UserHandlers, ph *handlers.PolicyHandlers, jwtmw *middleware.AuthMW, pb *middleware.PolicyMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/resend-otp", ah.ResendOTP)
	auth.POST("/login", ah.Login)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.PUT("/confirm-forgot-password", ah.ConfirmForgotPassword)

	users := v1.Group("/users").Use(jwtmw.WithJWT(), pb.Enforce())
	users.GET("/:username", uh.GetUser)
	users.PUT("/update-password/:username", uh.UpdatePassword)

	adm := v1.Group("/admin").Use(jwtmw.WithJWT(), pb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
