package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binar-final-project-kelompok7/course-in/internal/config"
	httpx "github.com/binar-final-project-kelompok7/course-in/internal/http"
	"github.com/binar-final-project-kelompok7/course-in/internal/http/handlers"
	"github.com/binar-final-project-kelompok7/course-in/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	userH := handlers.NewUserHandlers(c.AuthSvc)
	polH := handlers.NewPolicyHandlers(c.PolicySvc)

	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	policyMW := middleware.NewPolicyMW(c.PolicySvc)

	r := httpx.BuildRouter(authH, userH, polH, jwtMW, policyMW)

	seedDefaultPolicies(c)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

func seedDefaultPolicies(c *Container) {
	policies, _ := c.Enforcer.GetPolicy()
	if len(policies) > 0 {
		return
	}
	c.Enforcer.AddPolicy("role_admin", "/api/v1/admin/*", "(GET|POST|PUT|DELETE)")
	c.Enforcer.AddPolicy("role_user", "/api/v1/users/*", "(GET|PUT)")
	_ = c.Enforcer.SavePolicy()
	log.Println("casbin: seeded default policies")
}
