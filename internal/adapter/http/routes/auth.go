package routes

import (
	"permitpro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth = "/auth"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}
