package routes

import (
	"permitpro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPackages = "/packages"
)

func addPackageRoutes(rg *gin.RouterGroup, packageHandler *handlers.PackageHandler) {
	packages := rg.Group(PathPackages)
	{
		packages.GET("", packageHandler.List)
		packages.POST("", packageHandler.Create)
		packages.GET("/:id", packageHandler.GetByID)
		packages.PUT("/:id/status", packageHandler.UpdateStatus)
		packages.POST("/:id/documents", packageHandler.AttachDocument)
	}
}
