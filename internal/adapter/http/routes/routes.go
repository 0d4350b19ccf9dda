package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "permitpro/docs" // This will be auto-generated
	"permitpro/internal/adapter/http/handlers"
	"permitpro/internal/adapter/http/middlewares"
	repository2 "permitpro/internal/adapter/persistence/repository"
	"permitpro/internal/infrastructure/auth"
	"permitpro/internal/infrastructure/database"
	"permitpro/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid PORT %q: %v", raw, err)
		}
		port = parsed
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	userRepo := repository2.NewUserDynamoRepository(ddb)
	packageRepo := repository2.NewPackageDynamoRepository(ddb)
	documentRepo := repository2.NewDocumentDynamoRepository(ddb)
	checklistRepo := repository2.NewChecklistItemDynamoRepository(ddb)

	provider := auth.NewJWTProvider(jwtSecret(), jwtTTL())

	authUseCase := usecase.NewAuthUseCase(userRepo, provider)
	packageUseCase := usecase.NewPackageUseCase(packageRepo, documentRepo, checklistRepo, listingScope())

	authHandler := handlers.NewAuthHandler(authUseCase)
	packageHandler := handlers.NewPackageHandler(packageUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas protegidas
	protected := v1.Group("", middlewares.Authenticate(provider))
	addPackageRoutes(protected, packageHandler)
}

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("[routes] JWT_SECRET not set, using development secret")
		secret = "dev-secret-do-not-use-in-production"
	}
	return secret
}

func jwtTTL() time.Duration {
	hours := 24
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			log.Fatalf("Invalid JWT_TTL_HOURS %q", raw)
		}
		hours = parsed
	}
	return time.Duration(hours) * time.Hour
}

func listingScope() usecase.ListingScope {
	if os.Getenv("PACKAGE_LISTING_SCOPE") == string(usecase.ListingScopeAll) {
		return usecase.ListingScopeAll
	}
	return usecase.ListingScopeOwner
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
