package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/franchise-api/docs"
	v1 "github.com/vietanh2810/franchise-api/internal/api/handler/v1"
	"github.com/vietanh2810/franchise-api/internal/api/middleware"
	"github.com/vietanh2810/franchise-api/internal/config"
	"github.com/vietanh2810/franchise-api/internal/events"
	"github.com/vietanh2810/franchise-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/franchise-api/internal/repository"
	"github.com/vietanh2810/franchise-api/internal/repository/dao"
	"github.com/vietanh2810/franchise-api/internal/service"
)

type Server struct {
	Config   *config.AppConfig
	Router   *gin.Engine
	Registry *prometheus.Registry

	auth *middleware.Authenticator
}

type handlers struct {
	auth       *v1.AuthHandler
	user       *v1.UserHandler
	franchise  *v1.FranchiseHandler
	catalog    *v1.CatalogHandler
	ingredient *v1.IngredientHandler
	stock      *v1.StockHandler
	command    *v1.CommandHandler
	health     *v1.HealthHandler
}

type repositories struct {
	users       *repository.UserRepository
	sessions    *repository.SessionRepository
	franchises  *repository.FranchiseRepository
	suppliers   *repository.SupplierRepository
	categories  *repository.CategoryRepository
	ingredients *repository.IngredientRepository
	stocks      *repository.StockRepository
	commands    *repository.CommandRepository
}

func NewServer(conf *config.AppConfig, db *gorm.DB, rdb *redis.Client) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	publicKey, err := jwthelper.ParsePublicKey(conf.Auth.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("jwthelper.ParsePublicKey -> %w", err)
	}

	s := &Server{
		Config:   conf,
		Router:   engine,
		Registry: prometheus.NewRegistry(),
		auth:     middleware.NewAuthenticator(publicKey),
	}
	s.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s.MountMiddlewares()

	h, err := s.initHandlers(db, rdb)
	if err != nil {
		return nil, err
	}
	s.MountHandlers(h)

	return s, nil
}

func initRepositories(db *gorm.DB, rdb *redis.Client) repositories {
	return repositories{
		users:       repository.NewUserRepository(dao.NewUserDAO(db)),
		sessions:    repository.NewSessionRepository(dao.NewSessionDAO(rdb)),
		franchises:  repository.NewFranchiseRepository(dao.NewFranchiseDAO(db)),
		suppliers:   repository.NewSupplierRepository(dao.NewSupplierDAO(db)),
		categories:  repository.NewCategoryRepository(dao.NewCategoryDAO(db)),
		ingredients: repository.NewIngredientRepository(dao.NewIngredientDAO(db)),
		stocks:      repository.NewStockRepository(dao.NewStockDAO(db)),
		commands:    repository.NewCommandRepository(dao.NewCommandDAO(db)),
	}
}

func (s *Server) initHandlers(db *gorm.DB, rdb *redis.Client) (*handlers, error) {
	repos := initRepositories(db, rdb)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}

	authSvc, err := s.initAuthService(repos)
	if err != nil {
		return nil, err
	}

	bus := events.NewCommandBus(rdb)

	return &handlers{
		auth:      v1.NewAuthHandler(s.Config.Auth, authSvc),
		user:      v1.NewUserHandler(service.NewUserService(repos.users, repos.franchises)),
		franchise: v1.NewFranchiseHandler(service.NewFranchiseService(repos.franchises)),
		catalog: v1.NewCatalogHandler(
			service.NewSupplierService(repos.suppliers),
			service.NewCategoryService(repos.categories),
		),
		ingredient: v1.NewIngredientHandler(service.NewIngredientService(repos.ingredients, repos.suppliers, repos.categories)),
		stock:      v1.NewStockHandler(service.NewStockService(repos.stocks, repos.franchises, repos.ingredients)),
		command: v1.NewCommandHandler(
			service.NewCommandService(repos.commands, repos.franchises, repos.ingredients, bus),
			s.Config.API.AllowedCORSDomains,
		),
		health: v1.NewHealthHandler(sqlDB, rdb),
	}, nil
}

// initAuthService returns a service without signing key when the private key
// is not configured. Login and refresh are not mounted in that case.
func (s *Server) initAuthService(repos repositories) (*service.AuthService, error) {
	conf := s.Config.Auth
	if !conf.CanIssueTokens() {
		return service.NewAuthService(repos.users, repos.sessions, nil, conf.AccessTTL, conf.RefreshTTL), nil
	}

	privateKey, err := jwthelper.ParsePrivateKey(conf.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("jwthelper.ParsePrivateKey -> %w", err)
	}

	return service.NewAuthService(repos.users, repos.sessions, privateKey, conf.AccessTTL, conf.RefreshTTL), nil
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.NewMetrics(s.Registry).Handler())
}

func (s *Server) MountHandlers(h *handlers) {
	const basePath = "/api"

	auth := s.Router.Group(basePath + "/auth")
	{
		if s.Config.Auth.CanIssueTokens() {
			auth.POST("/login", h.auth.HandleLogin)
			auth.POST("/refresh", h.auth.HandleRefresh)
		}
		auth.POST("/logout", h.auth.HandleLogout)
		auth.POST("/register-admin", h.auth.HandleRegisterAdmin)
		auth.GET("/session", s.auth.OptionalJWT(), h.auth.HandleSession)
	}

	api := s.Router.Group(basePath, s.auth.VerifyJWT())
	admin := api.Group("", middleware.RequireAdmin())

	{
		api.GET("/users", h.user.HandleListUsers)
		api.GET("/users/:id", h.user.HandleGetUser)
		api.POST("/users", h.user.HandleCreateUser)
		api.DELETE("/users/:id", h.user.HandleDeleteUser)
	}

	{
		api.GET("/franchises", h.franchise.HandleListFranchises)
		api.GET("/franchises/:id", h.franchise.HandleGetFranchise)
		api.PATCH("/franchises/:id", h.franchise.HandleUpdateFranchise)
		admin.POST("/franchises", h.franchise.HandleCreateFranchise)
		admin.DELETE("/franchises/:id", h.franchise.HandleDeleteFranchise)
	}

	{
		api.GET("/suppliers", h.catalog.HandleListSuppliers)
		api.GET("/suppliers/:id", h.catalog.HandleGetSupplier)
		admin.POST("/suppliers", h.catalog.HandleCreateSupplier)
		admin.PATCH("/suppliers/:id", h.catalog.HandleUpdateSupplier)
		admin.DELETE("/suppliers/:id", h.catalog.HandleDeleteSupplier)

		api.GET("/categories", h.catalog.HandleListCategories)
		api.GET("/categories/:id", h.catalog.HandleGetCategory)
		admin.POST("/categories", h.catalog.HandleCreateCategory)
		admin.PATCH("/categories/:id", h.catalog.HandleRenameCategory)
		admin.DELETE("/categories/:id", h.catalog.HandleDeleteCategory)

		api.GET("/ingredients", h.ingredient.HandleListIngredients)
		api.GET("/ingredients/:id", h.ingredient.HandleGetIngredient)
		admin.POST("/ingredients", h.ingredient.HandleCreateIngredient)
		admin.PATCH("/ingredients/:id", h.ingredient.HandleUpdateIngredient)
		admin.DELETE("/ingredients/:id", h.ingredient.HandleDeleteIngredient)
	}

	{
		api.GET("/stocks", h.stock.HandleListStocks)
		api.GET("/stocks/export", h.stock.HandleExportStocks)
		api.POST("/stocks/import", h.stock.HandleImportStocks)
		api.GET("/stocks/:id", h.stock.HandleGetStock)
		api.POST("/stocks", h.stock.HandleCreateStock)
		api.PATCH("/stocks/:id", h.stock.HandleUpdateStock)
		api.DELETE("/stocks/:id", h.stock.HandleDeleteStock)
	}

	{
		api.GET("/commands", h.command.HandleListCommands)
		api.GET("/commands/:id", h.command.HandleGetCommand)
		api.GET("/commands/:id/track", h.command.HandleTrackCommand)
		api.POST("/commands", h.command.HandleCreateCommand)
		api.PATCH("/commands/:id/status", h.command.HandleUpdateCommandStatus)
		api.DELETE("/commands/:id", h.command.HandleDeleteCommand)
	}

	s.Router.GET("/healthz", h.health.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Franchise supply API"
	docs.SwaggerInfo.Description = "Franchises, ingredient catalog, stock and supply commands."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
