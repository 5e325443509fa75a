package httpserver

import (
	"time"

	audithttp "auth-srv/internal/audit/delivery/http"
	auditPostgre "auth-srv/internal/audit/repository/postgre"
	auditUsecase "auth-srv/internal/audit/usecase"
	"auth-srv/internal/auth"
	authhttp "auth-srv/internal/auth/delivery/http"
	authUsecase "auth-srv/internal/auth/usecase"
	"auth-srv/internal/middleware"
	"auth-srv/internal/token"
	tokenhttp "auth-srv/internal/token/delivery/http"
	tokenUsecase "auth-srv/internal/token/usecase"
	userhttp "auth-srv/internal/user/delivery/http"
	userPostgre "auth-srv/internal/user/repository/postgre"
	userUsecase "auth-srv/internal/user/usecase"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	// Initialize repositories
	userRepo := userPostgre.New(srv.postgresDB, srv.l)
	auditRepo := auditPostgre.New(srv.postgresDB, srv.l)

	// Initialize usecases
	auditUC := auditUsecase.New(srv.l, auditRepo, srv.producer)
	userUC := userUsecase.New(srv.l, userRepo)
	authUC := authUsecase.New(srv.l, userUC, srv.redisClient, srv.encrypter, auditUC, auth.Config{
		SessionTTL: time.Duration(srv.config.Session.TTL) * time.Second,
	})
	tokenUC := tokenUsecase.New(srv.l, srv.jwtManager, auditUC, token.Config{
		RefreshWindow: time.Duration(srv.config.JWT.RefreshWindow) * time.Second,
	})

	mw := middleware.New(srv.l, authUC, authhttp.SessionCookieName)
	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize HTTP handlers
	authHandler := authhttp.New(srv.l, authUC, srv.discord)
	tokenHandler := tokenhttp.New(srv.l, tokenUC, srv.discord)
	userHandler := userhttp.New(srv.l, userUC, srv.discord)
	auditHandler := audithttp.New(srv.l, auditUC, srv.discord)

	// Map routes
	root := srv.gin.Group("")
	authHandler.RegisterRoutes(root, mw)
	tokenHandler.RegisterRoutes(root, mw)
	userHandler.RegisterRoutes(root, mw)
	auditHandler.RegisterRoutes(root, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(mw.ClientIP())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
