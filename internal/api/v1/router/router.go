package router

import (
	"database/sql"
	"net/http"

	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/database"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/sec"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New builds the route table and everything behind it. The returned handler
// is constructed once at startup and owned by the caller; the *sql.DB is
// returned so the caller can close it on shutdown.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	// 1. Open DB connection (connection pooling) and migrate the schema
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, nil, err
	}

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize repositories & services & handlers
	hasher := sec.NewBcryptHasher(cfg.BcryptCost)

	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)

	userSvc := service.NewUserService(userRepo, hasher)
	courseSvc := service.NewCourseService(courseRepo)

	userHandler := handler.NewUserHandler(userSvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)

	// 4. Initialize middleware
	authMiddleware := middleware.BasicAuth(userSvc, logger)

	// 5. Create ServeMux router
	mux := http.NewServeMux()
	userHandler.RegisterRoutes(mux, authMiddleware)
	courseHandler.RegisterRoutes(mux, authMiddleware)

	// 6. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.RequestLogger(logger)(c.Handler(mux)), db, nil
}
