package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/MathLeoYa/inmobiliaria/internal/app"
	"github.com/MathLeoYa/inmobiliaria/internal/config"
	"github.com/MathLeoYa/inmobiliaria/internal/controllers"
	"github.com/MathLeoYa/inmobiliaria/internal/middleware"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/routes"
	"github.com/MathLeoYa/inmobiliaria/internal/services"
	"github.com/MathLeoYa/inmobiliaria/internal/storage"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	accountRepo := repositories.NewAccountRepository(application.DB)
	propertyRepo := repositories.NewPropertyRepository(application.DB)
	favoriteRepo := repositories.NewFavoriteRepository(application.DB)
	planRepo := repositories.NewPlanRepository(application.DB)
	subscriptionRepo := repositories.NewSubscriptionRepository(application.DB)
	notificationRepo := repositories.NewNotificationRepository(application.DB)
	locationRepo := repositories.NewLocationRepository(application.DB)
	siteConfigRepo := repositories.NewSiteConfigRepository(application.DB)

	if cfg.SeedData {
		if err := app.SeedBaseData(context.Background(), application); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed base data")
		}
		utils.Logger.Info("Seeded base data successfully")
	}

	notificationService := services.NewNotificationService(notificationRepo, accountRepo)
	authService := services.NewAuthService(accountRepo, cfg.JWTSecret)
	accountService := services.NewAccountService(accountRepo, notificationService)
	propertyService := services.NewPropertyService(propertyRepo, subscriptionRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, propertyRepo)
	planService := services.NewPlanService(planRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, planRepo, accountRepo, notificationService)
	maintenanceService := services.NewMaintenanceService(subscriptionRepo, notificationService)

	authController := controllers.NewAuthController(authService)
	propertyController := controllers.NewPropertyController(propertyService)
	favoriteController := controllers.NewFavoriteController(favoriteService)
	userController := controllers.NewUserController(accountService)
	planController := controllers.NewPlanController(planService)
	subscriptionController := controllers.NewSubscriptionController(subscriptionService)
	notificationController := controllers.NewNotificationController(notificationService)
	locationController := controllers.NewLocationController(locationRepo, siteConfigRepo)
	healthController := controllers.NewHealthController(application)

	router := mux.NewRouter()
	router.Use(middleware.Metrics)

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.Handle(routes.Metrics, promhttp.Handler()).Methods(http.MethodGet)

	// Credential endpoints sit behind the fixed-window limiter.
	authLimited := router.NewRoute().Subrouter()
	authLimited.Use(middleware.RateLimit(application.Redis, cfg.RateLimit, cfg.RateLimitWindow))
	authLimited.HandleFunc(routes.AuthRegister, authController.RegisterHandler).Methods(http.MethodPost)
	authLimited.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Plans, planController.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Provinces, locationController.ProvincesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ProvinceCities, locationController.CitiesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SiteConfig, locationController.SiteConfigHandler).Methods(http.MethodGet)

	// Secured. Registered before the browse subrouter so that
	// /properties/mine wins over the /properties/{id} detail route.
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.Auth(accountRepo, cfg.JWTSecret))

	secured.HandleFunc(routes.PropertiesMine, propertyController.MyListingsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Properties, propertyController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PropertyByID, propertyController.UpdateHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.PropertyByID, propertyController.DeleteHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.Favorites, favoriteController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.FavoriteByID, favoriteController.ToggleHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.UsersMe, userController.ProfileHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UsersMe, userController.UpdateProfileHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.UsersAgentIntent, userController.AgentRequestHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.SubscriptionsMe, subscriptionController.MyPlanHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.Notifications, notificationController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.NotificationsRead, notificationController.MarkAllReadHandler).Methods(http.MethodPost)

	// Public browse with optional viewer identity; requests the secured
	// subrouter did not match fall through to these.
	browse := router.NewRoute().Subrouter()
	browse.Use(middleware.OptionalAuth(cfg.JWTSecret))
	browse.HandleFunc(routes.Properties, propertyController.CatalogHandler).Methods(http.MethodGet)
	browse.HandleFunc(routes.PropertyByID, propertyController.DetailHandler).Methods(http.MethodGet)

	if cfg.S3.Bucket != "" {
		store, err := storage.NewS3ImageStore(context.Background(), cfg.S3)
		if err != nil {
			utils.Logger.WithError(err).Fatal("Failed to initialize image store")
		}
		uploadController := controllers.NewUploadController(store)
		secured.HandleFunc(routes.Uploads, uploadController.UploadImageHandler).Methods(http.MethodPost)
	} else {
		utils.Logger.Warn("S3_BUCKET unset; uploads endpoint disabled")
	}

	// Admin
	admin := router.NewRoute().Subrouter()
	admin.Use(middleware.Auth(accountRepo, cfg.JWTSecret), middleware.RequireAdmin)

	admin.HandleFunc(routes.AdminAgentRequests, userController.ListAgentRequestsHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminAgentRequestByID, userController.DecideAgentRequestHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.AdminAgents, userController.ListAgentsHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminAgentActivation, userController.AgentActivationHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.AdminAccountByID, userController.DeleteAccountHandler).Methods(http.MethodDelete)
	admin.HandleFunc(routes.AdminAccountProperties, propertyController.OwnerListingsHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminPlans, planController.CreateHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.AdminPlanByID, planController.UpdateHandler).Methods(http.MethodPut)
	admin.HandleFunc(routes.AdminSubscriptions, subscriptionController.AssignHandler).Methods(http.MethodPost)

	// Daily subscription expiry sweep. Correctness does not depend on it;
	// the quota evaluator already ignores past-end subscriptions.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		maintenanceService.ExpireDueSubscriptions(context.Background())
	}); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule subscription sweep")
	}
	scheduler.Start()
	defer scheduler.Stop()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	utils.Logger.Infof("%s listening on port %s", config.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, corsHandler); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
