package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/prodsub/prodsub/internal/catalog"
	"github.com/prodsub/prodsub/internal/catalog/products"
	"github.com/prodsub/prodsub/internal/catalog/users"
	"github.com/prodsub/prodsub/internal/config"
)

// AppState holds all application services
type AppState struct {
	Catalog        *catalog.Catalog
	UserService    users.UserService
	ProductService products.ProductService
	Logger         *zap.Logger
	Config         *config.Config
}

func main() {
	// Load configuration
	config.Load()

	// Initialize logger with config
	logger := initLogger()
	logger.Info("Configuration loaded", zap.String("source", "config.Load()"))

	// Initialize application state
	as := newAppState(logger)

	// Create HTTP server
	router := setupRouter(as)

	// Server configuration from config
	addr := fmt.Sprintf("%s:%d", config.Http().Host, config.Http().Port)

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Setup graceful shutdown
	done := setupSignalHandler(server, logger)

	// Seed demo data when enabled
	if config.Demo().SeedData {
		if err := catalog.SeedDemoData(context.Background(), as.Catalog); err != nil {
			logger.Error("Failed to seed demo data", zap.Error(err))
			// Continue anyway - the stores just start empty
		}
	}

	// Start server
	logger.Info("Starting prodsub server", zap.String("address", addr))

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	<-done
	logger.Info("Server shutdown complete")
}

// newAppState creates and initializes the application state
func newAppState(logger *zap.Logger) *AppState {
	userService := users.NewUserService(users.NewInMemoryStore())
	productService := products.NewProductService(products.NewInMemoryStore())

	return &AppState{
		Catalog:        catalog.NewCatalog(userService, productService, logger),
		UserService:    userService,
		ProductService: productService,
		Logger:         logger,
		Config:         config.Get(),
	}
}

func initLogger() *zap.Logger {
	logConfig := config.Logger()

	var config zap.Config
	if logConfig.Format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	// Set log level
	switch logConfig.Level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}

func setupRouter(as *AppState) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add CORS middleware
	router.Use(cors.Default())

	// Add logging middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Health endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	usersGroup := router.Group("/users")
	{
		usersGroup.GET("", listUsers(as))
		usersGroup.GET("/:userId", getUser(as))
		usersGroup.GET("/:userId/subscribed", listSubscribed(as))
		usersGroup.GET("/:userId/followers", listFollowers(as))
		usersGroup.POST("", createUser(as))
		usersGroup.DELETE("/:userId", deleteUser(as))
		usersGroup.PUT("/:userId/subscribe/:targetId", subscribeUser(as))
		usersGroup.PUT("/:userId/unsubscribe/:targetId", unsubscribeUser(as))
	}

	productsGroup := router.Group("/products")
	{
		productsGroup.GET("", listProducts(as))
		productsGroup.GET("/:productId", getProduct(as))
		productsGroup.GET("/by-user/:userId", listProductsByUser(as))
		productsGroup.GET("/by-subscriptions/:userId", listProductsFromSubscriptions(as))
		productsGroup.POST("", createProduct(as))
		productsGroup.DELETE("/:productId", deleteProduct(as))
		productsGroup.PUT("/:productId/price", updateProductPrice(as))
	}

	return router
}

func setupSignalHandler(server *http.Server, logger *zap.Logger) chan struct{} {
	done := make(chan struct{}, 1)

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalCh

		logger.Info("Shutting down server...")

		// Create context with timeout for graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Shutdown server
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during server shutdown", zap.Error(err))
		}

		done <- struct{}{}
	}()

	return done
}

// parseIDParam parses a uuid path parameter, writing a 400 response when it
// is malformed
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps the catalog error taxonomy onto HTTP status codes
func writeError(c *gin.Context, as *AppState, err error) {
	switch {
	case catalog.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case catalog.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case catalog.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		as.Logger.Error("Unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// User handlers

func listUsers(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := as.Catalog.ListUsers(c.Request.Context())
		if err != nil {
			writeError(c, as, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func getUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "userId")
		if !ok {
			return
		}

		user, err := as.Catalog.GetUser(c.Request.Context(), userID)
		if err != nil {
			writeError(c, as, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func listSubscribed(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "userId")
		if !ok {
			return
		}

		ids, err := as.Catalog.ListSubscribed(c.Request.Context(), userID)
		if err != nil {
			writeError(c, as, err)
			return
		}
		c.JSON(http.StatusOK, ids)
	}
}

func listFollowers(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "userId")
		if !ok {
			return
		}

		ids, err := as.Catalog.ListFollowers(c.Request.Context(), userID)
		if err != nil {
			writeError(c, as, err)
			return
		}
		c.JSON(http.StatusOK, ids)
	}
}

func createUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req users.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		user, err := as.Catalog.CreateUser(c.Request.Context(), &req)
		if err != nil {
			writeError(c, as, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func deleteUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "userId")
		if !ok {
			return
		}

		if err := as.Catalog.DeleteUser(c.Request.Context(), userID); err != nil {
			writeError(c, as, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func subscribeUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "userId")
		if !ok {
			return
		}
		targetID, ok := parseIDParam(c, "targetId")
		if !ok {
			return
		}

		if err := as.Catalog.Subscribe(c.Request.Context(), userID, targetID); err != nil {
			writeError(c, as, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func unsubscribeUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "userId")
		if !ok {
			return
		}
		targetID, ok := parseIDParam(c, "targetId")
		if !ok {
			return
		}

		if err := as.Catalog.Unsubscribe(c.Request.Context(), userID, targetID); err != nil {
			writeError(c, as, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Product handlers

func listProducts(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := as.Catalog.ListProducts(c.Request.Context())
		if err != nil {
			writeError(c, as, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func getProduct(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseIDParam(c, "productId")
		if !ok {
			return
		}

		product, err := as.Catalog.GetProduct(c.Request.Context(), productID)
		if err != nil {
			writeError(c, as, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func listProductsByUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "userId")
		if !ok {
			return
		}

		list, err := as.Catalog.ListProductsByCreator(c.Request.Context(), userID)
		if err != nil {
			writeError(c, as, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func listProductsFromSubscriptions(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "userId")
		if !ok {
			return
		}

		list, err := as.Catalog.ListProductsFromSubscriptions(c.Request.Context(), userID)
		if err != nil {
			writeError(c, as, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func createProduct(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req products.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		product, err := as.Catalog.CreateProduct(c.Request.Context(), &req)
		if err != nil {
			writeError(c, as, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func deleteProduct(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseIDParam(c, "productId")
		if !ok {
			return
		}

		if err := as.Catalog.DeleteProduct(c.Request.Context(), productID); err != nil {
			writeError(c, as, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func updateProductPrice(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseIDParam(c, "productId")
		if !ok {
			return
		}

		var req products.UpdatePriceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		if _, err := as.Catalog.UpdatePrice(c.Request.Context(), productID, req.Price); err != nil {
			writeError(c, as, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
