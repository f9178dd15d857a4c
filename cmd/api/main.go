package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"furnimarket/internal/adapter/api"
	"furnimarket/internal/adapter/api/handler"
	apimiddleware "furnimarket/internal/adapter/api/middleware"
	"furnimarket/internal/adapter/api/router"
	"furnimarket/internal/adapter/repository"
	"furnimarket/internal/domain/service"
	"furnimarket/internal/infrastructure/firebase"
	"furnimarket/internal/infrastructure/localstore"
	"furnimarket/internal/infrastructure/storage"
	"furnimarket/internal/usecase"
	"furnimarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
		serviceAccountPath = ""
	} else {
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient)

	var analyzer service.ImageAnalyzer
	if cfg.AnalyzerEndpoint != "" {
		analyzer = service.NewHTTPImageAnalyzer(cfg.AnalyzerEndpoint)
	}

	favoritesSlot := localstore.New(cfg.FavoritesPath)

	productUseCase := usecase.NewProductUseCase(productRepo, userRepo, analyzer)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	favoritesService := usecase.NewFavoritesService(favoriteRepo, productRepo, favoritesSlot)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, userRepo)
	suggestionService := usecase.NewSuggestionService(productRepo)
	adminUseCase := usecase.NewAdminUseCase(
		productRepo,
		orderRepo,
		userRepo,
		time.Duration(cfg.SearchDebounceMs)*time.Millisecond,
	)

	handler.Setup(
		productUseCase,
		orderUseCase,
		userUseCase,
		favoritesService,
		messageUseCase,
		suggestionService,
		adminUseCase,
	)
	handler.SetupFileHandler(storageClient)
	handler.SetupHealthHandler(firebaseAuthClient)
	handler.SetupDevTokenHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware, firebaseAuthClient)
	router.SetupDevRouter(e, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
