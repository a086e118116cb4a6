package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"hanaplokal/internal/adapter/api"
	"hanaplokal/internal/adapter/api/handler"
	apimiddleware "hanaplokal/internal/adapter/api/middleware"
	"hanaplokal/internal/adapter/api/router"
	"hanaplokal/internal/adapter/repository"
	"hanaplokal/internal/infrastructure/firebase"
	"hanaplokal/internal/infrastructure/push"
	"hanaplokal/internal/infrastructure/storage"
	"hanaplokal/internal/infrastructure/websocket"
	"hanaplokal/internal/usecase"
	"hanaplokal/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	// Service account JSON from the environment in production, a key file
	// locally.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
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

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	profileRepo := repository.NewFirestoreBusinessProfileRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)
	pushClient := push.NewExpoClient(cfg.ExpoPushURL)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	profileUseCase := usecase.NewBusinessProfileUseCase(profileRepo, listingRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, profileRepo)
	discoveryUseCase := usecase.NewDiscoveryUseCase(profileRepo, listingRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, userRepo, pushClient)
	chatUseCase := usecase.NewChatUseCase(conversationRepo, userRepo, profileRepo, notificationUseCase, wsManager)
	wsManager.SetJoinAuthorizer(chatUseCase.CanAccessConversation)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, profileRepo, userRepo, notificationUseCase)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, profileRepo, userRepo, notificationUseCase)
	fileUseCase := usecase.NewFileUseCase(storageClient, fileMetadataRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		profileUseCase,
		listingUseCase,
		discoveryUseCase,
		chatUseCase,
		reviewUseCase,
		notificationUseCase,
		favoriteUseCase,
		fileUseCase,
	)
	handler.SetupHealthHandler()
	handler.SetupWebSocketHandler(wsManager)
	handler.SetupDevTokenHandler(firebaseAuthClient, userRepo, cfg)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	devSecret := ""
	if cfg.Environment == "development" {
		devSecret = cfg.JWTSecret
	}
	authMiddleware := apimiddleware.NewAuthMiddleware(authClient, devSecret)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)
	if cfg.Environment == "development" {
		router.SetupDevRouter(e)
	}

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
