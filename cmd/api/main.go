package main

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"depositflow/internal/adapter/api"
	"depositflow/internal/adapter/api/handler"
	"depositflow/internal/adapter/api/router"
	"depositflow/internal/adapter/repository"
	"depositflow/internal/infrastructure/bootstrap"
	"depositflow/internal/usecase"
	"depositflow/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		log.Printf("Using service account credentials from file: %s", cfg.CredentialsFile)
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)

	userUseCase := usecase.NewUserUseCase(userRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, orderRepo, userRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, userRepo, chatUseCase)

	handler.Setup(userUseCase, orderUseCase, chatUseCase)
	handler.SetupHealthHandler()

	// Startup provisioning runs in the background; request traffic is not
	// blocked on it.
	provisioner := bootstrap.NewProvisioner(firestoreClient, userRepo, orderRepo, chatRepo, cfg.SeedStaticData)
	go provisioner.Run(ctx)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	e.Validator = api.NewValidator()

	router.Setup(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
