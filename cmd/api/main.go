package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop_orders/internal/adapter/http/handlers"
	"shop_orders/internal/adapter/http/routes"
	"shop_orders/internal/adapter/persistence/repository"
	"shop_orders/internal/infrastructure/config"
	"shop_orders/internal/infrastructure/database"
	"shop_orders/internal/infrastructure/notifications"
	"shop_orders/internal/infrastructure/streams"
	"shop_orders/internal/task"
	"shop_orders/internal/usecase"
	"shop_orders/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

const shutdownTimeout = 15 * time.Second

// @title           Shop Orders API
// @version         1.0
// @description     Order lifecycle and revenue dashboard for shop owners, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	counterRepo := repository.NewRevenueCounterDynamoRepository(ddb)
	shopRepo := repository.NewShopDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	var pushGateway interfaces.IPushGateway
	fcm, err := notifications.NewFCMGateway(ctx, notifications.FCMConfig{
		ProjectID:   cfg.FCMProjectID,
		AccessToken: cfg.FCMAccessToken,
		BaseURL:     cfg.FCMBaseURL,
		Timeout:     cfg.NotificationTimeout,
		Mock:        cfg.PushGatewayMock,
	})
	if err != nil {
		log.Printf("FCM gateway not configured: %v", err)
	} else {
		pushGateway = fcm
	}

	policy := usecase.PermissivePolicy()
	if cfg.StrictTransitions {
		policy = usecase.StrictPolicy()
	}

	notifier := usecase.NewNotificationUseCase(userRepo, shopRepo, pushGateway, cfg.NotificationTimeout)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, notifier, policy, cfg.LiveQueryInterval)
	revenueUseCase := usecase.NewRevenueUseCase(orderRepo, counterRepo, cfg.ShopLocation, cfg.LiveQueryInterval)
	counterUseCase := usecase.NewRevenueCounterUseCase(orderRepo, counterRepo, shopRepo)

	var reconcileTask *task.RevenueReconcileTask
	if cfg.RevenueReconcileEnabled {
		reconcileTask = task.NewRevenueReconcileTask(counterUseCase, cfg.RevenueReconcileCron)
		if err := reconcileTask.Start(); err != nil {
			log.Fatalf("Failed to schedule revenue reconciliation: %v", err)
		}
	}

	streamDone := make(chan struct{})
	if cfg.OrderStreamEnabled {
		go func() {
			defer close(streamDone)
			runOrderStream(ctx, cfg, ddb, orderRepo.TableName(), counterUseCase, notifier)
		}()
	} else {
		close(streamDone)
	}

	router := routes.NewRouter(routes.Dependencies{
		Orders:    handlers.NewOrderHandler(orderUseCase),
		Revenue:   handlers.NewRevenueHandler(revenueUseCase, counterUseCase, cfg.ShopLocation),
		Shops:     shopRepo,
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}
	if reconcileTask != nil {
		reconcileTask.Stop(shutdownCtx)
	}
	<-streamDone
	notifier.Wait()
}

// runOrderStream tails the orders table and feeds the revenue counter and the
// new-order push.
func runOrderStream(ctx context.Context, cfg config.Config, ddb streams.DescribeTableAPI, table string, counters usecase.IRevenueCounterUseCase, notifier *usecase.NotificationUseCase) {
	arn := cfg.OrderStreamARN
	if arn == "" {
		var err error
		arn, err = streams.ResolveStreamARN(ctx, ddb, table)
		if err != nil {
			log.Printf("Order stream disabled: %v", err)
			return
		}
	}

	consumer := streams.NewOrderStreamConsumer(database.ConnectDynamoDBStreams(), arn, repository.OrderFromItem, cfg.OrderStreamPollInterval)
	consumer.Register("revenue-counter", counters.OnOrderWritten)
	consumer.Register("new-order-push", notifier.OnOrderWritten)

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Order stream stopped: %v", err)
	}
}
