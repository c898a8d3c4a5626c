package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"streesilk/config"
	"streesilk/internal/delivery"
	"streesilk/internal/delivery/http"
	"streesilk/internal/delivery/http/middleware"
	"streesilk/internal/delivery/http/router/handler"
	"streesilk/internal/domain/service"
	"streesilk/internal/infra/auth/firebase"
	logs "streesilk/internal/infra/log"
	"streesilk/internal/infra/mail"
	"streesilk/internal/infra/persistence/dynamo"
	"streesilk/internal/infra/pubsub"
	"streesilk/internal/infra/qrcode"
	"streesilk/internal/infra/storage"
	"streesilk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		pubsub.Module,
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		dynamo.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			dynamo.NewProductRepository,
			dynamo.NewCartRepository,
			dynamo.NewOrderRepository,
			dynamo.NewContactRepository,
			dynamo.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newIdentityVerifier,
			storage.NewObjectStorage,
			mail.NewMailer,
			newQRCodeService,
		),
	)
}

// newIdentityVerifier creates the identity-provider token verifier.
func newIdentityVerifier(ctx context.Context, cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Identity == nil {
		return nil, fmt.Errorf("identity provider is not configured")
	}

	verifier, err := firebase.NewIdentityVerifier(ctx, cfg.Identity.ProjectID, cfg.Identity.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity verifier: %w", err)
	}

	return verifier, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewContactService,
			impl.NewUserService,
			impl.NewAdminService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewContactHandler,
			handler.NewUserHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
