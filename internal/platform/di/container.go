// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/go-redis/redis/v8"
	"google.golang.org/api/option"

	httpin "tiendapos/internal/adapters/in/http"
	"tiendapos/internal/adapters/in/http/middleware"
	authadapter "tiendapos/internal/adapters/out/auth"
	cacheadapter "tiendapos/internal/adapters/out/cache"
	pgrepo "tiendapos/internal/adapters/out/db"
	fsrepo "tiendapos/internal/adapters/out/firestore"
	"tiendapos/internal/adapters/out/mail"
	"tiendapos/internal/application/query"
	"tiendapos/internal/application/usecase"
	"tiendapos/internal/infra/cache"
	appcfg "tiendapos/internal/infra/config"
	"tiendapos/internal/infra/database"
)

// ========================================
// Container
// ========================================

// Container is the bundle of wired dependencies main.go consumes. Postgres is
// required; Firestore, Firebase, Redis and SendGrid degrade to nil and the
// router simply leaves the affected routes unmounted or unprotected.
type Container struct {
	Config *appcfg.Config

	CatalogUC  *usecase.CatalogUsecase
	CartUC     *usecase.CartUsecase
	CheckoutUC *usecase.CheckoutUsecase
	SaleUC     *usecase.SaleUsecase
	UserUC     *usecase.UserUsecase
	DashboardQ *query.DashboardQuery

	Auth *middleware.AuthMiddleware

	db        *database.DB
	fsClient  *firestore.Client
	redisCli  *redis.Client
	cleanupFn []func()
}

// Close releases the container's external connections. Called on shutdown.
func (c *Container) Close() {
	if c.db != nil {
		_ = c.db.Close()
	}
	if c.fsClient != nil {
		_ = c.fsClient.Close()
	}
	if c.redisCli != nil {
		_ = c.redisCli.Close()
	}
	for _, fn := range c.cleanupFn {
		fn()
	}
}

// RouterDeps exposes the wired usecases in the router's shape.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		CatalogUC:  c.CatalogUC,
		CartUC:     c.CartUC,
		CheckoutUC: c.CheckoutUC,
		SaleUC:     c.SaleUC,
		UserUC:     c.UserUC,
		DashboardQ: c.DashboardQ,
		Auth:       c.Auth,
	}
}

// ========================================
// NewContainer
// ========================================

func NewContainer(ctx context.Context) (*Container, error) {
	// 1. Load config
	cfg := appcfg.Load()

	// Explicit credentials file for local runs; on Cloud Run ADC applies
	// and clientOpts stays empty.
	var clientOpts []option.ClientOption
	if cfg.GCPCreds != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.GCPCreds))
	}

	// 1.5 Resolve the DB password from Secret Manager when configured
	if cfg.DBPasswordSecret != "" {
		smClient, err := secretmanager.NewClient(ctx, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("di: secretmanager client: %w", err)
		}
		if err := cfg.ResolveDBPassword(ctx, smClient); err != nil {
			_ = smClient.Close()
			return nil, fmt.Errorf("di: resolve db password: %w", err)
		}
		_ = smClient.Close()
	}

	// 2. Initialize Postgres (required)
	db, err := database.NewConnection(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("di: postgres: %w", err)
	}

	// 3. Initialize Firestore client (terminal cart sessions)
	var fsClient *firestore.Client
	if cfg.FirestoreProjectID != "" {
		fsClient, err = firestore.NewClient(ctx, cfg.FirestoreProjectID, clientOpts...)
		if err != nil {
			log.Printf("[container] WARN: firestore init failed: %v (cart sessions disabled)", err)
			fsClient = nil
		} else {
			log.Println("[container] Firestore connected to project:", cfg.FirestoreProjectID)
		}
	} else {
		log.Printf("[container] Firestore not configured (cart sessions disabled)")
	}

	// 4. Initialize Firebase App & Auth
	var fbAuth *firebaseauth.Client
	if cfg.FirebaseProjectID != "" {
		fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, clientOpts...)
		if err != nil {
			log.Printf("[container] WARN: firebase app init failed: %v", err)
		} else {
			authClient, err := fbApp.Auth(ctx)
			if err != nil {
				log.Printf("[container] WARN: firebase auth init failed: %v", err)
			} else {
				fbAuth = authClient
				log.Printf("[container] Firebase Auth initialized")
			}
		}
	}

	// 5. Initialize Redis (optional product list cache)
	var redisCli *redis.Client
	if cfg.RedisAddr != "" {
		redisCli, err = cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			log.Printf("[container] WARN: redis init failed: %v (catalog served uncached)", err)
			redisCli = nil
		}
	}

	// 6. Outbound adapters
	productRepo := pgrepo.NewProductRepositoryPG(db.Client)
	categoryRepo := pgrepo.NewCategoryRepositoryPG(db.Client)
	saleRepo := pgrepo.NewSaleRepositoryPG(db.Client)
	profileRepo := pgrepo.NewProfileRepositoryPG(db.Client)

	var catalogCache usecase.ProductListCache
	if redisCli != nil {
		catalogCache = cacheadapter.NewCatalogCacheRedis(redisCli)
	}

	var authAdmin usecase.AuthAdmin
	if fbAuth != nil {
		authAdmin = authadapter.NewFirebaseAdmin(fbAuth)
	}

	var mailer usecase.Mailer
	if cfg.SendGridAPIKey != "" {
		mailer = mail.NewSendGridClient(cfg.SendGridAPIKey)
	} else {
		log.Printf("[container] SendGrid not configured (invitation mail disabled)")
	}

	// 7. Usecases
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo, catalogCache)
	saleUC := usecase.NewSaleUsecase(saleRepo)
	checkoutUC := usecase.NewCheckoutUsecase(saleRepo, productRepo)
	userUC := usecase.NewUserUsecase(authAdmin, profileRepo, mailer, cfg.MailFrom)
	dashboardQ := query.NewDashboardQuery(saleUC, catalogUC)

	var cartUC *usecase.CartUsecase
	if fsClient != nil {
		cartStore := fsrepo.NewCartRepositoryFS(fsClient)
		cartUC = usecase.NewCartUsecase(cartStore, productRepo)
	}

	// 8. Auth middleware
	var authMW *middleware.AuthMiddleware
	if fbAuth != nil {
		authMW = &middleware.AuthMiddleware{
			FirebaseAuth: fbAuth,
			ProfileRepo:  profileRepo,
		}
	}

	return &Container{
		Config:     cfg,
		CatalogUC:  catalogUC,
		CartUC:     cartUC,
		CheckoutUC: checkoutUC,
		SaleUC:     saleUC,
		UserUC:     userUC,
		DashboardQ: dashboardQ,
		db:         db,
		fsClient:   fsClient,
		redisCli:   redisCli,
		Auth:       authMW,
	}, nil
}
