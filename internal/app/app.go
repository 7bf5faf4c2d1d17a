package app

import (
	"context"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/tele1/storefront/internal/adapters/httpserver"
	"github.com/tele1/storefront/internal/adapters/repo/postgres"
	"github.com/tele1/storefront/internal/domain"
	"github.com/tele1/storefront/internal/usecase"
)

type App struct {
	DB          *gorm.DB
	CatalogUC   *usecase.CatalogUC
	AdminUC     *usecase.AdminUC
	CheckoutUC  *usecase.CheckoutUC
	Users       domain.UserRepo
	OAuthConfig *oauth2.Config
}

// logInvalidator logs the page paths a mutation made stale. A CDN purge or
// frontend revalidation hook can replace it without touching the usecases.
type logInvalidator struct{}

func (logInvalidator) Invalidate(paths ...string) {
	log.Debug().Strs("paths", paths).Msg("cache invalidate")
}

func NewApp(db *gorm.DB) (*App, error) {
	products := postgres.NewProductRepo(db)
	categories := postgres.NewCategoryRepo(db)
	orders := postgres.NewOrderRepo(db)
	reviews := postgres.NewReviewRepo(db)
	banners := postgres.NewBannerRepo(db)
	promos := postgres.NewPromoCodeRepo(db)
	settings := postgres.NewSettingsRepo(db)
	users := postgres.NewUserRepo(db)

	var cache domain.CacheInvalidator = logInvalidator{}

	var oauthCfg *oauth2.Config
	googleID := os.Getenv("GOOGLE_CLIENT_ID")
	googleSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if googleID != "" && googleSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     googleID,
			ClientSecret: googleSecret,
			RedirectURL:  baseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	return &App{
		DB: db,
		CatalogUC: &usecase.CatalogUC{
			Products:   products,
			Categories: categories,
			Orders:     orders,
			Reviews:    reviews,
			Banners:    banners,
			Settings:   settings,
		},
		AdminUC: &usecase.AdminUC{
			Products:   products,
			Categories: categories,
			Orders:     orders,
			Reviews:    reviews,
			Banners:    banners,
			PromoCodes: promos,
			Settings:   settings,
			Users:      users,
			Cache:      cache,
		},
		CheckoutUC: &usecase.CheckoutUC{
			Orders:     orders,
			PromoCodes: promos,
			Cache:      cache,
		},
		Users:       users,
		OAuthConfig: oauthCfg,
	}, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.CatalogUC, a.AdminUC, a.CheckoutUC, a.Users, a.OAuthConfig)
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(
		&domain.Category{}, &domain.SubCategory{}, &domain.Product{},
		&domain.Order{}, &domain.OrderItem{}, &domain.Review{},
		&domain.Banner{}, &domain.PromoCode{}, &domain.Settings{},
		&domain.User{},
	); err != nil {
		return err
	}
	if err := a.seedSuperAdmin(); err != nil {
		return err
	}
	// Materialize the settings singleton so first reads hit a row.
	_, err := a.CatalogUC.Settings.Get(context.Background())
	return err
}

// seedSuperAdmin creates the initial SUPER_ADMIN account when the user table
// is empty. Credentials come from ADMIN_USER / ADMIN_PASS with dev defaults.
func (a *App) seedSuperAdmin() error {
	var count int64
	if err := a.DB.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	username := os.Getenv("ADMIN_USER")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASS")
	if password == "" {
		password = "admin123"
		log.Warn().Msg("ADMIN_PASS not set, seeding default credentials")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := &domain.User{
		ID:       uuid.New(),
		Username: username,
		Password: string(hash),
		Role:     domain.RoleSuperAdmin,
	}
	return a.DB.Create(u).Error
}
