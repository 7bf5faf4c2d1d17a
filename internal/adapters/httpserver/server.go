package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/tele1/storefront/internal/domain"
	"github.com/tele1/storefront/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	catalog  *usecase.CatalogUC
	admin    *usecase.AdminUC
	checkout *usecase.CheckoutUC
	users    domain.UserRepo
	oauthCfg *oauth2.Config

	adminAllowed map[string]struct{}
	jwtSecret    []byte
}

func New(catalog *usecase.CatalogUC, admin *usecase.AdminUC, checkout *usecase.CheckoutUC, users domain.UserRepo, oauthCfg *oauth2.Config) http.Handler {
	s := &Server{
		mux:      http.NewServeMux(),
		catalog:  catalog,
		admin:    admin,
		checkout: checkout,
		users:    users,
		oauthCfg: oauthCfg,
	}

	allowed := map[string]struct{}{}
	if raw := os.Getenv("ADMIN_ALLOWED_EMAILS"); raw != "" {
		for _, e := range strings.Split(raw, ",") {
			e = strings.ToLower(strings.TrimSpace(e))
			if e != "" {
				allowed[e] = struct{}{}
			}
		}
	}
	s.adminAllowed = allowed
	sec := os.Getenv("JWT_ADMIN_SECRET")
	if sec == "" {
		sec = os.Getenv("SECRET_KEY")
	}
	if sec == "" {
		sec = "dev-admin-secret"
	}
	s.jwtSecret = []byte(sec)

	s.routes()
	return Chain(s.mux,
		RateLimit(120),
		Gzip,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	// Public storefront API
	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/products/", s.apiProductBySlug)
	s.mux.HandleFunc("/api/products/trending", s.apiTrending)
	s.mux.HandleFunc("/api/products/best-sellers", s.apiBestSellers)
	s.mux.HandleFunc("/api/products/on-sale", s.apiOnSale)
	s.mux.HandleFunc("/api/categories", s.apiCategories)
	s.mux.HandleFunc("/api/categories/featured", s.apiFeaturedCategories)
	s.mux.HandleFunc("/api/collections/search", s.apiSearchCollections)
	s.mux.HandleFunc("/api/reviews", s.apiReviews)
	s.mux.HandleFunc("/api/banners", s.apiBanners)
	s.mux.HandleFunc("/api/settings", s.apiSettings)
	s.mux.HandleFunc("/api/orders", s.apiCreateOrder)
	s.mux.HandleFunc("/api/promo/validate", s.apiValidatePromo)

	// Admin auth
	s.mux.HandleFunc("/admin/api/login", s.handleLogin)
	s.mux.HandleFunc("/admin/api/logout", s.handleLogout)
	s.mux.HandleFunc("/admin/api/me", s.handleMe)
	s.mux.HandleFunc("/admin/api/credentials", s.handleCredentials)
	s.mux.HandleFunc("/auth/google/login", s.handleGoogleLogin)
	s.mux.HandleFunc("/auth/google/callback", s.handleGoogleCallback)

	// Admin back office
	s.mux.HandleFunc("/admin/api/dashboard", s.adminDashboard)
	s.mux.HandleFunc("/admin/api/products", s.adminProducts)
	s.mux.HandleFunc("/admin/api/products/stats", s.adminProductStats)
	s.mux.HandleFunc("/admin/api/products/bulk", s.adminProductsBulk)
	s.mux.HandleFunc("/admin/api/products/import", s.adminImport)
	s.mux.HandleFunc("/admin/api/products/export", s.adminExport)
	s.mux.HandleFunc("/admin/api/products/", s.adminProductByID)
	s.mux.HandleFunc("/admin/api/categories", s.adminCategories)
	s.mux.HandleFunc("/admin/api/categories/bulk", s.adminCategoriesBulk)
	s.mux.HandleFunc("/admin/api/categories/", s.adminCategoryByID)
	s.mux.HandleFunc("/admin/api/orders", s.adminOrders)
	s.mux.HandleFunc("/admin/api/orders/", s.adminOrderByID)
	s.mux.HandleFunc("/admin/api/banners", s.adminBanners)
	s.mux.HandleFunc("/admin/api/banners/", s.adminBannerByID)
	s.mux.HandleFunc("/admin/api/promo-codes", s.adminPromoCodes)
	s.mux.HandleFunc("/admin/api/promo-codes/", s.adminPromoCodeByID)
	s.mux.HandleFunc("/admin/api/reviews", s.adminReviews)
	s.mux.HandleFunc("/admin/api/reviews/", s.adminReviewByID)
	s.mux.HandleFunc("/admin/api/settings", s.adminSettings)
	s.mux.HandleFunc("/admin/api/users", s.adminUsers)
	s.mux.HandleFunc("/admin/api/users/", s.adminUserByID)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "json", http.StatusBadRequest)
		return false
	}
	return true
}

// pathID parses the uuid trailing the given route prefix.
func pathID(r *http.Request, prefix string) (uuid.UUID, bool) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	raw = strings.Trim(raw, "/")
	id, err := uuid.Parse(raw)
	return id, err == nil
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func queryBool(r *http.Request, key string) bool {
	v := r.URL.Query().Get(key)
	return v == "1" || strings.EqualFold(v, "true")
}
