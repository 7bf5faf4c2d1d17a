package httpserver

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tele1/storefront/internal/bulkio"
	"github.com/tele1/storefront/internal/domain"
)

func (s *Server) adminDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireSession(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.DashboardStats(r.Context()))
}

func (s *Server) adminProductStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireSession(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.ProductStats(r.Context()))
}

func (s *Server) adminProducts(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		list, pag := s.catalog.ListProducts(r.Context(), filterFromQuery(r))
		writeJSON(w, http.StatusOK, map[string]any{"products": list, "pagination": pag})
	case http.MethodPost:
		var p domain.Product
		if !decodeJSON(w, r, &p) {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.CreateProduct(r.Context(), sess, &p))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// adminProductByID covers /admin/api/products/{id} plus the per-product
// toggle actions /{id}/trending and /{id}/best-seller.
func (s *Server) adminProductByID(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/admin/api/products/"), "/")
	parts := strings.SplitN(rest, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 2 {
		if r.Method != http.MethodPost {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Value bool `json:"value"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		switch parts[1] {
		case "trending":
			writeJSON(w, http.StatusOK, s.admin.ToggleTrending(r.Context(), sess, id, req.Value))
		case "best-seller":
			writeJSON(w, http.StatusOK, s.admin.ToggleBestSeller(r.Context(), sess, id, req.Value))
		default:
			http.NotFound(w, r)
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := s.catalog.ProductByID(r.Context(), id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodPut:
		var p domain.Product
		if !decodeJSON(w, r, &p) {
			return
		}
		p.ID = id
		writeJSON(w, http.StatusOK, s.admin.UpdateProduct(r.Context(), sess, &p))
	case http.MethodDelete:
		writeJSON(w, http.StatusOK, s.admin.DeleteProduct(r.Context(), sess, id))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// adminProductsBulk dispatches the batch actions: delete, trending,
// best-seller, remove-sale.
func (s *Server) adminProductsBulk(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Action string   `json:"action"`
		IDs    []string `json:"ids"`
		Value  bool     `json:"value"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}
	var res domain.BulkResult
	switch req.Action {
	case "delete":
		res = s.admin.BulkDeleteProducts(r.Context(), sess, ids)
	case "trending":
		res = s.admin.BulkToggleTrending(r.Context(), sess, ids, req.Value)
	case "best-seller":
		res = s.admin.BulkToggleBestSeller(r.Context(), sess, ids, req.Value)
	case "remove-sale":
		res = s.admin.BulkRemoveSale(r.Context(), sess, ids)
	default:
		http.Error(w, "action", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) adminImport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(25 << 20); err != nil {
		http.Error(w, "multipart", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "read", http.StatusBadRequest)
		return
	}

	var rows []bulkio.Row
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		rows, err = bulkio.ParseCSV(data)
	case ".xlsx", ".xls":
		rows, err = bulkio.ParseXLSX(bytes.NewReader(data))
	default:
		http.Error(w, "format", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("file", header.Filename).Msg("parse import")
		writeJSON(w, http.StatusBadRequest, domain.BulkFail(domain.ErrBulkImport))
		return
	}
	writeJSON(w, http.StatusOK, s.admin.BulkImportProducts(r.Context(), sess, rows))
}

func (s *Server) adminExport(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireSession(w, r); !ok {
		return
	}
	format := r.URL.Query().Get("format")
	lang := r.URL.Query().Get("lang")

	list, _ := s.catalog.ListProducts(r.Context(), domain.ProductFilter{Page: 1, PageSize: 10000})
	data, filename, contentType, err := bulkio.ExportProducts(list, format, lang)
	if err != nil {
		log.Error().Err(err).Msg("export products")
		http.Error(w, "export", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(data)
}

func (s *Server) adminCategories(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		list, pag := s.catalog.ListCategories(r.Context(), queryInt(r, "page", 1), queryInt(r, "limit", 500))
		writeJSON(w, http.StatusOK, map[string]any{"categories": list, "pagination": pag})
	case http.MethodPost:
		var c domain.Category
		if !decodeJSON(w, r, &c) {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.CreateCategory(r.Context(), sess, &c))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) adminCategoryByID(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/admin/api/categories/"), "/")
	parts := strings.SplitN(rest, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 2 && parts[1] == "featured" {
		if r.Method != http.MethodPost {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Value bool `json:"value"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.ToggleCategoryFeatured(r.Context(), sess, id, req.Value))
		return
	}

	switch r.Method {
	case http.MethodPut:
		var c domain.Category
		if !decodeJSON(w, r, &c) {
			return
		}
		c.ID = id
		writeJSON(w, http.StatusOK, s.admin.UpdateCategory(r.Context(), sess, &c))
	case http.MethodDelete:
		writeJSON(w, http.StatusOK, s.admin.DeleteCategory(r.Context(), sess, id))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) adminCategoriesBulk(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Action string   `json:"action"`
		IDs    []string `json:"ids"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Action != "delete" {
		http.Error(w, "action", http.StatusBadRequest)
		return
	}
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}
	writeJSON(w, http.StatusOK, s.admin.BulkDeleteCategories(r.Context(), sess, ids))
}

func (s *Server) adminOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireSession(w, r); !ok {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	list, pag := s.catalog.ListOrders(r.Context(), queryInt(r, "page", 1), queryInt(r, "limit", 50))
	writeJSON(w, http.StatusOK, map[string]any{"orders": list, "pagination": pag})
}

func (s *Server) adminOrderByID(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "/admin/api/orders/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPatch:
		var req struct {
			Status string `json:"status"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.UpdateOrderStatus(r.Context(), sess, id, domain.OrderStatus(req.Status)))
	case http.MethodDelete:
		writeJSON(w, http.StatusOK, s.admin.DeleteOrder(r.Context(), sess, id))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) adminBanners(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.catalog.AllBanners(r.Context()))
	case http.MethodPost:
		var b domain.Banner
		if !decodeJSON(w, r, &b) {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.CreateBanner(r.Context(), sess, &b))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) adminBannerByID(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/admin/api/banners/"), "/")
	parts := strings.SplitN(rest, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 2 && parts[1] == "toggle" {
		if r.Method != http.MethodPost {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Value bool `json:"value"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.ToggleBanner(r.Context(), sess, id, req.Value))
		return
	}

	switch r.Method {
	case http.MethodPut:
		var b domain.Banner
		if !decodeJSON(w, r, &b) {
			return
		}
		b.ID = id
		writeJSON(w, http.StatusOK, s.admin.UpdateBanner(r.Context(), sess, &b))
	case http.MethodDelete:
		writeJSON(w, http.StatusOK, s.admin.DeleteBanner(r.Context(), sess, id))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) adminPromoCodes(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.admin.ListPromoCodes(r.Context(), sess))
	case http.MethodPost:
		var p domain.PromoCode
		if !decodeJSON(w, r, &p) {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.CreatePromoCode(r.Context(), sess, &p))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) adminPromoCodeByID(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/admin/api/promo-codes/"), "/")
	parts := strings.SplitN(rest, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 2 && parts[1] == "toggle" {
		if r.Method != http.MethodPost {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Value bool `json:"value"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.TogglePromoCode(r.Context(), sess, id, req.Value))
		return
	}

	switch r.Method {
	case http.MethodPut:
		var p domain.PromoCode
		if !decodeJSON(w, r, &p) {
			return
		}
		p.ID = id
		writeJSON(w, http.StatusOK, s.admin.UpdatePromoCode(r.Context(), sess, &p))
	case http.MethodDelete:
		writeJSON(w, http.StatusOK, s.admin.DeletePromoCode(r.Context(), sess, id))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) adminReviews(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.catalog.ListReviews(r.Context(), queryInt(r, "limit", 100)))
	case http.MethodPost:
		var rev domain.Review
		if !decodeJSON(w, r, &rev) {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.CreateReview(r.Context(), sess, &rev))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) adminReviewByID(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "/admin/api/reviews/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var rev domain.Review
		if !decodeJSON(w, r, &rev) {
			return
		}
		rev.ID = id
		writeJSON(w, http.StatusOK, s.admin.UpdateReview(r.Context(), sess, &rev))
	case http.MethodDelete:
		writeJSON(w, http.StatusOK, s.admin.DeleteReview(r.Context(), sess, id))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) adminSettings(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.catalog.SiteSettings(r.Context()))
	case http.MethodPut:
		var set domain.Settings
		if !decodeJSON(w, r, &set) {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.UpdateSettings(r.Context(), sess, &set))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) adminUsers(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.admin.ListUsers(r.Context(), sess))
	case http.MethodPost:
		u, ok := decodeUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, s.admin.CreateUser(r.Context(), sess, u))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// decodeUser reads a user payload including the password, which the entity
// itself never serializes.
func decodeUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	var req struct {
		domain.User
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return nil, false
	}
	u := req.User
	u.Password = req.Password
	return &u, true
}

func (s *Server) adminUserByID(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "/admin/api/users/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		u, ok := decodeUser(w, r)
		if !ok {
			return
		}
		u.ID = id
		writeJSON(w, http.StatusOK, s.admin.UpdateUser(r.Context(), sess, u))
	case http.MethodDelete:
		writeJSON(w, http.StatusOK, s.admin.DeleteUser(r.Context(), sess, id))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}
