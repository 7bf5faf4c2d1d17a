package httpserver

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tele1/storefront/internal/domain"
)

func filterFromQuery(r *http.Request) domain.ProductFilter {
	q := r.URL.Query()
	return domain.ProductFilter{
		Page:        queryInt(r, "page", 1),
		PageSize:    queryInt(r, "limit", 50),
		Search:      q.Get("search"),
		Category:    q.Get("category"),
		StockStatus: q.Get("stock"),
		Trending:    queryBool(r, "trending"),
		BestSeller:  queryBool(r, "bestSeller"),
		OnSale:      queryBool(r, "onSale"),
	}
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	list, pag := s.catalog.ListProducts(r.Context(), filterFromQuery(r))
	writeJSON(w, http.StatusOK, map[string]any{"products": list, "pagination": pag})
}

// apiProductBySlug serves /api/products/{slug} and, with ?related=1, the
// related list for that product's category.
func (s *Server) apiProductBySlug(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	slug := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/products/"), "/")
	if slug == "" {
		http.NotFound(w, r)
		return
	}
	p, err := s.catalog.ProductBySlug(r.Context(), slug)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if queryBool(r, "related") {
		related := s.catalog.RelatedProducts(r.Context(), p.CategoryID, p.ID, queryInt(r, "limit", 4))
		writeJSON(w, http.StatusOK, map[string]any{"product": p, "images": p.ImageList(), "related": related})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": p, "images": p.ImageList()})
}

func (s *Server) apiTrending(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.TrendingProducts(r.Context(), queryInt(r, "limit", 8)))
}

func (s *Server) apiBestSellers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.BestSellers(r.Context(), queryInt(r, "limit", 8)))
}

func (s *Server) apiOnSale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.OnSaleProducts(r.Context(), queryInt(r, "limit", 8)))
}

func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	list, pag := s.catalog.ListCategories(r.Context(), queryInt(r, "page", 1), queryInt(r, "limit", 500))
	writeJSON(w, http.StatusOK, map[string]any{"categories": list, "pagination": pag})
}

func (s *Server) apiFeaturedCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.FeaturedCategories(r.Context(), queryInt(r, "limit", 6)))
}

func (s *Server) apiSearchCollections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.SearchCollections(r.Context(), r.URL.Query().Get("q"), queryInt(r, "limit", 20)))
}

func (s *Server) apiReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.ListReviews(r.Context(), queryInt(r, "limit", 20)))
}

func (s *Server) apiBanners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.ActiveBanners(r.Context()))
}

func (s *Server) apiSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.SiteSettings(r.Context()))
}

func (s *Server) apiCreateOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Name          string  `json:"name"`
		Email         string  `json:"email"`
		Phone         string  `json:"phone"`
		NationalID    string  `json:"nationalId"`
		StreetAddress string  `json:"streetAddress"`
		City          string  `json:"city"`
		PostalCode    string  `json:"postalCode"`
		TotalAmount   float64 `json:"totalAmount"`
		Discount      float64 `json:"discount"`
		PromoCodeID   string  `json:"promoCodeId"`
		Items         []struct {
			ProductID string  `json:"productId"`
			Quantity  int     `json:"quantity"`
			Price     float64 `json:"price"`
		} `json:"items"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	o := &domain.Order{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		NationalID:    req.NationalID,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		PostalCode:    req.PostalCode,
		TotalAmount:   req.TotalAmount,
		Discount:      req.Discount,
	}
	if req.PromoCodeID != "" {
		if id, err := uuid.Parse(req.PromoCodeID); err == nil {
			o.PromoCodeID = &id
		}
	}
	for _, it := range req.Items {
		item := domain.OrderItem{Quantity: it.Quantity, Price: it.Price}
		if id, err := uuid.Parse(it.ProductID); err == nil {
			item.ProductID = &id
		}
		o.Items = append(o.Items, item)
	}
	res := s.checkout.CreateOrder(r.Context(), o)
	if !res.Success {
		writeJSON(w, http.StatusInternalServerError, res)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "orderId": o.ID})
}

func (s *Server) apiValidatePromo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Code string `json:"code"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.checkout.ValidatePromoCode(r.Context(), req.Code))
}
