package domain

// Category filter sentinels. CategoryUncategorized is accepted by the query
// engine but deliberately unbound: products require a category, so the
// branch has nothing to match (kept for contract compatibility).
const (
	CategoryAll           = "all"
	CategoryUncategorized = "uncategorized"
)

// Stock-status buckets. The boundary is deliberate: stock of exactly 10
// counts as low, not in-stock.
const (
	StockAll = "all"
	StockIn  = "inStock"
	StockLow = "lowStock"
	StockOut = "outOfStock"
)

type ProductFilter struct {
	Page     int
	PageSize int

	// Case-insensitive substring over name, SKU and category name.
	Search string

	// Category display name, CategoryAll, or CategoryUncategorized. The UI
	// picker carries names harvested from the loaded category list, so the
	// match is by name, not id.
	Category string

	StockStatus string

	// When true, restrict to the flag; false means no restriction.
	Trending   bool
	BestSeller bool
	OnSale     bool
}

type Pagination struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func NewPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Total: total, Pages: pages, Page: page, Limit: limit}
}

type ProductStats struct {
	Total       int64 `json:"total"`
	OutOfStock  int64 `json:"outOfStock"`
	LowStock    int64 `json:"lowStock"`
	OnSale      int64 `json:"onSale"`
	Trending    int64 `json:"trending"`
	BestSellers int64 `json:"bestSellers"`
	Categories  int64 `json:"categories"`
}

type DashboardStats struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalOrders     int64   `json:"totalOrders"`
	TotalProducts   int64   `json:"totalProducts"`
	TotalCategories int64   `json:"totalCategories"`
	RecentOrders    []Order `json:"recentOrders"`
}
