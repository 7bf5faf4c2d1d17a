package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tele1/storefront/internal/bulkio"
	"github.com/tele1/storefront/internal/domain"
)

func parseYes(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "yes")
}

// BulkImportProducts turns parsed sheet rows into products. Categories are
// resolved case-insensitively against the existing set; unknown names are
// created once per batch. Row creates run concurrently and the batch is
// all-or-nothing: one bad row fails the import.
func (uc *AdminUC) BulkImportProducts(ctx context.Context, s domain.Session, rows []bulkio.Row) domain.BulkResult {
	if !s.Can(domain.CapManageProducts) {
		return domain.BulkFail(domain.ErrUnauthorized)
	}
	if len(rows) == 0 {
		return domain.BulkFail(domain.ErrBulkImport)
	}

	existing, err := uc.Categories.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("bulk import categories")
		return domain.BulkFail(domain.ErrBulkImport)
	}
	catCache := make(map[string]uuid.UUID, len(existing))
	for _, c := range existing {
		catCache[strings.ToLower(c.Name)] = c.ID
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := uc.importRow(ctx, row, catCache)
		if err != nil {
			log.Error().Err(err).Str("name", row[bulkio.KeyName]).Msg("bulk import row")
			return domain.BulkFail(domain.ErrBulkImport)
		}
		products = append(products, p)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(products))
	for _, p := range products {
		wg.Add(1)
		go func(p *domain.Product) {
			defer wg.Done()
			if err := uc.Products.Create(ctx, p); err != nil {
				errs <- err
			}
		}(p)
	}
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		log.Error().Err(err).Msg("bulk import create")
		return domain.BulkFail(domain.ErrBulkImport)
	}

	uc.invalidateProducts()
	return domain.BulkResult{Success: true, Count: len(products)}
}

func (uc *AdminUC) importRow(ctx context.Context, row bulkio.Row, catCache map[string]uuid.UUID) (*domain.Product, error) {
	name := strings.TrimSpace(row[bulkio.KeyName])
	if name == "" {
		return nil, errMissing(bulkio.KeyName)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(row[bulkio.KeyPrice]), 64)
	if err != nil {
		return nil, err
	}

	categoryName := strings.TrimSpace(row[bulkio.KeyCategory])
	if categoryName == "" {
		categoryName = "Uncategorized"
	}
	catID, ok := catCache[strings.ToLower(categoryName)]
	if !ok {
		c := &domain.Category{
			ID:   uuid.New(),
			Name: categoryName,
			Slug: slugify(categoryName),
		}
		if err := uc.Categories.Create(ctx, c); err != nil {
			return nil, err
		}
		catID = c.ID
		catCache[strings.ToLower(categoryName)] = catID
	}

	stock := 0
	if v := strings.TrimSpace(row[bulkio.KeyStock]); v != "" {
		if stock, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}

	images := make([]string, 0, 4)
	for _, part := range strings.Split(row[bulkio.KeyImages], ",") {
		if u := strings.TrimSpace(part); u != "" {
			images = append(images, u)
		}
	}
	if len(images) == 0 {
		images = append(images, domain.PlaceholderImage)
	}

	p := &domain.Product{
		ID:          uuid.New(),
		Slug:        importSlug(name),
		Name:        name,
		Description: strings.TrimSpace(row[bulkio.KeyDescription]),
		SKU:         strings.TrimSpace(row[bulkio.KeySKU]),
		Price:       price,
		Stock:       stock,
		Status:      "ACTIVE",
		IsTrending:  parseYes(row[bulkio.KeyIsTrending]),
		BestSeller:  parseYes(row[bulkio.KeyBestSeller]),
		Images:      strings.Join(images, ","),
		CategoryID:  catID,
	}
	if v := strings.TrimSpace(row[bulkio.KeyDiscountPrice]); v != "" {
		dp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		p.DiscountPrice = &dp
	}
	if v := strings.TrimSpace(row[bulkio.KeyDiscountType]); v != "" {
		p.DiscountType = &v
	}
	if v := strings.TrimSpace(row[bulkio.KeyDiscountValue]); v != "" {
		dv, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		p.DiscountValue = &dv
	}
	if v := strings.TrimSpace(row[bulkio.KeyBadge]); v != "" {
		p.Badge = &v
	}
	if v := strings.TrimSpace(row[bulkio.KeySupImage1]); v != "" {
		p.SupImage1 = &v
	}
	if v := strings.TrimSpace(row[bulkio.KeySupImage2]); v != "" {
		p.SupImage2 = &v
	}
	return p, nil
}

type missingFieldError string

func errMissing(field string) error       { return missingFieldError(field) }
func (e missingFieldError) Error() string { return "missing required field " + string(e) }
