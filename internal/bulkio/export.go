package bulkio

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tele1/storefront/internal/domain"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

type column struct {
	captionEN string
	captionAr string
	value     func(p *domain.Product) string
}

// exportColumns is the fixed, ordered column set of a product export.
var exportColumns = []column{
	{"Name", "الاسم", func(p *domain.Product) string { return p.Name }},
	{"Description", "الوصف", func(p *domain.Product) string { return p.Description }},
	{"Price", "السعر", func(p *domain.Product) string { return formatFloat(p.Price) }},
	{"SKU", "الكود", func(p *domain.Product) string { return p.SKU }},
	{"Category", "الفئة", func(p *domain.Product) string {
		if p.Category != nil {
			return p.Category.Name
		}
		return ""
	}},
	{"Stock", "المخزون", func(p *domain.Product) string { return strconv.Itoa(p.Stock) }},
	{"Images", "الصور", func(p *domain.Product) string { return p.Images }},
	{"supImage1", "supImage1", func(p *domain.Product) string { return strPtr(p.SupImage1) }},
	{"supImage2", "supImage2", func(p *domain.Product) string { return strPtr(p.SupImage2) }},
	{"Trending", "رائج", func(p *domain.Product) string { return yesNo(p.IsTrending) }},
	{"Best Seller", "الأكثر مبيعا", func(p *domain.Product) string { return yesNo(p.BestSeller) }},
	{"Discount Price", "سعر الخصم", func(p *domain.Product) string { return formatFloatPtr(p.DiscountPrice) }},
	{"Discount Type", "نوع الخصم", func(p *domain.Product) string { return strPtr(p.DiscountType) }},
	{"Discount Value", "قيمة الخصم", func(p *domain.Product) string { return formatFloatPtr(p.DiscountValue) }},
	{"Badge", "الشارة", func(p *domain.Product) string { return strPtr(p.Badge) }},
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func strPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Captions returns the export header row. lang "ar" selects the Arabic
// captions, anything else the English ones.
func Captions(lang string) []string {
	out := make([]string, len(exportColumns))
	for i, c := range exportColumns {
		if lang == "ar" {
			out[i] = c.captionAr
		} else {
			out[i] = c.captionEN
		}
	}
	return out
}

func records(products []domain.Product) [][]string {
	out := make([][]string, len(products))
	for i := range products {
		rec := make([]string, len(exportColumns))
		for j, c := range exportColumns {
			rec[j] = c.value(&products[i])
		}
		out[i] = rec
	}
	return out
}

// ExportProducts serializes the catalog in the requested format and returns
// the payload with its download filename and content type.
func ExportProducts(products []domain.Product, format, lang string) (data []byte, filename, contentType string, err error) {
	filename = Filename(format)
	switch format {
	case FormatXLSX:
		data, err = WriteXLSX(Captions(lang), records(products))
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		data = WriteCSV(Captions(lang), records(products))
		contentType = "text/csv; charset=utf-8"
	}
	return data, filename, contentType, err
}

func Filename(format string) string {
	ext := FormatCSV
	if format == FormatXLSX {
		ext = FormatXLSX
	}
	return fmt.Sprintf("tele1_products_%s.%s", time.Now().Format("2006-01-02"), ext)
}
