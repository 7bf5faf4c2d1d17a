package bulkio

import "strings"

// Canonical row keys produced by header normalization.
const (
	KeyName          = "Name"
	KeyDescription   = "Description"
	KeyPrice         = "Price"
	KeySKU           = "SKU"
	KeyCategory      = "Category"
	KeyBrand         = "Brand"
	KeyType          = "Type"
	KeyImages        = "Images"
	KeySupImage1     = "supImage1"
	KeySupImage2     = "supImage2"
	KeyColor         = "color"
	KeyModel         = "model"
	KeyStock         = "Stock"
	KeyIsTrending    = "IsTrending"
	KeyBestSeller    = "BestSeller"
	KeyDiscountPrice = "DiscountPrice"
	KeyDiscountType  = "DiscountType"
	KeyDiscountValue = "DiscountValue"
	KeyBadge         = "Badge"
)

// headerSynonyms maps lowercased English and Arabic sheet headers to their
// canonical key. Vendors send exports in either language, often with
// spacing or naming drift.
var headerSynonyms = map[string]string{
	"name":         KeyName,
	"product name": KeyName,
	"product":      KeyName,
	"title":        KeyName,
	"الاسم":        KeyName,
	"اسم المنتج":   KeyName,
	"المنتج":       KeyName,

	"description": KeyDescription,
	"details":     KeyDescription,
	"الوصف":       KeyDescription,
	"التفاصيل":    KeyDescription,

	"price":      KeyPrice,
	"unit price": KeyPrice,
	"السعر":      KeyPrice,

	"sku":          KeySKU,
	"code":         KeySKU,
	"product code": KeySKU,
	"الكود":        KeySKU,
	"رمز المنتج":   KeySKU,

	"category": KeyCategory,
	"الفئة":    KeyCategory,
	"التصنيف":  KeyCategory,

	"brand":         KeyBrand,
	"العلامة":       KeyBrand,
	"الماركة":       KeyBrand,
	"type":          KeyType,
	"النوع":         KeyType,
	"color":         KeyColor,
	"colour":        KeyColor,
	"اللون":         KeyColor,
	"model":         KeyModel,
	"الموديل":       KeyModel,

	"images":    KeyImages,
	"image":     KeyImages,
	"image url": KeyImages,
	"الصور":     KeyImages,
	"الصورة":    KeyImages,

	"supimage1":            KeySupImage1,
	"sup image 1":          KeySupImage1,
	"supplemental image 1": KeySupImage1,
	"supimage2":            KeySupImage2,
	"sup image 2":          KeySupImage2,
	"supplemental image 2": KeySupImage2,

	"stock":    KeyStock,
	"quantity": KeyStock,
	"qty":      KeyStock,
	"المخزون":  KeyStock,
	"الكمية":   KeyStock,

	"trending":    KeyIsTrending,
	"is trending": KeyIsTrending,
	"istrending":  KeyIsTrending,
	"رائج":        KeyIsTrending,

	"best seller": KeyBestSeller,
	"bestseller":  KeyBestSeller,
	"الأكثر مبيعا": KeyBestSeller,

	"discount price": KeyDiscountPrice,
	"discountprice":  KeyDiscountPrice,
	"سعر الخصم":      KeyDiscountPrice,
	"discount type":  KeyDiscountType,
	"discounttype":   KeyDiscountType,
	"نوع الخصم":      KeyDiscountType,
	"discount value": KeyDiscountValue,
	"discountvalue":  KeyDiscountValue,
	"قيمة الخصم":     KeyDiscountValue,

	"badge":  KeyBadge,
	"الشارة": KeyBadge,
}

// NormalizeHeader maps a sheet header to its canonical key. Unrecognized
// headers pass through trimmed under their original name so no column is
// silently dropped.
func NormalizeHeader(h string) string {
	trimmed := strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	if canonical, ok := headerSynonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}
