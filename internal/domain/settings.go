package domain

import "time"

// SettingsID is the fixed primary key of the settings singleton.
const SettingsID = "site-settings"

type Settings struct {
	ID string `gorm:"primaryKey;size:40" json:"id"`

	CategoriesCtaTitle   string `gorm:"size:255" json:"categoriesCtaTitle"`
	CategoriesCtaDesc    string `gorm:"type:text" json:"categoriesCtaDesc"`
	CategoriesCtaTitleAr string `gorm:"size:255" json:"categoriesCtaTitleAr"`
	CategoriesCtaDescAr  string `gorm:"type:text" json:"categoriesCtaDescAr"`
	CategoriesCtaImage   string `gorm:"size:500" json:"categoriesCtaImage"`

	ShippingTitle   string `gorm:"size:255" json:"shippingTitle"`
	ShippingDesc    string `gorm:"type:text" json:"shippingDesc"`
	ShippingTitleAr string `gorm:"size:255" json:"shippingTitleAr"`
	ShippingDescAr  string `gorm:"type:text" json:"shippingDescAr"`

	VerificationTitle   string `gorm:"size:255" json:"verificationTitle"`
	VerificationDesc    string `gorm:"type:text" json:"verificationDesc"`
	VerificationTitleAr string `gorm:"size:255" json:"verificationTitleAr"`
	VerificationDescAr  string `gorm:"type:text" json:"verificationDescAr"`

	StandardShippingTime string `gorm:"size:100" json:"standardShippingTime"`
	ExpressShippingTime  string `gorm:"size:100" json:"expressShippingTime"`

	ReturnsTitle   string `gorm:"size:255" json:"returnsTitle"`
	ReturnsDesc    string `gorm:"type:text" json:"returnsDesc"`
	ReturnsTitleAr string `gorm:"size:255" json:"returnsTitleAr"`
	ReturnsDescAr  string `gorm:"type:text" json:"returnsDescAr"`

	FinalSaleTitle   string `gorm:"size:255" json:"finalSaleTitle"`
	FinalSaleDesc    string `gorm:"type:text" json:"finalSaleDesc"`
	FinalSaleTitleAr string `gorm:"size:255" json:"finalSaleTitleAr"`
	FinalSaleDescAr  string `gorm:"type:text" json:"finalSaleDescAr"`

	HygieneTitle   string `gorm:"size:255" json:"hygieneTitle"`
	HygieneDesc    string `gorm:"type:text" json:"hygieneDesc"`
	HygieneTitleAr string `gorm:"size:255" json:"hygieneTitleAr"`
	HygieneDescAr  string `gorm:"type:text" json:"hygieneDescAr"`

	ShippingReturnsImage string `gorm:"size:500" json:"shippingReturnsImage"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings is returned (and persisted lazily) when the singleton row
// does not exist yet.
func DefaultSettings() *Settings {
	return &Settings{
		ID:                   SettingsID,
		CategoriesCtaTitle:   "Need expert advice?",
		CategoriesCtaDesc:    "Our consultants are here to help you find the perfect products.",
		CategoriesCtaTitleAr: "هل تحتاجين إلى نصيحة الخبراء؟",
		CategoriesCtaDescAr:  "مستشارونا هنا لمساعدتك في العثور على المنتجات المثالية.",
		CategoriesCtaImage:   "https://via.placeholder.com/400x300",
		ShippingTitle:        "Fast & Reliable Shipping",
		ShippingDesc:         "We ensure your products reach you in perfect condition.",
		ShippingTitleAr:      "شحن سريع وموثوق",
		ShippingDescAr:       "نحن نضمن وصول منتجاتك إليك في حالة ممتازة.",
		VerificationTitle:    "Verification Process",
		VerificationDesc:     "Orders are processed within 24-48 hours.",
		VerificationTitleAr:  "عملية التحقق",
		VerificationDescAr:   "يتم معالجة الطلبات في غضون 24-48 ساعة.",
		StandardShippingTime: "3-5 Business Days",
		ExpressShippingTime:  "1-2 Business Days",
		ReturnsTitle:         "Returns & Exchanges",
		ReturnsDesc:          "Your satisfaction is our priority.",
		ReturnsTitleAr:       "المرتجعات والاستبدال",
		ReturnsDescAr:        "رضاكم هو أولويتنا.",
		FinalSaleTitle:       "Final Sale Items",
		FinalSaleDesc:        "Certain items are final sale for hygiene reasons.",
		FinalSaleTitleAr:     "أصناف البيع النهائي",
		FinalSaleDescAr:      "بعض العناصر هي بيع نهائي لأسباب صحية.",
		HygieneTitle:         "Hygiene & Safety Protocols",
		HygieneDesc:          "For your safety, we follow strict protocols for handling all products.",
		HygieneTitleAr:       "بروتوكولات النظافة والسلامة",
		HygieneDescAr:        "من أجل سلامتك، نتبع بروتوكولات صارمة للتعامل مع جميع المنتجات.",
		ShippingReturnsImage: "https://via.placeholder.com/800x400",
	}
}
