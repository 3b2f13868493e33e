package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thaalam/admin-system/internal/core/domain"
)

// One constructor per entity collection. The search and filter fields declared
// here are the whole query surface each list screen exposes.

func NewExpenseRepository(db *mongo.Database) *ResourceRepository[*domain.Expense] {
	return NewResourceRepository(db, "expenses",
		func() *domain.Expense { return &domain.Expense{} },
		[]string{"number", "vendor"},
		map[string]string{
			"financial_year": "financial_year",
			"expense_type":   "expense_type",
			"vendor":         "vendor",
			"status":         "status",
		})
}

func NewPayslipRepository(db *mongo.Database) *ResourceRepository[*domain.Payslip] {
	return NewResourceRepository(db, "payslips",
		func() *domain.Payslip { return &domain.Payslip{} },
		[]string{"number", "member_name"},
		map[string]string{
			"month":  "month",
			"year":   "year",
			"status": "status",
		})
}

func NewAgreementRepository(db *mongo.Database) *ResourceRepository[*domain.Agreement] {
	return NewResourceRepository(db, "agreements",
		func() *domain.Agreement { return &domain.Agreement{} },
		[]string{"title", "party"},
		map[string]string{"status": "status"})
}

func NewBannerRepository(db *mongo.Database) *ResourceRepository[*domain.Banner] {
	return NewResourceRepository(db, "banners",
		func() *domain.Banner { return &domain.Banner{} },
		[]string{"title"},
		map[string]string{
			"position": "position",
			"language": "language",
		})
}

func NewCouponRepository(db *mongo.Database) *ResourceRepository[*domain.Coupon] {
	return NewResourceRepository(db, "coupons",
		func() *domain.Coupon { return &domain.Coupon{} },
		[]string{"code", "description"},
		map[string]string{"status": "status"})
}

func NewCurrencyRepository(db *mongo.Database) *ResourceRepository[*domain.Currency] {
	return NewResourceRepository(db, "currencies",
		func() *domain.Currency { return &domain.Currency{} },
		[]string{"code", "name"},
		nil)
}

func NewEventRepository(db *mongo.Database) *ResourceRepository[*domain.Event] {
	return NewResourceRepository(db, "events",
		func() *domain.Event { return &domain.Event{} },
		[]string{"title", "venue"},
		map[string]string{
			"language": "language",
			"category": "category",
			"status":   "status",
		})
}

func NewNewsRepository(db *mongo.Database) *ResourceRepository[*domain.News] {
	return NewResourceRepository(db, "news",
		func() *domain.News { return &domain.News{} },
		[]string{"title", "slug"},
		map[string]string{
			"language": "language",
			"category": "category",
			"status":   "status",
		})
}

func NewPodcastRepository(db *mongo.Database) *ResourceRepository[*domain.Podcast] {
	return NewResourceRepository(db, "podcasts",
		func() *domain.Podcast { return &domain.Podcast{} },
		[]string{"title", "host"},
		map[string]string{
			"language": "language",
			"category": "category",
			"status":   "status",
		})
}
