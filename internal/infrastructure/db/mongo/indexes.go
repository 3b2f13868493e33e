package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// EnsureAllIndexes creates the indexes for every collection the service uses.
// Called once at startup; safe to re-run against an already indexed database.
func EnsureAllIndexes(ctx context.Context, db *mongo.Database) error {
	repos := map[string]indexer{
		"expenses":   NewExpenseRepository(db),
		"payslips":   NewPayslipRepository(db),
		"agreements": NewAgreementRepository(db),
		"banners":    NewBannerRepository(db),
		"coupons":    NewCouponRepository(db),
		"currencies": NewCurrencyRepository(db),
		"events":     NewEventRepository(db),
		"news":       NewNewsRepository(db),
		"podcasts":   NewPodcastRepository(db),
		"members":    NewMemberRepository(db),
	}
	for name, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes for %s: %w", name, err)
		}
	}
	return nil
}
