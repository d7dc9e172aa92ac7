// Package usecase implements the statistics aggregation.
package usecase

import (
	"context"
	"time"

	donationentity "medtrack_backend/internal/feature/donations/domain/entity"
	medicineentity "medtrack_backend/internal/feature/medicines/domain/entity"
)

// MedicineLister lists medicine records for aggregation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (repository).
type MedicineLister interface {
	List(ctx context.Context) ([]medicineentity.Medicine, error)
}

// DonationLister lists donation records for aggregation.
type DonationLister interface {
	List(ctx context.Context) ([]donationentity.Donation, error)
}

// Stats is the dashboard summary. It is a derived view, recomputed in full
// on every request and never persisted or cached, so it can't drift from
// the underlying tables.
type Stats struct {
	TotalMedicines int `json:"totalMedicines"`
	ExpiringSoon   int `json:"expiringSoon"`
	Expired        int `json:"expired"`
	Donated        int `json:"donated"`
	PendingPickups int `json:"pendingPickups"`
}

// StatisticsUsecase aggregates counts across medicines and donations.
type StatisticsUsecase struct {
	medicines MedicineLister
	donations DonationLister
	now       func() time.Time
}

// NewStatisticsUsecase creates a new StatisticsUsecase.
func NewStatisticsUsecase(medicines MedicineLister, donations DonationLister) *StatisticsUsecase {
	return &StatisticsUsecase{
		medicines: medicines,
		donations: donations,
		now:       time.Now,
	}
}

// Summary recomputes the dashboard counts. Medicine statuses are
// reclassified against the current date before counting, so the expiry
// buckets always partition the total.
func (u *StatisticsUsecase) Summary(ctx context.Context) (*Stats, error) {
	medicines, err := u.medicines.List(ctx)
	if err != nil {
		return nil, err
	}
	donations, err := u.donations.List(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	stats := &Stats{TotalMedicines: len(medicines)}

	for i := range medicines {
		switch medicineentity.Classify(medicines[i].ExpiryDate, now) {
		case medicineentity.StatusWarning:
			stats.ExpiringSoon++
		case medicineentity.StatusExpired:
			stats.Expired++
		}
	}

	for i := range donations {
		switch donations[i].Status {
		case donationentity.StatusCompleted:
			stats.Donated++
		case donationentity.StatusPending:
			stats.PendingPickups++
		}
	}

	return stats, nil
}
