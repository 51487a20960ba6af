package utils

import (
	"time"

	v1 "github.com/ecotrace/carboncore/gen/proto/carboncore/v1"
	"github.com/ecotrace/carboncore/internal/entity"
)

func ToPBReport(r *entity.Report) *v1.Report {
	items := make([]*v1.ItemBreakdown, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, &v1.ItemBreakdown{
			Name:       it.Name,
			Category:   string(it.Category),
			EmissionKg: it.Emission,
			Price:      it.Price,
		})
	}
	return &v1.Report{
		Id:                   r.ID.String(),
		Store:                r.Store,
		StoreRating:          r.StoreRating,
		DefaultRatingApplied: r.DefaultRatingApplied,
		TotalEmissionsKg:     r.TotalEmissionsKg,
		PackagingEmissionKg:  r.PackagingEmissionKg,
		TransportEmissionKg:  r.TransportEmissionKg,
		MilesEquivalent:      r.MilesEquivalent,
		TreesNeeded:          r.TreesNeeded,
		Grade:                r.Grade,
		EcoScore:             int32(r.EcoScore),
		Percentile:           r.Percentile,
		Tier:                 string(r.Tier),
		Items:                items,
		DroppedLines:         int32(r.DroppedLines),
		CreatedAt:            r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// EndOfDay returns the last representable millisecond of t's UTC day, for
// inclusive to-date bounds.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, 1).Add(-time.Millisecond)
}
