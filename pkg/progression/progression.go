package progression

import (
	"github.com/google/uuid"

	"kolok/internal/models/db_models"
)

// MasterPolicy picks the master-certificate eligibility rule. Two rules ship
// because content management has used both: strict completion of every
// location, and an 80% aggregate mission threshold.
type MasterPolicy string

const (
	MasterPolicyAllComplete MasterPolicy = "all_complete"
	MasterPolicyThreshold   MasterPolicy = "threshold"

	// Fraction of the aggregate mission count required under the
	// threshold policy.
	masterThreshold = 0.8
)

func ParseMasterPolicy(s string) MasterPolicy {
	if MasterPolicy(s) == MasterPolicyThreshold {
		return MasterPolicyThreshold
	}
	return MasterPolicyAllComplete
}

// Summary aggregates one location's missions against a completed set. Ratio
// is only defined when HasRatio is true; callers must branch on it.
type Summary struct {
	CompletedMissions int
	TotalMissions     int
	CompletedPoints   int
	TotalPoints       int
	Ratio             float64
	HasRatio          bool
	FullyCompleted    bool
}

func TotalPoints(missions []db_models.Mission) int {
	total := 0
	for _, m := range missions {
		total += m.Points
	}
	return total
}

func CompletedPoints(missions []db_models.Mission, completed map[uuid.UUID]struct{}) int {
	sum := 0
	for _, m := range missions {
		if _, ok := completed[m.ID]; ok {
			sum += m.Points
		}
	}
	return sum
}

// CompletionRatio reports ok=false when the mission set carries no points,
// so division by zero never happens downstream.
func CompletionRatio(missions []db_models.Mission, completed map[uuid.UUID]struct{}) (float64, bool) {
	total := TotalPoints(missions)
	if total <= 0 {
		return 0, false
	}
	return float64(CompletedPoints(missions, completed)) / float64(total), true
}

// IsFullyCompleted is false for an empty mission set: nothing to do is not
// the same as everything done.
func IsFullyCompleted(missions []db_models.Mission, completed map[uuid.UUID]struct{}) bool {
	if len(missions) == 0 {
		return false
	}
	for _, m := range missions {
		if _, ok := completed[m.ID]; !ok {
			return false
		}
	}
	return true
}

func Summarize(missions []db_models.Mission, completed map[uuid.UUID]struct{}) Summary {
	s := Summary{
		TotalMissions:  len(missions),
		TotalPoints:    TotalPoints(missions),
		FullyCompleted: IsFullyCompleted(missions, completed),
	}
	for _, m := range missions {
		if _, ok := completed[m.ID]; ok {
			s.CompletedMissions++
			s.CompletedPoints += m.Points
		}
	}
	if s.TotalPoints > 0 {
		s.Ratio = float64(s.CompletedPoints) / float64(s.TotalPoints)
		s.HasRatio = true
	}
	return s
}

// Aggregate folds per-location summaries into the catalog-wide view used for
// master progress. The same ratio guard applies.
func Aggregate(perLocation []Summary) Summary {
	var agg Summary
	for _, s := range perLocation {
		agg.CompletedMissions += s.CompletedMissions
		agg.TotalMissions += s.TotalMissions
		agg.CompletedPoints += s.CompletedPoints
		agg.TotalPoints += s.TotalPoints
	}
	if agg.TotalPoints > 0 {
		agg.Ratio = float64(agg.CompletedPoints) / float64(agg.TotalPoints)
		agg.HasRatio = true
	}
	return agg
}

// MasterEligible evaluates the chosen policy over the catalog. Locations
// without active missions never gate the all-complete rule.
func MasterEligible(policy MasterPolicy, perLocation []Summary) bool {
	switch policy {
	case MasterPolicyThreshold:
		agg := Aggregate(perLocation)
		if agg.TotalMissions == 0 {
			return false
		}
		return float64(agg.CompletedMissions)/float64(agg.TotalMissions) >= masterThreshold
	default:
		gated := 0
		for _, s := range perLocation {
			if s.TotalMissions == 0 {
				continue
			}
			gated++
			if !s.FullyCompleted {
				return false
			}
		}
		return gated > 0
	}
}
