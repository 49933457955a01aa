package progression

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"kolok/internal/models/db_models"
)

func mission(id uuid.UUID, points int) db_models.Mission {
	m := db_models.Mission{Points: points, Active: true}
	m.ID = id
	return m
}

func idSet(ids ...uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestPointsWithPartialCompletion(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	missions := []db_models.Mission{mission(a, 10), mission(b, 20)}
	completed := idSet(a)

	assert.Equal(t, 30, TotalPoints(missions))
	assert.Equal(t, 10, CompletedPoints(missions, completed))

	ratio, ok := CompletionRatio(missions, completed)
	assert.True(t, ok)
	assert.InDelta(t, 1.0/3.0, ratio, 1e-9)
	assert.False(t, IsFullyCompleted(missions, completed))
}

func TestSingleMissionFullyCompleted(t *testing.T) {
	a := uuid.New()
	missions := []db_models.Mission{mission(a, 10)}
	completed := idSet(a)

	assert.True(t, IsFullyCompleted(missions, completed))
	ratio, ok := CompletionRatio(missions, completed)
	assert.True(t, ok)
	assert.Equal(t, 1.0, ratio)
}

func TestCompletedPointsNeverExceedsTotal(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	missions := []db_models.Mission{mission(a, 5), mission(b, 15)}
	// Completed set may contain ids of missions that were later deactivated.
	completed := idSet(a, b, c)

	assert.LessOrEqual(t, CompletedPoints(missions, completed), TotalPoints(missions))
	assert.Equal(t, 20, CompletedPoints(missions, completed))
}

func TestEmptyMissionSetHasNoRatioAndIsNeverComplete(t *testing.T) {
	_, ok := CompletionRatio(nil, idSet(uuid.New()))
	assert.False(t, ok)
	assert.False(t, IsFullyCompleted(nil, idSet(uuid.New())))

	s := Summarize(nil, nil)
	assert.False(t, s.HasRatio)
	assert.False(t, s.FullyCompleted)
	assert.Equal(t, 0, s.TotalPoints)
}

func TestZeroPointMissionsHaveNoRatio(t *testing.T) {
	a := uuid.New()
	missions := []db_models.Mission{mission(a, 0)}

	_, ok := CompletionRatio(missions, idSet(a))
	assert.False(t, ok)

	// Completion is still tracked by mission count.
	assert.True(t, IsFullyCompleted(missions, idSet(a)))
}

func TestSummarizeCountsAndRatio(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	missions := []db_models.Mission{mission(a, 10), mission(b, 20), mission(c, 30)}

	s := Summarize(missions, idSet(a, c))
	assert.Equal(t, 2, s.CompletedMissions)
	assert.Equal(t, 3, s.TotalMissions)
	assert.Equal(t, 40, s.CompletedPoints)
	assert.Equal(t, 60, s.TotalPoints)
	assert.True(t, s.HasRatio)
	assert.InDelta(t, 2.0/3.0, s.Ratio, 1e-9)
	assert.False(t, s.FullyCompleted)
}

func TestAggregateAcrossLocations(t *testing.T) {
	agg := Aggregate([]Summary{
		{CompletedMissions: 2, TotalMissions: 2, CompletedPoints: 30, TotalPoints: 30, FullyCompleted: true},
		{CompletedMissions: 1, TotalMissions: 4, CompletedPoints: 10, TotalPoints: 50},
	})
	assert.Equal(t, 3, agg.CompletedMissions)
	assert.Equal(t, 6, agg.TotalMissions)
	assert.Equal(t, 40, agg.CompletedPoints)
	assert.Equal(t, 80, agg.TotalPoints)
	assert.True(t, agg.HasRatio)
	assert.InDelta(t, 0.5, agg.Ratio, 1e-9)
}

func TestMasterAllCompletePolicy(t *testing.T) {
	complete := Summary{CompletedMissions: 2, TotalMissions: 2, FullyCompleted: true}
	partial := Summary{CompletedMissions: 1, TotalMissions: 2}
	empty := Summary{}

	assert.True(t, MasterEligible(MasterPolicyAllComplete, []Summary{complete, complete}))
	assert.False(t, MasterEligible(MasterPolicyAllComplete, []Summary{complete, partial}))
	// Locations without active missions don't gate eligibility.
	assert.True(t, MasterEligible(MasterPolicyAllComplete, []Summary{complete, empty}))
	assert.False(t, MasterEligible(MasterPolicyAllComplete, []Summary{empty}))
	assert.False(t, MasterEligible(MasterPolicyAllComplete, nil))
}

func TestMasterThresholdPolicy(t *testing.T) {
	assert.True(t, MasterEligible(MasterPolicyThreshold, []Summary{
		{CompletedMissions: 4, TotalMissions: 5},
	}))
	assert.False(t, MasterEligible(MasterPolicyThreshold, []Summary{
		{CompletedMissions: 3, TotalMissions: 5},
	}))
	assert.False(t, MasterEligible(MasterPolicyThreshold, []Summary{{}}))
}

func TestParseMasterPolicyDefaultsToAllComplete(t *testing.T) {
	assert.Equal(t, MasterPolicyThreshold, ParseMasterPolicy("threshold"))
	assert.Equal(t, MasterPolicyAllComplete, ParseMasterPolicy("all_complete"))
	assert.Equal(t, MasterPolicyAllComplete, ParseMasterPolicy(""))
	assert.Equal(t, MasterPolicyAllComplete, ParseMasterPolicy("bogus"))
}
