package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kolok/internal/models/db_models"
	"kolok/pkg/memcache"
	"kolok/pkg/utils"
)

func activeMission(locationID uuid.UUID, points int) *db_models.Mission {
	m := &db_models.Mission{LocationID: locationID, Points: points, Active: true}
	m.ID = uuid.New()
	return m
}

func newCheckInService(checkInRepo *fakeCheckInRepo, missionRepo *fakeMissionRepo) CheckInServiceInterface {
	return NewCheckInService(checkInRepo, missionRepo, memcache.NewInFlightGuard())
}

func TestCheckInRequiresAuthentication(t *testing.T) {
	checkInRepo := &fakeCheckInRepo{}
	missionRepo := &fakeMissionRepo{}
	svc := newCheckInService(checkInRepo, missionRepo)

	_, err := svc.CheckIn(context.Background(), uuid.Nil, uuid.New(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
	// No gateway traffic for unauthenticated callers.
	assert.Zero(t, checkInRepo.calls)
	assert.Zero(t, missionRepo.calls)
}

func TestCheckInRejectsAlreadyCompletedMission(t *testing.T) {
	locationID := uuid.New()
	mission := activeMission(locationID, 10)

	checkInRepo := &fakeCheckInRepo{completed: map[uuid.UUID]struct{}{mission.ID: {}}}
	missionRepo := &fakeMissionRepo{missions: map[uuid.UUID]*db_models.Mission{mission.ID: mission}}
	svc := newCheckInService(checkInRepo, missionRepo)

	_, err := svc.CheckIn(context.Background(), uuid.New(), locationID, mission.ID)

	assert.ErrorIs(t, err, utils.ErrAlreadyCheckedIn)
	assert.Empty(t, checkInRepo.created)
}

func TestCheckInUnknownMission(t *testing.T) {
	svc := newCheckInService(&fakeCheckInRepo{}, &fakeMissionRepo{})

	_, err := svc.CheckIn(context.Background(), uuid.New(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrMissionNotFound)
}

func TestCheckInMissionLocationMismatch(t *testing.T) {
	mission := activeMission(uuid.New(), 10)
	missionRepo := &fakeMissionRepo{missions: map[uuid.UUID]*db_models.Mission{mission.ID: mission}}
	svc := newCheckInService(&fakeCheckInRepo{}, missionRepo)

	_, err := svc.CheckIn(context.Background(), uuid.New(), uuid.New(), mission.ID)

	assert.ErrorIs(t, err, utils.ErrMissionNotFound)
}

func TestCheckInInactiveMission(t *testing.T) {
	locationID := uuid.New()
	mission := activeMission(locationID, 10)
	mission.Active = false
	missionRepo := &fakeMissionRepo{missions: map[uuid.UUID]*db_models.Mission{mission.ID: mission}}
	svc := newCheckInService(&fakeCheckInRepo{}, missionRepo)

	_, err := svc.CheckIn(context.Background(), uuid.New(), locationID, mission.ID)

	assert.ErrorIs(t, err, utils.ErrMissionInactive)
}

func TestCheckInSnapshotsMissionPoints(t *testing.T) {
	locationID := uuid.New()
	mission := activeMission(locationID, 25)
	checkInRepo := &fakeCheckInRepo{}
	missionRepo := &fakeMissionRepo{missions: map[uuid.UUID]*db_models.Mission{mission.ID: mission}}
	svc := newCheckInService(checkInRepo, missionRepo)

	result, err := svc.CheckIn(context.Background(), uuid.New(), locationID, mission.ID)

	require.NoError(t, err)
	assert.Equal(t, 25, result.PointsEarned)
	assert.Equal(t, mission.ID.String(), result.MissionID)
	assert.Equal(t, locationID.String(), result.LocationID)
	require.Len(t, checkInRepo.created, 1)
	assert.Equal(t, 25, checkInRepo.created[0].PointsEarned)
}

func TestCheckInMapsDuplicateKeyToAlreadyCheckedIn(t *testing.T) {
	locationID := uuid.New()
	mission := activeMission(locationID, 10)
	checkInRepo := &fakeCheckInRepo{createErr: gorm.ErrDuplicatedKey}
	missionRepo := &fakeMissionRepo{missions: map[uuid.UUID]*db_models.Mission{mission.ID: mission}}
	svc := newCheckInService(checkInRepo, missionRepo)

	_, err := svc.CheckIn(context.Background(), uuid.New(), locationID, mission.ID)

	assert.ErrorIs(t, err, utils.ErrAlreadyCheckedIn)
}

func TestGetHistoryComposesNestedShapes(t *testing.T) {
	mission := db_models.Mission{Title: "Find the mural", Points: 15}
	location := db_models.Location{Name: "Old Town Hall", City: "Bangkok", Country: "Thailand"}
	item := db_models.CheckIn{PointsEarned: 15, Mission: mission, Location: location}
	item.ID = uuid.New()

	checkInRepo := &fakeCheckInRepo{history: []db_models.CheckIn{item}}
	svc := newCheckInService(checkInRepo, &fakeMissionRepo{})

	history, err := svc.GetHistory(context.Background(), uuid.New(), 1, 10)

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Find the mural", history[0].Mission.Title)
	assert.Equal(t, "Bangkok", history[0].Location.City)
	assert.Equal(t, 15, history[0].PointsEarned)
}

func TestGetHistoryRequiresAuthentication(t *testing.T) {
	checkInRepo := &fakeCheckInRepo{}
	svc := newCheckInService(checkInRepo, &fakeMissionRepo{})

	_, err := svc.GetHistory(context.Background(), uuid.Nil, 1, 10)

	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
	assert.Zero(t, checkInRepo.calls)
}
