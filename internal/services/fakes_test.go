package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"kolok/internal/models/db_models"
)

type fakeCheckInRepo struct {
	completed    map[uuid.UUID]struct{}
	completedErr error
	visited      map[uuid.UUID]struct{}
	visitedErr   error
	history      []db_models.CheckIn
	historyErr   error
	createErr    error

	created []*db_models.CheckIn
	calls   int
}

func (f *fakeCheckInRepo) CreateFromMission(ctx context.Context, accountID uuid.UUID, mission *db_models.Mission) (*db_models.CheckIn, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	checkIn := &db_models.CheckIn{
		AccountID:    accountID,
		LocationID:   mission.LocationID,
		MissionID:    mission.ID,
		PointsEarned: mission.Points,
	}
	checkIn.ID = uuid.New()
	f.created = append(f.created, checkIn)
	return checkIn, nil
}

func (f *fakeCheckInRepo) CompletedMissionIDs(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	f.calls++
	if f.completedErr != nil {
		return nil, f.completedErr
	}
	if f.completed == nil {
		return map[uuid.UUID]struct{}{}, nil
	}
	return f.completed, nil
}

func (f *fakeCheckInRepo) VisitedLocationIDs(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	f.calls++
	if f.visitedErr != nil {
		return nil, f.visitedErr
	}
	if f.visited == nil {
		return map[uuid.UUID]struct{}{}, nil
	}
	return f.visited, nil
}

func (f *fakeCheckInRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.CheckIn, error) {
	f.calls++
	return f.history, f.historyErr
}

type fakeMissionRepo struct {
	missions map[uuid.UUID]*db_models.Mission
	byLoc    map[uuid.UUID][]db_models.Mission
	getErr   error
	listErr  error
	calls    int
}

func (f *fakeMissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Mission, error) {
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.missions[id], nil
}

func (f *fakeMissionRepo) ListActiveByLocation(ctx context.Context, locationID uuid.UUID) ([]db_models.Mission, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byLoc[locationID], nil
}

type fakeLocationRepo struct {
	locations map[string]*db_models.Location
	all       []db_models.Location
	getErr    error
	listErr   error
	calls     int
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id string) (*db_models.Location, error) {
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.locations[id], nil
}

func (f *fakeLocationRepo) List(ctx context.Context, featuredOnly bool, page, pageSize int) ([]db_models.Location, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if !featuredOnly {
		return f.all, nil
	}
	var featured []db_models.Location
	for _, l := range f.all {
		if l.Featured {
			featured = append(featured, l)
		}
	}
	return featured, nil
}

func (f *fakeLocationRepo) ListAll(ctx context.Context) ([]db_models.Location, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.all, nil
}

type fakeRecommendationRepo struct {
	recommendations []db_models.Recommendation
	err             error
}

func (f *fakeRecommendationRepo) ListActiveBySource(ctx context.Context, sourceLocationID uuid.UUID) ([]db_models.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recommendations, nil
}

type fakeCertificateRepo struct {
	created   []*db_models.Certificate
	createErr error
	updateErr error
	listed    []db_models.Certificate
	listErr   error
	calls     int
}

func (f *fakeCertificateRepo) Create(ctx context.Context, certificate *db_models.Certificate) (uuid.UUID, error) {
	f.calls++
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	certificate.ID = uuid.New()
	f.created = append(f.created, certificate)
	return certificate.ID, nil
}

func (f *fakeCertificateRepo) UpdateURL(ctx context.Context, id uuid.UUID, url string) error {
	f.calls++
	return f.updateErr
}

func (f *fakeCertificateRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Certificate, error) {
	f.calls++
	return f.listed, f.listErr
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*db_models.Account
	byEmail  map[string]*db_models.Account
	err      error
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	return f.err
}

type fakeTemplateRepo struct {
	templates map[string]*db_models.EmailTemplate
	err       error
}

func (f *fakeTemplateRepo) FindByName(ctx context.Context, name string) (*db_models.EmailTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.templates[name], nil
}

// fakeMail records deliveries; certificate mail goes out on a goroutine, so
// reads are guarded.
type fakeMail struct {
	mu        sync.Mutex
	sent      []CertificateEmailData
	rawSent   []string
	sendErr   error
	recipient string
}

func (f *fakeMail) SendCertificateIssued(to string, data CertificateEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.recipient = to
	f.sent = append(f.sent, data)
	return nil
}

func (f *fakeMail) Send(to, subject, htmlBody, textBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.recipient = to
	f.rawSent = append(f.rawSent, subject)
	return nil
}

func (f *fakeMail) deliveries() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent) + len(f.rawSent)
}
