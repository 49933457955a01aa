package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/google/uuid"

	"kolok/internal/models/db_models"
	"kolok/internal/models/response_models"
	"kolok/internal/repositories"
	"kolok/pkg/progression"
	"kolok/pkg/utils"
)

type CertificateServiceInterface interface {
	// RequestCertificate issues a location certificate when locationID is
	// set, or a master certificate spanning the catalog when it is nil.
	RequestCertificate(ctx context.Context, accountID uuid.UUID, locationID *uuid.UUID, pointsEarned int) (response_models.Certificate, error)
	ListCertificates(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.Certificate, error)
}

type CertificateService struct {
	certificateRepo repositories.CertificateRepository
	checkInRepo     repositories.CheckInRepository
	missionRepo     repositories.MissionRepository
	locationRepo    repositories.LocationRepository
	accountRepo     repositories.AccountRepository
	templateRepo    repositories.EmailTemplateRepository
	mailService     IMailService
	masterPolicy    progression.MasterPolicy
	artifactBaseURL string
}

func NewCertificateService(
	certificateRepo repositories.CertificateRepository,
	checkInRepo repositories.CheckInRepository,
	missionRepo repositories.MissionRepository,
	locationRepo repositories.LocationRepository,
	accountRepo repositories.AccountRepository,
	templateRepo repositories.EmailTemplateRepository,
	mailService IMailService,
	masterPolicy progression.MasterPolicy,
	artifactBaseURL string,
) CertificateServiceInterface {
	return &CertificateService{
		certificateRepo: certificateRepo,
		checkInRepo:     checkInRepo,
		missionRepo:     missionRepo,
		locationRepo:    locationRepo,
		accountRepo:     accountRepo,
		templateRepo:    templateRepo,
		mailService:     mailService,
		masterPolicy:    masterPolicy,
		artifactBaseURL: strings.TrimRight(artifactBaseURL, "/"),
	}
}

func (s *CertificateService) RequestCertificate(ctx context.Context, accountID uuid.UUID, locationID *uuid.UUID, pointsEarned int) (response_models.Certificate, error) {
	if accountID == uuid.Nil {
		return response_models.Certificate{}, utils.ErrUnauthenticated
	}

	completed, err := s.checkInRepo.CompletedMissionIDs(ctx, accountID)
	if err != nil {
		log.Printf("Error loading completed missions: %v", err)
		return response_models.Certificate{}, utils.ErrDatabaseError
	}

	var certLocation *db_models.Location
	if locationID != nil {
		certLocation, err = s.verifyLocationComplete(ctx, *locationID, completed)
	} else {
		err = s.verifyMasterEligible(ctx, completed)
	}
	if err != nil {
		return response_models.Certificate{}, err
	}

	// PointsEarned is the caller's aggregate snapshot, stored verbatim.
	certificate := &db_models.Certificate{
		AccountID:    accountID,
		LocationID:   locationID,
		PointsEarned: pointsEarned,
		IsMaster:     locationID == nil,
	}
	id, err := s.certificateRepo.Create(ctx, certificate)
	if err != nil {
		log.Printf("Error creating certificate: %v", err)
		return response_models.Certificate{}, utils.ErrDatabaseError
	}

	url := fmt.Sprintf("%s/certificates/%s.pdf", s.artifactBaseURL, id)
	if err := s.certificateRepo.UpdateURL(ctx, id, url); err != nil {
		log.Printf("Error storing certificate URL: %v", err)
		return response_models.Certificate{}, utils.ErrDatabaseError
	}
	certificate.CertificateURL = url

	// Fire and forget: delivery outcome is invisible to the caller and
	// never blocks or fails the request.
	go s.sendCertificateEmail(accountID, certificate, certLocation)

	return toCertificateResponse(certificate), nil
}

func (s *CertificateService) ListCertificates(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.Certificate, error) {
	if accountID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}

	certificates, err := s.certificateRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		log.Printf("Error listing certificates: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Certificate, 0, len(certificates))
	for _, c := range certificates {
		resp := toCertificateResponse(&c)
		if c.Location != nil {
			resp.Location = &response_models.LocationRef{
				Name:    c.Location.Name,
				City:    c.Location.City,
				Country: c.Location.Country,
			}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *CertificateService) verifyLocationComplete(ctx context.Context, locationID uuid.UUID, completed map[uuid.UUID]struct{}) (*db_models.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, locationID.String())
	if err != nil {
		log.Printf("Error fetching location: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}

	missions, err := s.missionRepo.ListActiveByLocation(ctx, locationID)
	if err != nil {
		log.Printf("Error listing missions: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if !progression.IsFullyCompleted(missions, completed) {
		return nil, utils.ErrNotEligible
	}
	return location, nil
}

func (s *CertificateService) verifyMasterEligible(ctx context.Context, completed map[uuid.UUID]struct{}) error {
	locations, err := s.locationRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing locations: %v", err)
		return utils.ErrDatabaseError
	}

	summaries := make([]progression.Summary, 0, len(locations))
	for _, location := range locations {
		missions, err := s.missionRepo.ListActiveByLocation(ctx, location.ID)
		if err != nil {
			log.Printf("Error listing missions for %s: %v", location.ID, err)
			return utils.ErrDatabaseError
		}
		summaries = append(summaries, progression.Summarize(missions, completed))
	}

	if !progression.MasterEligible(s.masterPolicy, summaries) {
		return utils.ErrNotEligible
	}
	return nil
}

func (s *CertificateService) sendCertificateEmail(accountID uuid.UUID, certificate *db_models.Certificate, location *db_models.Location) {
	ctx := context.Background()

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil || account == nil {
		log.Printf("Certificate email skipped, account %s unavailable: %v", accountID, err)
		return
	}

	data := CertificateEmailData{
		RecipientName:  account.Name,
		CertificateURL: certificate.CertificateURL,
		PointsEarned:   certificate.PointsEarned,
		IsMaster:       certificate.IsMaster,
	}
	if location != nil {
		data.LocationName = location.Name
	}

	// Content management can override the built-in mail body; the row name
	// matches the email_templates seed.
	if tpl, err := s.templateRepo.FindByName(ctx, "certificate_issued"); err == nil && tpl != nil {
		if err := s.sendFromTemplate(account.Email, tpl, data); err == nil {
			return
		}
		// fall through to the built-in template on render failure
	}

	if err := s.mailService.SendCertificateIssued(account.Email, data); err != nil {
		log.Printf("Error sending certificate email to %s: %v", account.Email, err)
	}
}

func (s *CertificateService) sendFromTemplate(to string, tpl *db_models.EmailTemplate, data CertificateEmailData) error {
	bodyTpl, err := template.New(tpl.Name).Parse(tpl.Body)
	if err != nil {
		log.Printf("Error parsing email template %q: %v", tpl.Name, err)
		return err
	}
	var body bytes.Buffer
	if err := bodyTpl.Execute(&body, data); err != nil {
		log.Printf("Error rendering email template %q: %v", tpl.Name, err)
		return err
	}
	if err := s.mailService.Send(to, tpl.Subject, body.String(), body.String()); err != nil {
		log.Printf("Error sending certificate email to %s: %v", to, err)
	}
	return nil
}

func toCertificateResponse(c *db_models.Certificate) response_models.Certificate {
	resp := response_models.Certificate{
		ID:             c.ID.String(),
		PointsEarned:   c.PointsEarned,
		CertificateURL: c.CertificateURL,
		IsMaster:       c.IsMaster,
		CreatedAt:      c.CreatedAt,
	}
	if c.LocationID != nil {
		id := c.LocationID.String()
		resp.LocationID = &id
	}
	return resp
}
