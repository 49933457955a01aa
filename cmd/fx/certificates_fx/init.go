package certificatesfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"kolok/internal/repositories"
	"kolok/internal/services"
	"kolok/pkg/progression"
)

var Module = fx.Provide(
	provideCertificateRepo, provideEmailTemplateRepo, provideCertificateService)

func provideCertificateRepo(db *gorm.DB) repositories.CertificateRepository {
	return repositories.NewCertificateRepository(db)
}

func provideEmailTemplateRepo(db *gorm.DB) repositories.EmailTemplateRepository {
	return repositories.NewEmailTemplateRepository(db)
}

func provideCertificateService(
	certificateRepo repositories.CertificateRepository,
	checkInRepo repositories.CheckInRepository,
	missionRepo repositories.MissionRepository,
	locationRepo repositories.LocationRepository,
	accountRepo repositories.AccountRepository,
	templateRepo repositories.EmailTemplateRepository,
	mailService services.IMailService,
) services.CertificateServiceInterface {
	policy := progression.ParseMasterPolicy(os.Getenv("MASTER_CERT_POLICY"))
	baseURL := os.Getenv("CERT_BASE_URL")
	if baseURL == "" {
		baseURL = "https://cdn.kolok.app"
	}

	return services.NewCertificateService(
		certificateRepo, checkInRepo, missionRepo, locationRepo,
		accountRepo, templateRepo, mailService, policy, baseURL,
	)
}
