package app

import (
	"context"
	"log"
	"time"

	"talento-joven/internal/config"
	"talento-joven/internal/database"
	"talento-joven/internal/database/migration"
	dbpostgres "talento-joven/internal/database/postgres"
	"talento-joven/internal/database/seeder"
	"talento-joven/internal/infrastructure/cache"
	"talento-joven/internal/infrastructure/storage"
	"talento-joven/internal/pkg/jwt"
	"talento-joven/internal/pkg/pdf"
	"talento-joven/internal/repository"
	"talento-joven/internal/usecase"
	"talento-joven/internal/ws"
)

// Container owns every long-lived dependency: the database pool, the
// Redis client, the websocket hub and the usecases built on top of
// them. Close flushes pending editor writes before tearing anything
// down.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	Auth      usecase.AuthUsecase
	CV        usecase.CVUsecase
	Letters   usecase.CoverLetterUsecase
	Export    usecase.ExportUsecase
	Wizard    usecase.WizardUsecase
	Offers    usecase.OfferAdminUsecase
	Companies usecase.CompanyAdminUsecase
	Youth     usecase.YouthAdminUsecase
	Media     usecase.MediaUsecase
	Files     usecase.FilesUsecase

	logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		db.Close()
		return nil, err
	}

	if seeders := seeder.Defaults(cfg.Seed); len(seeders) > 0 {
		if err := (seeder.Runner{Seeders: seeders}).Run(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	converter := pdf.NewChromeDPConverter(cfg.PDF.ChromeWSURL, cfg.PDF.Timeout)

	store, err := storage.NewLocal(cfg.Storage.UploadDir, cfg.Storage.PublicPrefix)
	if err != nil {
		redis.Close()
		db.Close()
		return nil, err
	}

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	offerRepo := repository.NewPostgresOfferRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)
	institutionRepo := repository.NewPostgresInstitutionRepository(db)
	mentorRepo := repository.NewPostgresMentorRepository(db)
	contactRepo := repository.NewPostgresContactRepository(db)
	resourceRepo := repository.NewPostgresResourceRepository(db)
	cvRepo := repository.NewPostgresCVRepository(db)
	letterRepo := repository.NewPostgresCoverLetterRepository(db)

	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewNotifier(hub)

	cvUC := usecase.NewCVUsecase(cvRepo, cfg.App.SaveCoalesceWindow, logger)
	letterUC := usecase.NewCoverLetterUsecase(letterRepo, cfg.App.SaveCoalesceWindow, logger)

	c := &Container{
		Config: cfg,
		DB:     db,
		Cache:  redis,
		Hub:    hub,
		JWT:    jwtSvc,

		Auth:      usecase.NewAuthUsecase(userRepo, jwtSvc),
		CV:        cvUC,
		Letters:   letterUC,
		Export:    usecase.NewExportUsecase(cvUC, letterUC, converter, logger),
		Wizard:    usecase.NewWizardUsecase(profileRepo, userRepo, redis, cfg.App.WizardSessionTTL, logger),
		Offers:    usecase.NewOfferAdminUsecase(offerRepo, redis, notifier, logger),
		Companies: usecase.NewCompanyAdminUsecase(companyRepo, redis, notifier, logger),
		Youth:     usecase.NewYouthAdminUsecase(institutionRepo, mentorRepo, contactRepo, resourceRepo, redis, notifier, logger),
		Media:     usecase.NewMediaUsecase(cfg.Media.AllowedHosts, cfg.Media.ProxyTimeout, logger),
		Files:     usecase.NewFilesUsecase(store),

		logger: logger,
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.CV != nil {
		c.CV.Close()
	}
	if c.Letters != nil {
		c.Letters.Close()
	}
	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
