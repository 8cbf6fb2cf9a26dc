package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/anchorhq/anchor/internal/config"
	"github.com/anchorhq/anchor/internal/db"
	"github.com/anchorhq/anchor/internal/repository"
	"github.com/anchorhq/anchor/internal/service"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	AuthService      *service.AuthService
	UserService      *service.UserService
	ProfileService   *service.ProfileService
	EmailService     *service.EmailService
	CheckInService   *service.CheckInService
	MilestoneService *service.MilestoneService
	ProgressService  *service.ProgressService
	GoalService      *service.GoalService
	ContactService   *service.ContactService
	StrategyService  *service.StrategyService
	LibraryService   *service.LibraryService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	tokenRepository := repository.NewTokenRepository(database)
	checkInRepository := repository.NewCheckInRepository(database)
	milestoneRepository := repository.NewMilestoneRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	contactRepository := repository.NewContactRepository(database)
	strategyRepository := repository.NewStrategyRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	milestoneService := service.NewMilestoneService(
		milestoneRepository,
		checkInRepository,
		profileRepository,
		userRepository,
		emailService,
	)
	checkInService := service.NewCheckInService(checkInRepository, milestoneService)
	progressService := service.NewProgressService(checkInRepository, profileRepository, cfg.StreakWindowDays)
	goalService := service.NewGoalService(goalRepository)
	contactService := service.NewContactService(contactRepository)
	strategyService := service.NewStrategyService(strategyRepository)
	libraryService := service.NewLibraryService(cfg.ContentPath)
	authService := service.NewAuthService(
		userRepository,
		profileRepository,
		tokenRepository,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
		cfg.TokenEmailChangeExpiry,
		cfg.TokenMagicLinkExpiry,
	)
	userService := service.NewUserService(userRepository, profileRepository, emailService)
	profileService := service.NewProfileService(profileRepository)

	return &App{
		Cfg:              cfg,
		DB:               database,
		AuthService:      authService,
		UserService:      userService,
		ProfileService:   profileService,
		EmailService:     emailService,
		CheckInService:   checkInService,
		MilestoneService: milestoneService,
		ProgressService:  progressService,
		GoalService:      goalService,
		ContactService:   contactService,
		StrategyService:  strategyService,
		LibraryService:   libraryService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
