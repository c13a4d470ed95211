package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	assetapp "github.com/hrms/backend/internal/application/asset"
	attendanceapp "github.com/hrms/backend/internal/application/attendance"
	benefitsapp "github.com/hrms/backend/internal/application/benefits"
	complianceapp "github.com/hrms/backend/internal/application/compliance"
	documentapp "github.com/hrms/backend/internal/application/document"
	eventapp "github.com/hrms/backend/internal/application/event"
	expenseapp "github.com/hrms/backend/internal/application/expense"
	identityapp "github.com/hrms/backend/internal/application/identity"
	importapp "github.com/hrms/backend/internal/application/import"
	leaveapp "github.com/hrms/backend/internal/application/leave"
	onboardingapp "github.com/hrms/backend/internal/application/onboarding"
	payrollapp "github.com/hrms/backend/internal/application/payroll"
	performanceapp "github.com/hrms/backend/internal/application/performance"
	printingapp "github.com/hrms/backend/internal/application/printing"
	reportapp "github.com/hrms/backend/internal/application/report"
	workforceapp "github.com/hrms/backend/internal/application/workforce"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/infrastructure/auth"
	"github.com/hrms/backend/internal/infrastructure/cache"
	"github.com/hrms/backend/internal/infrastructure/config"
	"github.com/hrms/backend/internal/infrastructure/event"
	"github.com/hrms/backend/internal/infrastructure/logger"
	"github.com/hrms/backend/internal/infrastructure/persistence"
	printinginfra "github.com/hrms/backend/internal/infrastructure/printing"
	"github.com/hrms/backend/internal/infrastructure/printing/providers"
	"github.com/hrms/backend/internal/infrastructure/scheduler"
	"github.com/hrms/backend/internal/infrastructure/storage"
	"github.com/hrms/backend/internal/interfaces/http/handler"
	"github.com/hrms/backend/internal/interfaces/http/middleware"
	"github.com/hrms/backend/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/hrms/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			HRMS Backend API
//	@version		1.0
//	@description	Multi-tenant human resource management backend API built on DDD
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	https://github.com/hrms/backend
//	@contact.email	support@hrms.example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting HRMS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	attendanceDayRepo := persistence.NewGormAttendanceDayRepository(db.DB)
	shiftRepo := persistence.NewGormShiftRepository(db.DB)
	holidayRepo := persistence.NewGormHolidayRepository(db.DB)
	leaveRequestRepo := persistence.NewGormLeaveRequestRepository(db.DB)
	leaveBalanceRepo := persistence.NewGormLeaveBalanceRepository(db.DB)
	leavePolicyRepo := persistence.NewGormLeavePolicyRepository(db.DB)
	payrollRunRepo := persistence.NewGormPayrollRunRepository(db.DB)
	salaryStructureRepo := persistence.NewGormSalaryStructureRepository(db.DB)
	expenseClaimRepo := persistence.NewGormExpenseClaimRepository(db.DB)
	expensePolicyRepo := persistence.NewGormExpensePolicyRepository(db.DB)
	assetRepo := persistence.NewGormAssetRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	checklistRepo := persistence.NewGormChecklistRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	benefitPlanRepo := persistence.NewGormBenefitPlanRepository(db.DB)
	enrollmentRepo := persistence.NewGormEnrollmentRepository(db.DB)
	requirementRepo := persistence.NewGormRequirementRepository(db.DB)
	assessmentRepo := persistence.NewGormAssessmentRepository(db.DB)
	workforceReportRepo := persistence.NewGormWorkforceReportRepository(db.DB)
	attendanceReportRepo := persistence.NewGormAttendanceReportRepository(db.DB)
	payrollReportRepo := persistence.NewGormPayrollReportRepository(db.DB)
	reportCacheRepo := persistence.NewGormReportCacheRepository(db.DB)
	printTemplateRepo := persistence.NewGormPrintTemplateRepository(db.DB)
	printJobRepo := persistence.NewGormPrintJobRepository(db.DB)
	importHistoryRepo := persistence.NewGormImportHistoryRepository(db.DB)
	outboxRepo := event.NewGormOutboxRepository(db.DB)

	// Initialize event serializer and register all event types
	eventSerializer := event.NewEventSerializer()
	event.RegisterAllEvents(eventSerializer)

	// Create outbox publisher for transactional event saving
	outboxPublisher := event.NewOutboxPublisher(eventSerializer)

	// Inject outbox publisher into repositories that need transactional event publishing
	employeeRepo.SetOutboxEventSaver(outboxPublisher)

	// Object storage for employee documents
	var storageService documentapp.ObjectStorageService
	if cfg.Storage.AccessKey != "" && cfg.Storage.SecretKey != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		storageService = s3Storage
		log.Info("S3 object storage initialized", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		storageService = storage.NewStubObjectStorage()
		log.Warn("Object storage credentials not configured, using stub storage")
	}

	// Identity services (auth, user, role, company, department)
	jwtService := auth.NewJWTService(cfg.JWT)
	var tokenBlacklist auth.TokenBlacklist
	if redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}); err != nil {
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Redis unavailable for token blacklist, using in-memory fallback", zap.Error(err))
	} else {
		tokenBlacklist = redisBlacklist
		log.Info("Redis token blacklist initialized")
	}
	authService := identityapp.NewAuthService(userRepo, roleRepo, jwtService, identityapp.DefaultAuthServiceConfig(), log,
		identityapp.WithTokenBlacklist(tokenBlacklist))
	userService := identityapp.NewUserService(userRepo, roleRepo, log)
	roleService := identityapp.NewRoleService(roleRepo, userRepo, log)
	companyService := identityapp.NewCompanyService(companyRepo, log)
	departmentService := identityapp.NewDepartmentService(departmentRepo, log)

	// Core HR application services
	employeeService := workforceapp.NewEmployeeService(employeeRepo, companyRepo, log)
	attendanceService := attendanceapp.NewAttendanceService(attendanceDayRepo, shiftRepo, holidayRepo, employeeRepo, companyRepo, log)
	shiftService := attendanceapp.NewShiftService(shiftRepo, holidayRepo, log)
	leaveService := leaveapp.NewLeaveService(leaveRequestRepo, leaveBalanceRepo, leavePolicyRepo, employeeRepo, log)
	leavePolicyService := leaveapp.NewPolicyService(leavePolicyRepo, log)
	payrollService := payrollapp.NewPayrollService(
		payrollRunRepo, salaryStructureRepo, employeeRepo,
		attendanceDayRepo, shiftRepo, leaveRequestRepo, departmentRepo, log,
	)
	salaryService := payrollapp.NewSalaryService(salaryStructureRepo, employeeRepo, log)
	expenseService := expenseapp.NewExpenseService(expenseClaimRepo, expensePolicyRepo, employeeRepo, log)
	assetService := assetapp.NewAssetService(assetRepo, employeeRepo, log)
	documentService := documentapp.NewDocumentService(documentRepo, storageService, log)
	onboardingService := onboardingapp.NewOnboardingService(checklistRepo, employeeRepo, log)
	reviewService := performanceapp.NewReviewService(reviewRepo, employeeRepo, log)
	benefitsService := benefitsapp.NewBenefitsService(benefitPlanRepo, enrollmentRepo, employeeRepo, log)
	complianceService := complianceapp.NewComplianceService(requirementRepo, assessmentRepo, log)

	// Report services
	reportService := reportapp.NewReportService(workforceReportRepo, attendanceReportRepo, payrollReportRepo)
	reportAggregationService := reportapp.NewReportAggregationService(
		workforceReportRepo, attendanceReportRepo, payrollReportRepo, reportCacheRepo, log,
	)

	// Printing: PDF renderer, file storage and document data providers
	var pdfRenderer printinginfra.PDFRenderer
	if cfg.Printing.Renderer == "wkhtmltopdf" {
		pdfRenderer, err = printinginfra.NewWkhtmltopdfRenderer(&printinginfra.WkhtmltopdfConfig{
			BinaryPath:     cfg.Printing.WkhtmltopdfPath,
			DefaultTimeout: cfg.Printing.RenderTimeout,
		})
	} else {
		pdfRenderer, err = printinginfra.NewChromedpRenderer(&printinginfra.ChromedpConfig{
			DefaultTimeout:  cfg.Printing.RenderTimeout,
			RemoteURL:       cfg.Printing.ChromeRemoteURL,
			Headless:        true,
			DisableGPU:      true,
			NoSandbox:       true,
			Scale:           1.0,
			PrintBackground: true,
		})
	}
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer",
			zap.String("renderer", cfg.Printing.Renderer), zap.Error(err))
	}
	defer func() {
		if err := pdfRenderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	pdfStorage, err := printinginfra.NewFileSystemStorage(&printinginfra.FileSystemStorageConfig{
		BasePath:      cfg.Printing.StoragePath,
		BaseURL:       cfg.Printing.BaseURL,
		RetentionDays: cfg.Printing.RetentionDays,
		Logger:        log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF storage", zap.Error(err))
	}

	printDataProviders := providers.NewDataProviderRegistry()
	printDataProviders.Register(providers.NewPayslipProvider(payrollRunRepo, employeeRepo, companyRepo))
	printDataProviders.Register(providers.NewExpenseClaimProvider(
		expenseClaimRepo, employeeRepo, departmentRepo, userRepo, companyRepo))
	printDataProviders.Register(providers.NewAttendanceSummaryProvider(
		attendanceDayRepo, employeeRepo, departmentRepo, companyRepo))

	printService := printingapp.NewPrintService(
		printTemplateRepo, printJobRepo, printinginfra.NewTemplateEngine(),
		pdfRenderer, pdfStorage, printDataProviders, log,
	)

	log.Info("Print service initialized",
		zap.String("renderer", cfg.Printing.Renderer),
		zap.Int("data_providers", len(printDataProviders.RegisteredTypes())),
	)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Idempotency store guards handlers against duplicate outbox deliveries.
	// Redis-backed when available, in-memory fallback otherwise.
	idempotencyFactory := cache.NewIdempotencyStoreFactory(cfg.Redis, cache.WithLogger(log))
	idempotencyStore, err := idempotencyFactory.CreateStore()
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}

	// Register event handlers for cross-context integration
	// Employee hired -> onboarding checklist creation
	onboardingHiredHandler := onboardingapp.NewEmployeeHiredHandler(onboardingService, log)

	// Employee hired -> first-year leave balance allocation
	leaveHiredHandler := leaveapp.NewEmployeeHiredHandler(leaveService, log)

	// Leave approved -> attendance records marked as on leave
	leaveApprovedHandler := attendanceapp.NewLeaveApprovedHandler(attendanceService, log)

	// Leave cancelled -> leave markings reverted on attendance records
	leaveCancelledHandler := attendanceapp.NewLeaveCancelledHandler(attendanceService, log)

	// Payroll approved -> statutory remittance filing recorded for review
	payrollApprovedHandler := complianceapp.NewPayrollApprovedHandler(complianceService, log)

	for _, h := range event.WrapHandlersWithIdempotency(
		[]shared.EventHandler{
			onboardingHiredHandler, leaveHiredHandler,
			leaveApprovedHandler, leaveCancelledHandler, payrollApprovedHandler,
		},
		idempotencyStore, log,
		event.WithIdempotencyMetrics(event.GlobalIdempotencyMetrics),
	) {
		eventBus.Subscribe(h)
	}

	log.Info("Event handlers registered",
		zap.Strings("onboarding_hired_events", onboardingHiredHandler.EventTypes()),
		zap.Strings("leave_hired_events", leaveHiredHandler.EventTypes()),
		zap.Strings("leave_approved_events", leaveApprovedHandler.EventTypes()),
		zap.Strings("leave_cancelled_events", leaveCancelledHandler.EventTypes()),
		zap.Strings("payroll_approved_events", payrollApprovedHandler.EventTypes()),
	)

	// Start event bus
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize and start outbox processor for guaranteed event delivery
	// The outbox processor reads events from the outbox_events table and publishes them to the event bus
	outboxProcessorConfig := event.DefaultOutboxProcessorConfig()
	outboxProcessor := event.NewOutboxProcessor(outboxRepo, eventBus, eventSerializer, outboxProcessorConfig, log)
	if err := outboxProcessor.Start(context.Background()); err != nil {
		log.Fatal("Failed to start outbox processor", zap.Error(err))
	}
	defer func() {
		if err := outboxProcessor.Stop(context.Background()); err != nil {
			log.Error("Error stopping outbox processor", zap.Error(err))
		}
	}()
	log.Info("Outbox processor started",
		zap.Int("batch_size", outboxProcessorConfig.BatchSize),
		zap.Duration("poll_interval", outboxProcessorConfig.PollInterval),
	)

	// Inject event bus into services that publish events
	employeeService.SetEventPublisher(eventBus)
	attendanceService.SetEventPublisher(eventBus)
	leaveService.SetEventPublisher(eventBus)
	payrollService.SetEventPublisher(eventBus)
	expenseService.SetEventPublisher(eventBus)
	assetService.SetEventPublisher(eventBus)
	documentService.SetEventPublisher(eventBus)
	onboardingService.SetEventPublisher(eventBus)
	reviewService.SetEventPublisher(eventBus)
	benefitsService.SetEventPublisher(eventBus)
	complianceService.SetEventPublisher(eventBus)

	// Bulk CSV import services
	importHistoryService := importapp.NewImportHistoryService(importHistoryRepo)
	employeeImportService := importapp.NewEmployeeImportService(employeeRepo, departmentRepo, eventBus)

	// Initialize report cron scheduler (if enabled)
	var reportCronScheduler *scheduler.ReportCronScheduler
	if cfg.Scheduler.Enabled {
		cronHour, cronMinute, err := scheduler.ParseCronSchedule(cfg.Scheduler.DailyCronSchedule)
		if err != nil {
			log.Warn("Invalid cron schedule, using default",
				zap.String("schedule", cfg.Scheduler.DailyCronSchedule),
				zap.Error(err),
			)
		}
		cronConfig := scheduler.ReportCronSchedulerConfig{
			Enabled:           cfg.Scheduler.Enabled,
			CronHour:          cronHour,
			CronMinute:        cronMinute,
			DailyCronSchedule: cfg.Scheduler.DailyCronSchedule,
			JobTimeout:        cfg.Scheduler.JobTimeout,
			MaxConcurrentJobs: cfg.Scheduler.MaxConcurrentJobs,
			RetryAttempts:     cfg.Scheduler.RetryAttempts,
			RetryDelay:        cfg.Scheduler.RetryDelay,
		}
		schedulerJobRepo := scheduler.NewSchedulerJobRepository(db.DB)
		reportCronScheduler = scheduler.NewReportCronScheduler(
			cronConfig, reportAggregationService, companyRepo, schedulerJobRepo, log,
		)
		if err := reportCronScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start report scheduler", zap.Error(err))
		}
		defer func() {
			if err := reportCronScheduler.Stop(context.Background()); err != nil {
				log.Error("Error stopping report scheduler", zap.Error(err))
			}
		}()
		log.Info("Report scheduler started",
			zap.String("daily_schedule", cfg.Scheduler.DailyCronSchedule),
			zap.Int("max_concurrent_jobs", cfg.Scheduler.MaxConcurrentJobs),
			zap.Duration("job_timeout", cfg.Scheduler.JobTimeout),
		)
	}

	// Initialize HR maintenance scheduler: attendance finalization, document
	// expiry, compliance review sweep and payroll reminders (if enabled)
	if cfg.Scheduler.Enabled {
		maintenanceExecutor := scheduler.NewHRMaintenanceExecutor(
			attendanceService, documentService, complianceService, log,
		)
		maintenanceScheduler, err := scheduler.NewMaintenanceScheduler(
			scheduler.DefaultMaintenanceSchedulerConfig(), maintenanceExecutor, log,
		)
		if err != nil {
			log.Fatal("Failed to create maintenance scheduler", zap.Error(err))
		}
		if err := maintenanceScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start maintenance scheduler", zap.Error(err))
		}
		defer func() {
			if err := maintenanceScheduler.Stop(context.Background()); err != nil {
				log.Error("Error stopping maintenance scheduler", zap.Error(err))
			}
		}()

		maintenanceCron := scheduler.NewMaintenanceCronTrigger(
			scheduler.DefaultMaintenanceCronTriggerConfig(), maintenanceScheduler, companyRepo, log,
		)
		if err := maintenanceCron.Start(context.Background()); err != nil {
			log.Fatal("Failed to start maintenance cron trigger", zap.Error(err))
		}
		defer func() {
			if err := maintenanceCron.Stop(context.Background()); err != nil {
				log.Error("Error stopping maintenance cron trigger", zap.Error(err))
			}
		}()
		log.Info("Maintenance scheduler started")
	}

	// Initialize HTTP handlers
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	shiftHandler := handler.NewShiftHandler(shiftService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	leavePolicyHandler := handler.NewLeavePolicyHandler(leavePolicyService)
	payrollHandler := handler.NewPayrollHandler(payrollService)
	salaryHandler := handler.NewSalaryHandler(salaryService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	assetHandler := handler.NewAssetHandler(assetService)
	documentHandler := handler.NewDocumentHandler(documentService)
	onboardingHandler := handler.NewOnboardingHandler(onboardingService)
	performanceHandler := handler.NewPerformanceHandler(reviewService)
	benefitsHandler := handler.NewBenefitsHandler(benefitsService)
	complianceHandler := handler.NewComplianceHandler(complianceService)
	companyHandler := handler.NewCompanyHandler(companyService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	reportHandler := handler.NewReportHandler(reportService)
	reportHandler.SetAggregationService(reportAggregationService)
	if reportCronScheduler != nil {
		reportHandler.SetCronScheduler(reportCronScheduler)
	}
	printHandler := handler.NewPrintHandler(printService, pdfStorage)
	importHandler := handler.NewImportHandler()
	employeeImportHandler := handler.NewEmployeeImportHandler(employeeImportService, importHistoryService)
	defer employeeImportHandler.Stop()
	importHistoryHandler := handler.NewImportHistoryHandler(importHistoryService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Swagger documentation endpoint
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	// Configure skip paths for public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: tokenBlacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Resolve tenant context after authentication (JWT claim, header fallback)
	tenantConfig := middleware.DefaultTenantConfig()
	tenantConfig.SkipPaths = append(tenantConfig.SkipPaths, jwtConfig.SkipPaths...)
	tenantConfig.Required = false
	tenantConfig.Logger = log
	r.Use(middleware.TenantMiddlewareWithConfig(tenantConfig))

	// Workforce domain (employee lifecycle)
	workforceRoutes := router.NewDomainGroup("workforce", "/workforce")
	workforceRoutes.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "workforce service ready"})
	})
	workforceRoutes.POST("/employees", employeeHandler.Hire)
	workforceRoutes.GET("/employees", employeeHandler.List)
	workforceRoutes.GET("/employees/stats/headcount", employeeHandler.HeadcountStats)
	workforceRoutes.GET("/employees/code/:code", employeeHandler.GetByCode)
	workforceRoutes.GET("/employees/:id", employeeHandler.GetByID)
	workforceRoutes.GET("/employees/:id/reports", employeeHandler.GetDirectReports)
	workforceRoutes.PUT("/employees/:id", employeeHandler.Update)
	workforceRoutes.PUT("/employees/:id/job", employeeHandler.SetJob)
	workforceRoutes.PUT("/employees/:id/department", employeeHandler.AssignDepartment)
	workforceRoutes.PUT("/employees/:id/manager", employeeHandler.AssignManager)
	workforceRoutes.PUT("/employees/:id/shift", employeeHandler.AssignShift)
	workforceRoutes.PUT("/employees/:id/user", employeeHandler.LinkUser)
	workforceRoutes.PUT("/employees/:id/compensation", employeeHandler.SetCompensation)
	workforceRoutes.PUT("/employees/:id/entitlement", employeeHandler.SetEntitlement)
	workforceRoutes.PUT("/employees/:id/bank", employeeHandler.SetBankDetails)
	workforceRoutes.POST("/employees/:id/confirm", employeeHandler.Confirm)
	workforceRoutes.POST("/employees/:id/notice", employeeHandler.StartNotice)
	workforceRoutes.POST("/employees/:id/terminate", employeeHandler.Terminate)

	// Attendance domain (punch tracking, shifts, holidays)
	attendanceRoutes := router.NewDomainGroup("attendance", "/attendance")
	attendanceRoutes.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "attendance service ready"})
	})
	attendanceRoutes.POST("/punch-in", attendanceHandler.PunchIn)
	attendanceRoutes.POST("/punch-out", attendanceHandler.PunchOut)
	attendanceRoutes.GET("/days", attendanceHandler.ListByDate)
	attendanceRoutes.POST("/days/:id/adjust", attendanceHandler.Adjust)
	attendanceRoutes.POST("/days/:id/approve", attendanceHandler.ApproveAdjustment)
	attendanceRoutes.GET("/approvals", attendanceHandler.ListPendingApprovals)
	attendanceRoutes.GET("/stats", attendanceHandler.CompanyStats)
	attendanceRoutes.POST("/finalize", attendanceHandler.FinalizeDay)
	attendanceRoutes.GET("/employees/:employee_id", attendanceHandler.ListEmployeeRange)
	attendanceRoutes.GET("/employees/:employee_id/day", attendanceHandler.GetDay)
	attendanceRoutes.GET("/employees/:employee_id/stats", attendanceHandler.EmployeeStats)

	// Shift and holiday routes
	attendanceRoutes.POST("/shifts", shiftHandler.CreateShift)
	attendanceRoutes.GET("/shifts", shiftHandler.ListShifts)
	attendanceRoutes.GET("/shifts/:id", shiftHandler.GetShift)
	attendanceRoutes.PUT("/shifts/:id", shiftHandler.UpdateShift)
	attendanceRoutes.PUT("/shifts/:id/overtime-rule", shiftHandler.SetOvertimeRule)
	attendanceRoutes.POST("/shifts/:id/deactivate", shiftHandler.DeactivateShift)
	attendanceRoutes.POST("/holidays", shiftHandler.CreateHoliday)
	attendanceRoutes.GET("/holidays", shiftHandler.ListHolidays)
	attendanceRoutes.DELETE("/holidays/:id", shiftHandler.DeleteHoliday)

	// Leave domain (requests, balances, policies)
	leaveRoutes := router.NewDomainGroup("leave", "/leave")
	leaveRoutes.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "leave service ready"})
	})
	leaveRoutes.POST("/requests", leaveHandler.Submit)
	leaveRoutes.GET("/requests/:id", leaveHandler.GetRequest)
	leaveRoutes.POST("/requests/:id/approve", leaveHandler.Approve)
	leaveRoutes.POST("/requests/:id/reject", leaveHandler.Reject)
	leaveRoutes.POST("/requests/:id/withdraw", leaveHandler.Withdraw)
	leaveRoutes.POST("/requests/:id/cancel", leaveHandler.Cancel)
	leaveRoutes.GET("/approvals", leaveHandler.ListPendingForApprover)
	leaveRoutes.GET("/employees/:employee_id/requests", leaveHandler.ListByEmployee)
	leaveRoutes.GET("/employees/:employee_id/balances", leaveHandler.GetBalances)
	leaveRoutes.POST("/employees/:employee_id/balances/allocate", leaveHandler.AllocateBalances)
	leaveRoutes.POST("/balances/carry-forward", leaveHandler.CarryForward)
	leaveRoutes.POST("/policies", leavePolicyHandler.Create)
	leaveRoutes.GET("/policies", leavePolicyHandler.List)
	leaveRoutes.GET("/policies/:id", leavePolicyHandler.Get)
	leaveRoutes.POST("/policies/:id/deactivate", leavePolicyHandler.Deactivate)
	leaveRoutes.DELETE("/policies/:id", leavePolicyHandler.Delete)

	// Payroll domain (runs, payslips, salary structures)
	payrollRoutes := router.NewDomainGroup("payroll", "/payroll")
	payrollRoutes.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "payroll service ready"})
	})
	payrollRoutes.POST("/runs", payrollHandler.CreateRun)
	payrollRoutes.GET("/runs", payrollHandler.ListRuns)
	payrollRoutes.GET("/runs/:id", payrollHandler.GetRun)
	payrollRoutes.POST("/runs/:id/process", payrollHandler.Process)
	payrollRoutes.POST("/runs/:id/approve", payrollHandler.Approve)
	payrollRoutes.POST("/runs/:id/pay", payrollHandler.MarkPaid)
	payrollRoutes.POST("/runs/:id/reopen", payrollHandler.Reopen)
	payrollRoutes.POST("/runs/:id/cancel", payrollHandler.Cancel)
	payrollRoutes.GET("/payslips/:id", payrollHandler.GetPayslip)
	payrollRoutes.GET("/employees/:employee_id/payslips", payrollHandler.ListEmployeePayslips)
	payrollRoutes.POST("/salary-structures", salaryHandler.Assign)
	payrollRoutes.POST("/salary-structures/:id/revise", salaryHandler.Revise)
	payrollRoutes.GET("/employees/:employee_id/salary-structure", salaryHandler.GetActive)
	payrollRoutes.GET("/employees/:employee_id/salary-history", salaryHandler.GetHistory)

	// Expense domain (claims and reimbursement)
	expenseRoutes := router.NewDomainGroup("expense", "/expenses")
	expenseRoutes.POST("", expenseHandler.Create)
	expenseRoutes.GET("", expenseHandler.ListByStatus)
	expenseRoutes.GET("/stats/status", expenseHandler.StatusCounts)
	expenseRoutes.GET("/employees/:employee_id", expenseHandler.ListByEmployee)
	expenseRoutes.GET("/:id", expenseHandler.Get)
	expenseRoutes.PUT("/:id", expenseHandler.Update)
	expenseRoutes.PUT("/:id/receipt", expenseHandler.AttachReceipt)
	expenseRoutes.POST("/:id/submit", expenseHandler.Submit)
	expenseRoutes.POST("/:id/approve", expenseHandler.Approve)
	expenseRoutes.POST("/:id/reject", expenseHandler.Reject)
	expenseRoutes.POST("/:id/reimburse", expenseHandler.Reimburse)
	expenseRoutes.POST("/:id/cancel", expenseHandler.Cancel)

	// Asset domain (company asset tracking)
	assetRoutes := router.NewDomainGroup("asset", "/assets")
	assetRoutes.POST("", assetHandler.Register)
	assetRoutes.GET("", assetHandler.List)
	assetRoutes.GET("/stats/status", assetHandler.StatusCounts)
	assetRoutes.GET("/warranty-expiring", assetHandler.WarrantyExpiring)
	assetRoutes.GET("/employees/:employee_id", assetHandler.ListByEmployee)
	assetRoutes.GET("/:id", assetHandler.Get)
	assetRoutes.POST("/:id/assign", assetHandler.Assign)
	assetRoutes.POST("/:id/return", assetHandler.Return)
	assetRoutes.POST("/:id/repair", assetHandler.SendForRepair)
	assetRoutes.POST("/:id/repair/complete", assetHandler.CompleteRepair)
	assetRoutes.POST("/:id/maintenance", assetHandler.RecordMaintenance)
	assetRoutes.POST("/:id/retire", assetHandler.Retire)
	assetRoutes.POST("/:id/report-lost", assetHandler.ReportLost)

	// Document domain (employee documents with presigned upload/download)
	documentRoutes := router.NewDomainGroup("document", "/documents")
	documentRoutes.POST("/upload", documentHandler.InitiateUpload)
	documentRoutes.GET("", documentHandler.ListCompanyWide)
	documentRoutes.GET("/expiring", documentHandler.ListExpiring)
	documentRoutes.POST("/expire", documentHandler.ExpireDocuments)
	documentRoutes.GET("/employees/:employee_id", documentHandler.ListByEmployee)
	documentRoutes.GET("/employees/:employee_id/pending-acks", documentHandler.PendingAcknowledgments)
	documentRoutes.GET("/:id", documentHandler.Get)
	documentRoutes.POST("/:id/confirm", documentHandler.ConfirmUpload)
	documentRoutes.PUT("/:id/metadata", documentHandler.SetMetadata)
	documentRoutes.POST("/:id/approve", documentHandler.Approve)
	documentRoutes.POST("/:id/reject", documentHandler.Reject)
	documentRoutes.POST("/:id/acknowledge", documentHandler.Acknowledge)
	documentRoutes.GET("/:id/download", documentHandler.DownloadURL)
	documentRoutes.POST("/:id/archive", documentHandler.Archive)
	documentRoutes.DELETE("/:id", documentHandler.Delete)

	// Onboarding domain (new-hire checklists)
	onboardingRoutes := router.NewDomainGroup("onboarding", "/onboarding")
	onboardingRoutes.POST("/checklists", onboardingHandler.CreateChecklist)
	onboardingRoutes.GET("/checklists", onboardingHandler.ListChecklists)
	onboardingRoutes.POST("/checklists/mark-overdue", onboardingHandler.MarkOverdue)
	onboardingRoutes.GET("/checklists/:id", onboardingHandler.GetChecklist)
	onboardingRoutes.DELETE("/checklists/:id", onboardingHandler.CancelChecklist)
	onboardingRoutes.POST("/checklists/:id/tasks", onboardingHandler.AddTask)
	onboardingRoutes.POST("/checklists/:id/tasks/:task_id/start", onboardingHandler.StartTask)
	onboardingRoutes.POST("/checklists/:id/tasks/:task_id/complete", onboardingHandler.CompleteTask)
	onboardingRoutes.POST("/checklists/:id/tasks/:task_id/skip", onboardingHandler.SkipTask)
	onboardingRoutes.GET("/employees/:employee_id", onboardingHandler.GetByEmployee)

	// Performance domain (review cycles and goals)
	performanceRoutes := router.NewDomainGroup("performance", "/performance")
	performanceRoutes.POST("/reviews", performanceHandler.CreateReview)
	performanceRoutes.GET("/reviews", performanceHandler.ListReviews)
	performanceRoutes.GET("/reviews/overdue", performanceHandler.ListOverdue)
	performanceRoutes.GET("/reviews/:id", performanceHandler.GetReview)
	performanceRoutes.DELETE("/reviews/:id", performanceHandler.Cancel)
	performanceRoutes.POST("/reviews/:id/goals", performanceHandler.AddGoal)
	performanceRoutes.PUT("/reviews/:id/goals/:goal_id", performanceHandler.UpdateGoalProgress)
	performanceRoutes.POST("/reviews/:id/start", performanceHandler.Start)
	performanceRoutes.POST("/reviews/:id/self-assessment", performanceHandler.SubmitSelfAssessment)
	performanceRoutes.POST("/reviews/:id/manager-review", performanceHandler.SubmitManagerReview)
	performanceRoutes.POST("/reviews/:id/finalize", performanceHandler.Finalize)

	// Benefits domain (plans and enrollments)
	benefitsRoutes := router.NewDomainGroup("benefits", "/benefits")
	benefitsRoutes.POST("/plans", benefitsHandler.CreatePlan)
	benefitsRoutes.GET("/plans", benefitsHandler.ListPlans)
	benefitsRoutes.GET("/plans/:id", benefitsHandler.GetPlan)
	benefitsRoutes.POST("/plans/:id/suspend", benefitsHandler.SuspendPlan)
	benefitsRoutes.POST("/plans/:id/reactivate", benefitsHandler.ReactivatePlan)
	benefitsRoutes.POST("/plans/:id/expire", benefitsHandler.ExpirePlan)
	benefitsRoutes.POST("/enrollments", benefitsHandler.Enroll)
	benefitsRoutes.GET("/enrollments/:id", benefitsHandler.GetEnrollment)
	benefitsRoutes.POST("/enrollments/:id/approve", benefitsHandler.ApproveEnrollment)
	benefitsRoutes.POST("/enrollments/:id/decline", benefitsHandler.DeclineEnrollment)
	benefitsRoutes.POST("/enrollments/:id/suspend", benefitsHandler.SuspendEnrollment)
	benefitsRoutes.POST("/enrollments/:id/resume", benefitsHandler.ResumeEnrollment)
	benefitsRoutes.POST("/enrollments/:id/terminate", benefitsHandler.TerminateEnrollment)
	benefitsRoutes.GET("/employees/:employee_id/enrollments", benefitsHandler.ListEmployeeEnrollments)

	// Compliance domain (requirements and assessments)
	complianceRoutes := router.NewDomainGroup("compliance", "/compliance")
	complianceRoutes.GET("/overview", complianceHandler.Overview)
	complianceRoutes.POST("/requirements", complianceHandler.CreateRequirement)
	complianceRoutes.GET("/requirements", complianceHandler.ListRequirements)
	complianceRoutes.GET("/requirements/review-due", complianceHandler.ListReviewDue)
	complianceRoutes.GET("/requirements/:id", complianceHandler.GetRequirement)
	complianceRoutes.POST("/requirements/:id/supersede", complianceHandler.SupersedeRequirement)
	complianceRoutes.POST("/requirements/:id/deactivate", complianceHandler.DeactivateRequirement)
	complianceRoutes.POST("/requirements/:id/assessments", complianceHandler.RecordAssessment)
	complianceRoutes.GET("/requirements/:id/assessments", complianceHandler.ListAssessments)
	complianceRoutes.GET("/assessments/:id", complianceHandler.GetAssessment)
	complianceRoutes.PUT("/assessments/:id/action-plan", complianceHandler.SetActionPlan)
	complianceRoutes.POST("/assessments/:id/complete-actions", complianceHandler.CompleteActions)

	// Report domain (analytics and aggregation)
	reportRoutes := router.NewDomainGroup("report", "/reports")
	reportRoutes.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "report service ready"})
	})
	// Workforce reports
	reportRoutes.GET("/workforce/headcount-summary", reportHandler.GetHeadcountSummary)
	reportRoutes.GET("/workforce/headcount-by-department", reportHandler.GetDepartmentHeadcount)
	reportRoutes.GET("/workforce/headcount-trend", reportHandler.GetHeadcountTrend)
	reportRoutes.GET("/workforce/tenure-distribution", reportHandler.GetTenureDistribution)
	// Attendance reports
	reportRoutes.GET("/attendance/summary", reportHandler.GetAttendanceSummary)
	reportRoutes.GET("/attendance/daily-trend", reportHandler.GetDailyAttendanceTrend)
	reportRoutes.GET("/attendance/absenteeism", reportHandler.GetAbsenteeismRanking)
	// Leave reports
	reportRoutes.GET("/leave/utilization", reportHandler.GetLeaveUtilization)
	// Payroll reports
	reportRoutes.GET("/payroll/cost-summary", reportHandler.GetPayrollCostSummary)
	reportRoutes.GET("/payroll/monthly-trend", reportHandler.GetMonthlyPayrollTrend)
	reportRoutes.GET("/payroll/department-cost", reportHandler.GetDepartmentPayrollCost)
	reportRoutes.GET("/payroll/expense-breakdown", reportHandler.GetExpenseBreakdown)
	// Report aggregation/refresh endpoints
	reportRoutes.POST("/refresh", reportHandler.RefreshReport)
	reportRoutes.POST("/refresh/all", reportHandler.RefreshAllReports)
	reportRoutes.GET("/scheduler/status", reportHandler.GetSchedulerStatus)
	reportRoutes.POST("/scheduler/trigger", reportHandler.TriggerDailyAggregation)

	// Company management (tenant administration)
	companyRoutes := router.NewDomainGroup("company", "/companies")
	companyRoutes.POST("", companyHandler.Create)
	companyRoutes.GET("", companyHandler.List)
	companyRoutes.GET("/stats", companyHandler.GetStats)
	companyRoutes.GET("/code/:code", companyHandler.GetByCode)
	companyRoutes.GET("/:id", companyHandler.Get)
	companyRoutes.PUT("/:id", companyHandler.Update)
	companyRoutes.PUT("/:id/address", companyHandler.SetAddress)
	companyRoutes.PUT("/:id/office-location", companyHandler.SetOfficeLocation)
	companyRoutes.PUT("/:id/settings", companyHandler.UpdateSettings)
	companyRoutes.PUT("/:id/plan", companyHandler.SetPlan)
	companyRoutes.POST("/:id/activate", companyHandler.Activate)
	companyRoutes.POST("/:id/deactivate", companyHandler.Deactivate)
	companyRoutes.POST("/:id/suspend", companyHandler.Suspend)
	companyRoutes.DELETE("/:id", companyHandler.Delete)

	// Department management (org structure)
	departmentRoutes := router.NewDomainGroup("department", "/departments")
	departmentRoutes.POST("", departmentHandler.Create)
	departmentRoutes.GET("", departmentHandler.List)
	departmentRoutes.GET("/tree", departmentHandler.GetTree)
	departmentRoutes.GET("/:id", departmentHandler.Get)
	departmentRoutes.PUT("/:id", departmentHandler.Update)
	departmentRoutes.PUT("/:id/manager", departmentHandler.SetManager)
	departmentRoutes.POST("/:id/move", departmentHandler.Move)
	departmentRoutes.POST("/:id/activate", departmentHandler.Activate)
	departmentRoutes.POST("/:id/deactivate", departmentHandler.Deactivate)
	departmentRoutes.DELETE("/:id", departmentHandler.Delete)

	// Identity domain (authentication, users, roles) - public routes
	// with a stricter rate limit than the global one
	authRateLimiter := middleware.NewRateLimiter(10, time.Minute)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.Use(middleware.AuthRateLimit(authRateLimiter))
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)

	// Identity domain - protected routes
	identityRoutes := router.NewDomainGroup("identity", "/identity")
	identityRoutes.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "identity service ready"})
	})

	// Auth routes requiring authentication
	identityRoutes.POST("/auth/logout", authHandler.Logout)
	identityRoutes.GET("/auth/me", authHandler.GetCurrentUser)
	identityRoutes.PUT("/auth/password", authHandler.ChangePassword)

	// User management routes
	identityRoutes.POST("/users", userHandler.Create)
	identityRoutes.GET("/users", userHandler.List)
	identityRoutes.GET("/users/stats/count", userHandler.Count)
	identityRoutes.GET("/users/:id", userHandler.GetByID)
	identityRoutes.PUT("/users/:id", userHandler.Update)
	identityRoutes.DELETE("/users/:id", userHandler.Delete)
	identityRoutes.POST("/users/:id/activate", userHandler.Activate)
	identityRoutes.POST("/users/:id/deactivate", userHandler.Deactivate)
	identityRoutes.POST("/users/:id/lock", userHandler.Lock)
	identityRoutes.POST("/users/:id/unlock", userHandler.Unlock)
	identityRoutes.POST("/users/:id/reset-password", userHandler.ResetPassword)
	identityRoutes.PUT("/users/:id/roles", userHandler.AssignRoles)

	// Role management routes
	identityRoutes.POST("/roles", roleHandler.Create)
	identityRoutes.GET("/roles", roleHandler.List)
	identityRoutes.GET("/roles/system", roleHandler.GetSystemRoles)
	identityRoutes.GET("/roles/stats/count", roleHandler.Count)
	identityRoutes.GET("/roles/:id", roleHandler.GetByID)
	identityRoutes.GET("/roles/code/:code", roleHandler.GetByCode)
	identityRoutes.PUT("/roles/:id", roleHandler.Update)
	identityRoutes.DELETE("/roles/:id", roleHandler.Delete)
	identityRoutes.POST("/roles/:id/enable", roleHandler.Enable)
	identityRoutes.POST("/roles/:id/disable", roleHandler.Disable)
	identityRoutes.PUT("/roles/:id/permissions", roleHandler.SetPermissions)

	// Permission management
	identityRoutes.GET("/permissions", roleHandler.GetPermissions)

	// Register all domain groups
	r.Register(workforceRoutes).
		Register(attendanceRoutes).
		Register(leaveRoutes).
		Register(payrollRoutes).
		Register(expenseRoutes).
		Register(assetRoutes).
		Register(documentRoutes).
		Register(onboardingRoutes).
		Register(performanceRoutes).
		Register(benefitsRoutes).
		Register(complianceRoutes).
		Register(reportRoutes).
		Register(handler.PrintRoutes(printHandler)).
		Register(handler.PrintFileRoutes(printHandler)).
		Register(handler.ImportRoutes(importHandler, employeeImportHandler, importHistoryHandler)).
		Register(companyRoutes).
		Register(departmentRoutes).
		Register(authRoutes).
		Register(identityRoutes)

	// Register system routes with swagger-documented handlers
	systemHandler := handler.NewSystemHandler()
	outboxService := eventapp.NewOutboxService(outboxRepo, log)
	outboxHandler := handler.NewOutboxHandler(outboxService)
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/outbox/stats", outboxHandler.GetStats)
	systemRoutes.GET("/outbox/dead", outboxHandler.GetDeadLetterEntries)
	systemRoutes.POST("/outbox/dead/retry-all", outboxHandler.RetryAllDeadEntries)
	systemRoutes.GET("/outbox/:id", outboxHandler.GetEntry)
	systemRoutes.POST("/outbox/:id/retry", outboxHandler.RetryDeadEntry)
	r.Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
