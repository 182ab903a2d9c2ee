package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sit-project/sit-api/docs"
	v1 "github.com/sit-project/sit-api/internal/api/handler/v1"
	"github.com/sit-project/sit-api/internal/api/handler/v1/request"
	"github.com/sit-project/sit-api/internal/api/middleware"
	"github.com/sit-project/sit-api/internal/config"
	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/notify"
	"github.com/sit-project/sit-api/internal/pkg/storage"
	"github.com/sit-project/sit-api/internal/repository"
	"github.com/sit-project/sit-api/internal/repository/dao"
	"github.com/sit-project/sit-api/internal/service"
)

const basePath = "/sit"

// Deps are the long lived collaborators the handlers share.
type Deps struct {
	DB     *gorm.DB
	Files  *storage.Local
	Mailer service.Mailer
	Hub    *notify.Hub
	// Forecast is nil when no OpenWeather key is configured.
	Forecast service.ForecastClient
}

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Weather and LoginLimiter are shared with the background jobs.
	Weather      *service.WeatherService
	LoginLimiter *middleware.RateLimiter

	deps        Deps
	attachments *service.AttachmentService
}

func NewServer(conf *config.AppConfig, deps Deps) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:       conf,
		Router:       engine,
		LoginLimiter: middleware.NewRateLimiter(conf.API.LoginRateLimit, conf.API.LoginBurst),
		deps:         deps,
	}
	s.attachments = service.NewAttachmentService(
		repository.NewAttachmentRepository(dao.NewAttachmentDAO(deps.DB)), deps.Files, conf.Storage.MaxFiles,
	)
	s.Weather = service.NewWeatherService(repository.NewWeatherRepository(dao.NewWeatherDAO(deps.DB)), deps.Forecast)

	s.MountMiddlewares()

	healthHandler, err := s.initHealthHandler()
	if err != nil {
		return nil, err
	}
	authHandler := s.initAuthHandler()
	userHandler := s.initUserHandler(authHandler)
	s.MountHandlers(healthHandler, authHandler, userHandler)
	s.MountResources()

	return s, nil
}

func (s *Server) initHealthHandler() (*v1.HealthHandler, error) {
	sqlDB, err := s.deps.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}

	return v1.NewHealthHandler(sqlDB, s.deps.Hub), nil
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(s.deps.DB))
	tokenRepo := repository.NewTokenRepository(dao.NewTokenDAO(s.deps.DB))
	svc := service.NewAuthService(userRepo, tokenRepo, s.deps.Mailer, s.Config.Auth, s.Config.Mail.ResetURL)
	handler := v1.NewAuthHandler(s.Config.Auth, svc)

	return handler
}

func (s *Server) initUserHandler(auth *v1.AuthHandler) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(s.deps.DB))
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc, auth)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Metrics())
}

func (s *Server) MountHandlers(healthHandler *v1.HealthHandler, authHandler *v1.AuthHandler, userHandler *v1.UserHandler) {
	public := s.Router.Group(basePath)
	{
		public.POST("/login", s.LoginLimiter.Limit(), authHandler.HandleLogin)
		public.POST("/register", authHandler.HandleSignup)
		public.POST("/session/refresh-token", authHandler.HandleRefresh)
		public.POST("/session/logout", authHandler.HandleLogout)
		public.POST("/send-email", authHandler.HandleSendResetEmail)
		public.POST("/reset/:token", authHandler.HandleResetPassword)
	}

	userHandler.Mount(s.protected("/admin"))

	s.Router.GET("/", healthHandler.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.Router.Group(s.Config.Storage.PublicPath, middleware.ServeUploads()).
		Static("", s.Config.Storage.UploadDir)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "SIT API"
	docs.SwaggerInfo.Description = "Tourism information system: attractions, services, events and their media."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func (s *Server) protected(path string) *gin.RouterGroup {
	return s.Router.Group(basePath+path, middleware.NewAuthenticator(s.Config.Auth.JWTSecret).VerifyJWT())
}

// MountResources registers the catalogue routes and the attachment routes
// of every owner type.
func (s *Server) MountResources() {
	db := s.deps.DB
	files := s.deps.Files
	maxFiles := s.Config.Storage.MaxFiles
	attach := v1.NewAttachmentHandler(s.attachments)

	attraction := s.protected("/atraccion")
	v1.NewResourceHandler[domain.Attraction, request.AttractionRequest]("attraction",
		service.NewResourceService[domain.Attraction](repository.NewAttractionRepository(db)).
			WithFiles(files),
	).Mount(attraction)
	attach.Mount(attraction, domain.OwnerAttraction)

	v1.NewResourceHandler[domain.Accessibility, request.AccessibilityRequest]("accessibility",
		service.NewResourceService[domain.Accessibility](repository.NewAccessibilityRepository(db)),
	).Mount(s.protected("/accesibilidad"))

	transport := s.protected("/transporte")
	v1.NewResourceHandler[domain.Transport, request.TransportRequest]("transport",
		service.NewResourceService[domain.Transport](repository.NewTransportRepository(db)).
			WithFiles(files),
	).Mount(transport)
	attach.Mount(transport, domain.OwnerTransport)

	v1.NewResourceHandler[domain.Owner, request.OwnerRequest]("owner",
		service.NewResourceService[domain.Owner](repository.NewOwnerRepository(db)),
	).Mount(s.protected("/propietario"))

	v1.NewResourceHandler[domain.Category, request.CategoryRequest]("category",
		service.NewResourceService[domain.Category](repository.NewCategoryRepository(db)),
	).Mount(s.protected("/categoria"))

	establishment := s.protected("/establecimiento")
	v1.NewResourceHandler[domain.Establishment, request.EstablishmentRequest]("establishment",
		service.NewResourceService[domain.Establishment](repository.NewEstablishmentRepository(db)).
			WithImages(domain.OwnerEstablishment, files, maxFiles, func(e *domain.Establishment, images []domain.Image) {
				e.Images = images
			}),
	).Mount(establishment)
	attach.Mount(establishment, domain.OwnerEstablishment)

	event := s.protected("/evento")
	v1.NewResourceHandler[domain.TourEvent, request.TourEventRequest]("tour event",
		service.NewResourceService[domain.TourEvent](repository.NewTourEventRepository(db)).
			WithImages(domain.OwnerTourEvent, files, maxFiles, func(e *domain.TourEvent, images []domain.Image) {
				e.Images = images
			}),
	).Mount(event)
	attach.Mount(event, domain.OwnerTourEvent)

	setServiceImages := func(sv *domain.Service, images []domain.Image) {
		sv.Images = images
	}

	security := s.protected("/servicio-seguridad")
	v1.NewResourceHandler[domain.Service, request.ServiceRequest]("security service",
		service.NewResourceService[domain.Service](repository.NewSecurityServiceRepository(db)).
			WithImages(domain.OwnerSecurityService, files, maxFiles, setServiceImages),
	).Mount(security)
	attach.Mount(security, domain.OwnerSecurityService)

	basic := s.protected("/servicio-basico")
	v1.NewResourceHandler[domain.Service, request.ServiceRequest]("basic service",
		service.NewResourceService[domain.Service](repository.NewBasicServiceRepository(db)).
			WithImages(domain.OwnerBasicService, files, maxFiles, setServiceImages),
	).Mount(basic)
	attach.Mount(basic, domain.OwnerBasicService)

	contact := s.protected("/contacto")
	contacts := v1.NewResourceHandler[domain.Contact, request.ContactRequest]("contact",
		service.NewResourceService[domain.Contact](repository.NewContactRepository(db)).
			WithCheck(s.attachments.CheckContactOwner),
	)
	contact.POST("/agregar", attach.HandleAddContacts)
	contact.GET("/listar", contacts.HandleList)
	contact.GET("/buscar/:id", contacts.HandleGet)
	contact.PUT("/actualizar/:id", contacts.HandleUpdate)
	contact.DELETE("/eliminar/:id", contacts.HandleDelete)

	notificationRepo := repository.NewNotificationRepository(dao.NewNotificationDAO(db))
	v1.NewNotificationHandler(service.NewNotificationService(notificationRepo, s.deps.Hub), s.deps.Hub).
		Mount(s.protected("/notificacion"))

	v1.NewResourceHandler[domain.RiskZone, request.RiskZoneRequest]("risk zone",
		service.NewResourceService[domain.RiskZone](repository.NewRiskZoneRepository(db)),
	).Mount(s.protected("/zona-riesgo"))

	site := s.protected("/sitio-arqueologico")
	v1.NewResourceHandler[domain.ArchaeologicalSite, request.ArchaeologicalSiteRequest]("archaeological site",
		service.NewResourceService[domain.ArchaeologicalSite](repository.NewArchaeologicalSiteRepository(db)).
			WithFiles(files),
	).Mount(site)
	attach.Mount(site, domain.OwnerArchaeologicalSite)

	v1.NewResourceHandler[domain.TravelDestination, request.TravelDestinationRequest]("travel destination",
		service.NewResourceService[domain.TravelDestination](repository.NewTravelDestinationRepository(db)),
	).Mount(s.protected("/destino"))

	educational := s.protected("/recurso-educativo")
	v1.NewResourceHandler[domain.EducationalResource, request.EducationalResourceRequest]("educational resource",
		service.NewResourceService[domain.EducationalResource](repository.NewEducationalResourceRepository(db)).
			WithFiles(files),
	).Mount(educational)
	attach.Mount(educational, domain.OwnerEducationalResource)

	legal := s.protected("/info-legal")
	v1.NewResourceHandler[domain.LegalInfo, request.LegalInfoRequest]("legal info",
		service.NewResourceService[domain.LegalInfo](repository.NewLegalInfoRepository(db)).
			WithFiles(files),
	).Mount(legal)
	attach.Mount(legal, domain.OwnerLegalInfo)

	v1.NewMultimediaHandler(service.NewMultimediaService(repository.NewMultimediaRepository(db), files)).
		Mount(s.protected("/multimedia"))

	v1.NewDocumentHandler(service.NewDocumentService(repository.NewDocumentRepository(db), files)).
		Mount(s.protected("/documento"))

	v1.NewWeatherHandler(s.Weather).Mount(s.protected("/clima"))
}
