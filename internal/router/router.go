package router

import (
	"database/sql"
	"net/http"

	_ "pawfam-api/docs"
	jwtauth "pawfam-api/internal/adapters/auth/jwt"
	"pawfam-api/internal/adapters/auth/password"
	"pawfam-api/internal/adapters/mail/logmail"
	mem "pawfam-api/internal/adapters/storage/memory"
	pg "pawfam-api/internal/adapters/storage/postgres"
	"pawfam-api/internal/domain/accessories"
	"pawfam-api/internal/domain/adoption"
	"pawfam-api/internal/domain/adoptionpets"
	"pawfam-api/internal/domain/daycare"
	"pawfam-api/internal/domain/daycarecenters"
	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/domain/orders"
	"pawfam-api/internal/domain/pets"
	"pawfam-api/internal/domain/profiles"
	"pawfam-api/internal/domain/users"
	"pawfam-api/internal/middleware"
	"pawfam-api/internal/platform/httpx"
	"pawfam-api/internal/platform/logger"
	"pawfam-api/internal/platform/metrics"
	"pawfam-api/internal/ports/auth"
	"pawfam-api/internal/ports/mail"
	"pawfam-api/internal/ports/media"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	Tokens       auth.TokenIssuer

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Todos opcionales; los defaults sirven para dev y tests.
	ResetCodes users.ResetCodeStore
	Hasher     users.PasswordHasher
	Mailer     mail.Sender
	Media      media.Store
	Publisher  history.Publisher
}

type repos struct {
	users          users.Repository
	userProfiles   profiles.UserProfileRepository
	vendorProfiles profiles.VendorProfileRepository
	pets           pets.Repository
	centers        daycarecenters.Repository
	adoptionPets   adoptionpets.Repository
	products       accessories.Repository
	bookings       daycare.Repository
	applications   adoption.Repository
	orders         orders.Repository
	history        history.Repository
	resetCodes     users.ResetCodeStore
}

func memoryRepos() repos {
	return repos{
		users:          mem.NewUserRepo(),
		userProfiles:   mem.NewUserProfileRepo(),
		vendorProfiles: mem.NewVendorProfileRepo(),
		pets:           mem.NewPetRepo(),
		centers:        mem.NewDaycareCenterRepo(),
		adoptionPets:   mem.NewAdoptionPetRepo(),
		products:       mem.NewAccessoryRepo(),
		bookings:       mem.NewBookingRepo(),
		applications:   mem.NewApplicationRepo(),
		orders:         mem.NewOrderRepo(),
		history:        mem.NewHistoryRepo(),
		resetCodes:     mem.NewResetCodeStore(),
	}
}

// postgresRepos deja los códigos de reset en memoria salvo que venga Redis.
func postgresRepos(db *sql.DB) repos {
	return repos{
		users:          pg.NewUsersRepo(db),
		userProfiles:   pg.NewUserProfilesRepo(db),
		vendorProfiles: pg.NewVendorProfilesRepo(db),
		pets:           pg.NewPetsRepo(db),
		centers:        pg.NewCentersRepo(db),
		adoptionPets:   pg.NewAdoptionPetsRepo(db),
		products:       pg.NewAccessoriesRepo(db),
		bookings:       pg.NewBookingsRepo(db),
		applications:   pg.NewApplicationsRepo(db),
		orders:         pg.NewOrdersRepo(db),
		history:        pg.NewHistoryRepo(db),
		resetCodes:     mem.NewResetCodeStore(),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	r.Use(metrics.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var rp repos
	if opts.DB != nil {
		rp = postgresRepos(opts.DB)
	} else {
		rp = memoryRepos()
	}
	if opts.ResetCodes != nil {
		rp.resetCodes = opts.ResetCodes
	}

	hasher := opts.Hasher
	if hasher == nil {
		hasher = password.NewBcrypt(password.DefaultCost)
	}
	tokens := opts.Tokens
	if tokens == nil {
		// modo dev: tokens firmados con un secreto efímero, válidos solo en este proceso
		m, _ := jwtauth.New(uuid.NewString(), jwtauth.DefaultTTL)
		tokens = m
	}
	mailer := opts.Mailer
	if mailer == nil {
		mailer = logmail.New(log)
	}

	// Services por módulo
	historySvc := history.NewService(rp.history, opts.Publisher)
	usersSvc := users.NewService(rp.users, rp.resetCodes, hasher, tokens, mailer)
	profilesSvc := profiles.NewService(rp.userProfiles, rp.vendorProfiles)
	petsSvc := pets.NewService(rp.pets)

	centersSvc := daycarecenters.NewService(rp.centers, opts.Media)
	adoptionPetsSvc := adoptionpets.NewService(rp.adoptionPets, opts.Media)
	productsSvc := accessories.NewService(rp.products, opts.Media)

	bookingsSvc := daycare.NewService(rp.bookings, centersSvc, historySvc)
	applicationsSvc := adoption.NewService(rp.applications, adoptionPetsSvc, historySvc)
	ordersSvc := orders.NewService(rp.orders, productsSvc, historySvc)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc)
		profiles.RegisterRoutes(api, profilesSvc)
		pets.RegisterRoutes(api, petsSvc)

		api.Route("/vendor/daycare", func(vr chi.Router) {
			daycarecenters.RegisterRoutes(vr, centersSvc)
			daycare.RegisterVendorRoutes(vr, bookingsSvc)
		})
		api.Route("/vendor/adoption", func(vr chi.Router) {
			adoptionpets.RegisterRoutes(vr, adoptionPetsSvc)
			adoption.RegisterVendorRoutes(vr, applicationsSvc)
		})
		api.Route("/vendor/accessories", func(vr chi.Router) {
			accessories.RegisterRoutes(vr, productsSvc)
			orders.RegisterVendorRoutes(vr, ordersSvc)
		})

		daycare.RegisterRoutes(api, bookingsSvc)
		adoption.RegisterRoutes(api, applicationsSvc)
		orders.RegisterRoutes(api, ordersSvc)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteMessage(w, http.StatusNotFound, "Route not found")
	})

	return r
}
