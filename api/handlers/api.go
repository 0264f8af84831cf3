package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/api"
	"github.com/linesmerrill/emergency-dashboard/config"
	"github.com/linesmerrill/emergency-dashboard/databases"
	"github.com/linesmerrill/emergency-dashboard/gateway"
	"github.com/linesmerrill/emergency-dashboard/geo"
	"github.com/linesmerrill/emergency-dashboard/session"
	templates "github.com/linesmerrill/emergency-dashboard/templates/html"
	"github.com/linesmerrill/emergency-dashboard/viewmodels"
)

// App stores the router and the process-wide session, so they can be reused
type App struct {
	Router  *mux.Router
	Config  config.Config
	Gateway *gateway.Client
	Session *session.Session
	Hub     *NotificationHub
	Limiter *api.RateLimiter

	views   *templates.Renderer
	closers []func(context.Context) error
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	operator := &api.OperatorAuth{Username: a.Config.DashboardUsername, PasswordHash: a.Config.DashboardPasswordHash}
	operator.SetupGoGuardian()

	p := pages{session: a.Session, views: a.views}
	locate := a.locator()

	auth := Auth{pages: p}
	d := Dashboard{pages: p, VM: viewmodels.NewDashboard(a.Gateway), Emergencies: viewmodels.NewEmergencies(a.Gateway, a.Config.GeolocationTimeout), Locate: locate}
	e := Emergency{pages: p, VM: viewmodels.NewEmergencies(a.Gateway, a.Config.GeolocationTimeout), UserID: a.Gateway.CurrentUserID}
	h := Hospital{pages: p, VM: viewmodels.NewHospitals(a.Gateway, a.Config.GeolocationTimeout), Locate: locate}
	c := Contact{pages: p, VM: viewmodels.NewContacts(a.Gateway)}
	n := Notification{pages: p, VM: viewmodels.NewNotifications(a.Gateway)}
	amb := Ambulance{pages: p, VM: viewmodels.NewAmbulances(a.Gateway), Hospitals: viewmodels.NewHospitals(a.Gateway, a.Config.GeolocationTimeout)}
	prof := Profile{pages: p, VM: viewmodels.NewProfile(a.Gateway, a.Session)}

	r := mux.NewRouter()
	r.Use(api.LoggingMiddleware)

	// healthchex
	r.HandleFunc("/health", api.HealthCheckHandler).Methods("GET")

	ws := r.PathPrefix("/ws").Subrouter()
	ws.Use(operator.Middleware, p.requireSession)
	ws.Handle("/notifications", a.Hub).Methods("GET")

	app := r.PathPrefix("/").Subrouter()
	app.Use(operator.Middleware, api.TimeoutMiddleware(2*a.Config.APITimeout))

	public := app.PathPrefix("/").Subrouter()
	public.Use(a.Limiter.Middleware)
	public.HandleFunc("/login", auth.LoginPageHandler).Methods("GET")
	public.HandleFunc("/login", auth.LoginHandler).Methods("POST")
	public.HandleFunc("/register", auth.RegisterPageHandler).Methods("GET")
	public.HandleFunc("/register", auth.RegisterHandler).Methods("POST")

	app.HandleFunc("/logout", auth.LogoutHandler).Methods("POST")

	private := app.PathPrefix("/").Subrouter()
	private.Use(p.requireSession)

	private.HandleFunc("/", d.DashboardHandler).Methods("GET")
	private.HandleFunc("/emergencies", d.CreateEmergencyHandler).Methods("POST")

	private.HandleFunc("/emergencies", e.EmergenciesHandler).Methods("GET")
	private.HandleFunc("/emergencies/{emergency_id}", e.EmergencyByIDHandler).Methods("GET")
	private.HandleFunc("/emergencies/{emergency_id}/cancel", e.CancelEmergencyHandler).Methods("POST")
	private.HandleFunc("/emergencies/{emergency_id}/resolve", e.ResolveEmergencyHandler).Methods("POST")

	private.HandleFunc("/hospitals", h.HospitalsHandler).Methods("GET")
	private.HandleFunc("/hospitals", h.CreateHospitalHandler).Methods("POST")
	private.HandleFunc("/hospitals/nearby", h.NearbyHospitalsHandler).Methods("POST")
	private.HandleFunc("/hospitals/{hospital_id}/respond", h.RespondHandler).Methods("POST")

	private.HandleFunc("/contacts", c.ContactsHandler).Methods("GET")
	private.HandleFunc("/contacts", c.CreateContactHandler).Methods("POST")
	private.HandleFunc("/contacts/{contact_id}", c.UpdateContactHandler).Methods("POST")
	private.HandleFunc("/contacts/{contact_id}/delete", c.ConfirmDeleteContactHandler).Methods("GET")
	private.HandleFunc("/contacts/{contact_id}/delete", c.DeleteContactHandler).Methods("POST")

	private.HandleFunc("/notifications", n.NotificationsHandler).Methods("GET")
	private.HandleFunc("/notifications/read-all", n.MarkAllReadHandler).Methods("POST")
	private.HandleFunc("/notifications/{notification_id}/read", n.MarkReadHandler).Methods("POST")

	private.HandleFunc("/ambulances", amb.AmbulancesHandler).Methods("GET")
	private.HandleFunc("/ambulances", amb.CreateAmbulanceHandler).Methods("POST")

	private.HandleFunc("/profile", prof.ProfileHandler).Methods("GET")
	private.HandleFunc("/profile", prof.UpdateProfileHandler).Methods("POST")

	return r
}

// Initialize is invoked by main to open the token store, restore any saved
// session and create a router
func (a *App) Initialize() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := a.tokenStore(ctx)
	if err != nil {
		zap.S().With(err).Error("failed to open token store")
		return err
	}
	if err := a.Setup(store); err != nil {
		return err
	}

	if err := a.Session.Restore(ctx); err != nil {
		// the dashboard still starts; the patient can log in again
		zap.S().Warnw("could not restore previous session", "error", err)
	} else if user, ok := a.Session.CurrentUser(); ok {
		zap.S().Infow("restored previous session", "user", user.Username)
	}
	return nil
}

// Setup builds the gateway, session and router around store
func (a *App) Setup(store databases.TokenStore) error {
	views, err := templates.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	a.views = views
	a.Gateway = gateway.NewClient(a.Config.APIBaseURL, store, gateway.WithTimeout(a.Config.APITimeout))
	a.Session = session.New(a.Gateway)
	a.Hub = NewNotificationHub()
	a.Limiter = api.NewRateLimiter(a.Config.LoginRateLimit, time.Hour)
	a.Router = a.New()
	return nil
}

// Close releases the token store connection
func (a *App) Close(ctx context.Context) {
	a.Hub.Close()
	for _, c := range a.closers {
		if err := c(ctx); err != nil {
			zap.S().Errorw("failed to close", "error", err)
		}
	}
}

func (a *App) tokenStore(ctx context.Context) (databases.TokenStore, error) {
	switch a.Config.TokenStore {
	case config.TokenStoreMongo:
		client, err := databases.NewClient(&a.Config)
		if err != nil {
			return nil, err
		}
		if err := client.Connect(ctx); err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		zap.S().Info("emergency-dashboard has connected to the database")
		return databases.NewTokenDatabase(databases.NewDatabase(&a.Config, client)), nil
	case config.TokenStoreRedis:
		rdb, err := databases.NewRedisClient(ctx, &a.Config)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
		zap.S().Info("emergency-dashboard has connected to redis")
		return databases.NewRedisTokenStore(rdb), nil
	case config.TokenStoreFile, "":
		return databases.NewFileTokenStore(a.Config.TokenFile), nil
	}
	return nil, fmt.Errorf("unknown token store %q", a.Config.TokenStore)
}

// locator builds the position source for a request: the configured device
// location when there is one, then whatever the browser posted
func (a *App) locator() func(r *http.Request) geo.Locator {
	var device geo.Locator
	if a.Config.DeviceLatitude != "" || a.Config.DeviceLongitude != "" {
		c, err := geo.ParseCoordinates(a.Config.DeviceLatitude, a.Config.DeviceLongitude)
		if err != nil {
			zap.S().Warnw("ignoring invalid device location", "latitude", a.Config.DeviceLatitude, "longitude", a.Config.DeviceLongitude)
		} else {
			device = geo.Fixed(c)
		}
	}
	return func(r *http.Request) geo.Locator {
		return geo.First(device, geo.Form(r.PostForm))
	}
}
