// Package api provides the HTTP API for the community website backend: the
// contact-form email relay and the donation checkout endpoints.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/withamcommunity/wmc-api/idempotency"
	"github.com/withamcommunity/wmc-api/notifications"
	"github.com/withamcommunity/wmc-api/stripe"
	"go.vocdoni.io/dvote/log"
)

// Config holds everything the API server needs, loaded once at startup and
// read-only afterwards. MailService and Payments are nil when the matching
// provider is not configured; the handlers that depend on them then answer
// with a configuration error.
type Config struct {
	Host           string
	Port           int
	AllowedOrigins []string
	// Email relay
	MailService notifications.NotificationService
	MailTo      string
	MailToName  string
	// Donation checkout
	Payments       stripe.SessionCreator
	SuccessURL     string
	CancelURL      string
	MonthlyPriceID string
	// Dedup guards /send-email against accidental double submissions. When
	// nil a fresh store with the default window is used.
	Dedup *idempotency.Store
}

// API type represents the API HTTP server.
type API struct {
	host           string
	port           int
	allowedOrigins []string
	mail           notifications.NotificationService
	mailTo         string
	mailToName     string
	payments       stripe.SessionCreator
	successURL     string
	cancelURL      string
	monthlyPriceID string
	dedup          *idempotency.Store
}

// New creates a new API HTTP server. It does not start the server. Use Start() for that.
func New(conf *Config) *API {
	if conf == nil {
		return nil
	}
	dedup := conf.Dedup
	if dedup == nil {
		dedup = idempotency.New()
	}
	return &API{
		host:           conf.Host,
		port:           conf.Port,
		allowedOrigins: conf.AllowedOrigins,
		mail:           conf.MailService,
		mailTo:         conf.MailTo,
		mailToName:     conf.MailToName,
		payments:       conf.Payments,
		successURL:     conf.SuccessURL,
		cancelURL:      conf.CancelURL,
		monthlyPriceID: conf.MonthlyPriceID,
		dedup:          dedup,
	}
}

// Start starts the API HTTP server (non blocking).
func (a *API) Start() {
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", a.host, a.port), a.initRouter()); err != nil {
			log.Fatalf("failed to start the API server: %v", err)
		}
	}()
}

// initRouter creates the router with all the routes and middleware.
func (a *API) initRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   a.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}).Handler)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Throttle(100))
	r.Use(middleware.Timeout(45 * time.Second))

	log.Infow("new route", "method", "GET", "path", statusEndpoint)
	r.Get(statusEndpoint, a.statusHandler)
	log.Infow("new route", "method", "POST", "path", sendEmailEndpoint)
	r.Post(sendEmailEndpoint, a.sendEmailHandler)
	log.Infow("new route", "method", "POST", "path", oneOffCheckoutEndpoint)
	r.Post(oneOffCheckoutEndpoint, a.createOneOffCheckoutHandler)
	log.Infow("new route", "method", "POST", "path", monthlyCheckoutEndpoint)
	r.Post(monthlyCheckoutEndpoint, a.createMonthlyCheckoutHandler)

	return r
}

// statusHandler reports the service as alive.
func (*API) statusHandler(w http.ResponseWriter, _ *http.Request) {
	httpWriteJSON(w, &StatusResponse{OK: true, Service: ServiceName})
}
