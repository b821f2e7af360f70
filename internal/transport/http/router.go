package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Services bundles the application services the router exposes.
type Services struct {
	Observations ObservationService
	Zones        ZoneService
	Events       EventService
	Feedback     FeedbackService
	LostPersons  LostPersonService
}

// NewRouter wires every API route. CORS is restricted to the given origins;
// an empty list or "*" allows all.
func NewRouter(svcs Services, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", HealthHandler)

	r.Route("/crowd-density", func(r chi.Router) {
		r.Post("/", HandleCreateObservation(svcs.Observations))
		r.Get("/", HandleListObservations(svcs.Observations))
		r.Get("/{id}", HandleGetObservation(svcs.Observations))
		r.Get("/event/{eventID}/latest", HandleLatestByEvent(svcs.Observations))
		r.Get("/event/{eventID}/areas", HandleAreaStates(svcs.Observations))
	})

	r.Route("/zones", func(r chi.Router) {
		r.Post("/", HandleCreateZone(svcs.Zones))
		r.Get("/", HandleListZones(svcs.Zones))
		r.Get("/{id}", HandleGetZone(svcs.Zones))
		r.Put("/{id}", HandleUpdateZone(svcs.Zones))
		r.Patch("/{id}/density", HandleUpdateZoneDensity(svcs.Zones))
		r.Delete("/{id}", HandleDeleteZone(svcs.Zones))
	})

	r.Route("/events", func(r chi.Router) {
		r.Post("/", HandleCreateEvent(svcs.Events))
		r.Get("/", HandleListEvents(svcs.Events))
		r.Get("/{id}", HandleGetEvent(svcs.Events))
		r.Put("/{id}", HandleUpdateEvent(svcs.Events))
		r.Patch("/{id}/status", HandleUpdateEventStatus(svcs.Events))
		r.Delete("/{id}", HandleDeleteEvent(svcs.Events))
	})

	r.Route("/feedback", func(r chi.Router) {
		r.Post("/", HandleCreateFeedback(svcs.Feedback))
		r.Get("/", HandleListFeedback(svcs.Feedback))
		r.Get("/{id}", HandleGetFeedback(svcs.Feedback))
		r.Get("/event/{eventID}/summary", HandleFeedbackSummary(svcs.Feedback))
	})

	r.Route("/lost-persons", func(r chi.Router) {
		r.Post("/", HandleCreateReport(svcs.LostPersons))
		r.Get("/", HandleListReports(svcs.LostPersons))
		r.Get("/{id}", HandleGetReport(svcs.LostPersons))
		r.Patch("/{id}/status", HandleUpdateReportStatus(svcs.LostPersons))
	})

	return r
}
