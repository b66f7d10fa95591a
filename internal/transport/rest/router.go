package rest

import (
	"net/http"
	"strings"

	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/service"
	"github.com/cgabhane/author-website/internal/transport/rest/handler"
	"github.com/cgabhane/author-website/internal/transport/rest/middleware"
	"github.com/cgabhane/author-website/internal/transport/ws"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService         *service.AuthService
	InsightService      *service.InsightService
	SubscriptionService *service.SubscriptionService
	AppointmentService  *service.AppointmentService
	AssessmentService   *service.AssessmentService
	SessionService      *service.SessionService
	ContentService      *service.ContentService
	WSHub               *ws.Hub
	AllowedOrigins      []string
	Logger              logger.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService, c.Logger)
	insightHandler := handler.NewInsightHandler(c.InsightService)
	subHandler := handler.NewSubscriptionHandler(c.SubscriptionService, c.Logger)
	apptHandler := handler.NewAppointmentHandler(c.AppointmentService, c.Logger)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, c.SessionService, c.Logger)
	contentHandler := handler.NewContentHandler(c.ContentService, c.Logger)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.AllowedOrigins, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.AllowedOrigins))
	r.Use(middleware.RequestID, middleware.Logging(c.Logger))

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/health", handler.Health).Methods("GET")
	api.HandleFunc("/insights", insightHandler.List).Methods("GET")
	api.HandleFunc("/subscribe", subHandler.Subscribe).Methods("POST", "OPTIONS")
	api.HandleFunc("/appointments", apptHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessments", assessmentHandler.Save).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	api.HandleFunc("/posts", contentHandler.ListPosts).Methods("GET")
	api.HandleFunc("/posts/{slug}", contentHandler.GetPost).Methods("GET")
	api.HandleFunc("/press-kit", contentHandler.PressKit).Methods("GET")

	// Assessment flow
	api.HandleFunc("/assessment/questions", assessmentHandler.Questions).Methods("GET")
	api.HandleFunc("/assessment/levels", assessmentHandler.Levels).Methods("GET")
	api.HandleFunc("/assessment/sessions", assessmentHandler.CreateSession).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessment/sessions/{id}", assessmentHandler.GetSession).Methods("GET")
	api.HandleFunc("/assessment/sessions/{id}", assessmentHandler.DiscardSession).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/assessment/sessions/{id}/start", assessmentHandler.StartSession).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessment/sessions/{id}/answer", assessmentHandler.Answer).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessment/sessions/{id}/next", assessmentHandler.Next).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessment/sessions/{id}/previous", assessmentHandler.Previous).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessment/sessions/{id}/restart", assessmentHandler.Restart).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessment/sessions/{id}/submit", assessmentHandler.Submit).Methods("POST", "OPTIONS")

	// WebSocket route (admin token in query param)
	api.HandleFunc("/admin/events", wsHandler.Events).Methods("GET")

	// Admin routes
	adminRoutes := api.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/subscribers", subHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/subscribers/count", subHandler.Count).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/appointments", apptHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/appointments/{id}", apptHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/assessments", assessmentHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(allowed []string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := allowOrigin(allowed, r.Header.Get("Origin")); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if origin != "*" {
					w.Header().Add("Vary", "Origin")
				}
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin
func allowOrigin(allowed []string, origin string) string {
	if len(allowed) == 0 {
		return "*"
	}
	for _, o := range allowed {
		if o == "*" {
			return "*"
		}
		if origin != "" && strings.EqualFold(o, origin) {
			return origin
		}
	}
	return ""
}
