// Package server provides the HTTP REST API for the hiring console.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/hiring-console/internal/config"
	"github.com/jonathan/hiring-console/internal/db"
	"github.com/jonathan/hiring-console/internal/server/middleware"
	"github.com/jonathan/hiring-console/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer       *http.Server
	db               *db.DB
	timezone         string
	rateLimiter      *ratelimit.Limiter
	jwtService       *JWTService
	recruiterService *RecruiterService
	authHandler      *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	Timezone    string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:       database,
		timezone: config.ResolveTimezone(cfg.Timezone),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.recruiterService = NewRecruiterService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.recruiterService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	// Jobs
	mux.Handle("POST /jobs", requireAuth(http.HandlerFunc(s.handleCreateJob)))
	mux.Handle("GET /jobs", requireAuth(http.HandlerFunc(s.handleListJobs)))
	mux.Handle("GET /jobs/{id}", requireAuth(http.HandlerFunc(s.handleGetJob)))
	mux.Handle("PUT /jobs/{id}", requireAuth(http.HandlerFunc(s.handleUpdateJob)))
	mux.Handle("DELETE /jobs/{id}", requireAuth(http.HandlerFunc(s.handleDeleteJob)))

	// Interview availability
	mux.Handle("GET /jobs/{id}/availability", requireAuth(http.HandlerFunc(s.handleGetAvailability)))
	mux.Handle("PUT /jobs/{id}/availability", requireAuth(http.HandlerFunc(s.handleSaveAvailability)))

	// Automation settings
	mux.Handle("GET /jobs/{id}/automation", requireAuth(http.HandlerFunc(s.handleGetAutomation)))
	mux.Handle("PUT /jobs/{id}/automation", requireAuth(http.HandlerFunc(s.handleSaveAutomation)))

	// Custom screening questions
	mux.Handle("GET /jobs/{id}/questions", requireAuth(http.HandlerFunc(s.handleListQuestions)))
	mux.Handle("POST /jobs/{id}/questions", requireAuth(http.HandlerFunc(s.handleAddQuestion)))
	mux.Handle("DELETE /jobs/{id}/questions/{qid}", requireAuth(http.HandlerFunc(s.handleDeleteQuestion)))

	// Applicants
	mux.Handle("POST /jobs/{id}/applicants", requireAuth(http.HandlerFunc(s.handleCreateApplicant)))
	mux.Handle("GET /jobs/{id}/applicants", requireAuth(http.HandlerFunc(s.handleListApplicants)))
	mux.Handle("GET /jobs/{id}/applicants/{aid}/classification", requireAuth(http.HandlerFunc(s.handleClassifyApplicant)))

	// Dashboard
	mux.Handle("GET /jobs/{id}/summary", requireAuth(http.HandlerFunc(s.handleJobSummary)))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier (IP address) from the
// request for rate limiting.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
