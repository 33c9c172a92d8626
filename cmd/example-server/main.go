// Command example-server is a minimal passkey-backed API built on the
// passageflex SDK. It keeps users in memory and issues short-lived JWT
// session tokens once a WebAuthn ceremony has been verified, standing
// in for the application database and session layer a real deployment
// would have.
package main

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sufield/passageflex"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// user is the example's stand-in for an application user record.
type user struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// server holds the in-memory user store and the SDK client.
type server struct {
	mu    sync.Mutex
	users map[string]user // keyed by the ID we hand to the SDK as external ID

	flex      *passageflex.PassageFlex
	jwtSecret []byte
	tokenTTL  time.Duration
}

func main() {
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	configPath := flag.String("config", "", "Path to a passage.yaml config file (default: environment variables)")
	addr := flag.String("addr", ":3000", "Listen address")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("passageflex-example-server %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	var flex *passageflex.PassageFlex
	var err error
	if *configPath != "" {
		flex, err = passageflex.NewFromFile(*configPath)
	} else {
		flex, err = passageflex.NewFromEnv()
	}
	if err != nil {
		log.Fatalf("Failed to configure Passage client: %v", err)
	}

	// Startup check: confirms the credentials before serving traffic.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	app, err := flex.GetApp(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to reach Passage: %v", err)
	}
	log.Printf("Connected to Passage app %q (auth origin %s)", app.Name, app.AuthOrigin)

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("Failed to generate session secret: %v", err)
	}

	srv := &server{
		users:     make(map[string]user),
		flex:      flex,
		jwtSecret: secret,
		tokenTTL:  time.Hour,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/auth/register", srv.handleRegister)
	r.Post("/auth/login", srv.handleLogin)
	r.Post("/auth/verify", srv.handleVerify)

	r.Route("/user/passkeys", func(r chi.Router) {
		r.Use(srv.requireSession)
		r.Get("/", srv.handleListPasskeys)
		r.Post("/add", srv.handleAddPasskey)
		r.Post("/revoke", srv.handleRevokePasskey)
	})

	httpServer := &http.Server{Addr: *addr, Handler: r}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", *addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownCtx.Done()
	log.Println("Shutting down")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

type registerRequest struct {
	Email string `json:"email"`
}

type loginRequest struct {
	Email string `json:"email"`
}

type verifyRequest struct {
	Nonce string `json:"nonce"`
}

type transactionResponse struct {
	TransactionID string `json:"transaction_id"`
}

type verifyResponse struct {
	AuthToken string `json:"auth_token"`
}

type passkey struct {
	FriendlyName string `json:"friendly_name"`
	ID           string `json:"id"`
}

type revokeRequest struct {
	PasskeyID string `json:"passkey_id"`
}

// handleRegister creates a user record and starts a passkey
// registration for it.
func (s *server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	u := user{ID: uuid.NewString(), Email: req.Email}
	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()

	transactionID, err := s.flex.Auth.CreateRegisterTransaction(r.Context(), u.ID, u.Email)
	if err != nil {
		log.Printf("register transaction for %s: %v", u.ID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, transactionResponse{TransactionID: transactionID})
}

// handleLogin starts a passkey authentication for a known user.
func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	var found *user
	for _, u := range s.users {
		if u.Email == req.Email {
			u := u
			found = &u
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	transactionID, err := s.flex.Auth.CreateAuthenticateTransaction(r.Context(), found.ID)
	if errors.Is(err, passageflex.ErrUserHasNoPasskeys) {
		http.Error(w, "user has no passkeys", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("authenticate transaction for %s: %v", found.ID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, transactionResponse{TransactionID: transactionID})
}

// handleVerify exchanges a ceremony nonce for a session token.
func (s *server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Nonce == "" {
		http.Error(w, "nonce is required", http.StatusBadRequest)
		return
	}

	externalID, err := s.flex.Auth.VerifyNonce(r.Context(), req.Nonce)
	if err != nil {
		http.Error(w, "verification failed", http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	_, known := s.users[externalID]
	s.mu.Unlock()
	if !known {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	token, err := s.issueToken(externalID)
	if err != nil {
		log.Printf("issue token for %s: %v", externalID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, verifyResponse{AuthToken: token})
}

// handleAddPasskey starts an additional passkey registration for the
// authenticated user.
func (s *server) handleAddPasskey(w http.ResponseWriter, r *http.Request) {
	u := s.sessionUser(r)

	transactionID, err := s.flex.Auth.CreateRegisterTransaction(r.Context(), u.ID, u.Email)
	if err != nil {
		log.Printf("add passkey for %s: %v", u.ID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, transactionResponse{TransactionID: transactionID})
}

// handleListPasskeys lists the authenticated user's passkeys.
func (s *server) handleListPasskeys(w http.ResponseWriter, r *http.Request) {
	u := s.sessionUser(r)

	devices, err := s.flex.User.ListDevices(r.Context(), u.ID)
	if err != nil {
		log.Printf("list passkeys for %s: %v", u.ID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	passkeys := make([]passkey, 0, len(devices))
	for _, d := range devices {
		passkeys = append(passkeys, passkey{FriendlyName: d.FriendlyName, ID: d.ID})
	}

	writeJSON(w, map[string][]passkey{"passkeys": passkeys})
}

// handleRevokePasskey removes one of the authenticated user's
// passkeys.
func (s *server) handleRevokePasskey(w http.ResponseWriter, r *http.Request) {
	u := s.sessionUser(r)

	var req revokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PasskeyID == "" {
		http.Error(w, "passkey_id is required", http.StatusBadRequest)
		return
	}

	err := s.flex.User.RevokeDevice(r.Context(), u.ID, req.PasskeyID)
	if errors.Is(err, passageflex.ErrDeviceNotFound) {
		http.Error(w, "passkey not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("revoke passkey for %s: %v", u.ID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Write([]byte("OK"))
}

// issueToken signs a session JWT for the user.
func (s *server) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

type contextKey struct{}

var sessionKey contextKey

// requireSession authenticates the auth_token query parameter and
// attaches the user to the request context.
func (s *server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("auth_token")
		if raw == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		s.mu.Lock()
		u, ok := s.users[claims.Subject]
		s.mu.Unlock()
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, u)))
	})
}

func (s *server) sessionUser(r *http.Request) user {
	return r.Context().Value(sessionKey).(user)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
