package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/castingdesk/casting-api/internal/core/ports"
	"github.com/castingdesk/casting-api/internal/pkg/config"
)

type noopDispatcher struct{}

func (noopDispatcher) Enqueue(ports.MailMessage) {}

type noopResolver struct{}

func (noopResolver) Resolve(context.Context, string) (*ports.GoogleIdentity, error) {
	return nil, nil
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	// The driver connects lazily, so no running MongoDB is needed to build
	// the route table.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	if err != nil {
		t.Fatalf("mongo client: %v", err)
	}
	defer client.Disconnect(context.Background())

	cfg := &config.Config{
		JWTSecret:      "secret",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
	defer rdb.Close()

	e := NewRouter(cfg, client.Database("casting_test"), rdb, noopDispatcher{}, noopResolver{}, zerolog.Nop())

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		http.MethodPost + " /api/user/register",
		http.MethodPost + " /api/user/verify-otp",
		http.MethodPost + " /api/user/resend-otp",
		http.MethodPost + " /api/user/login",
		http.MethodPost + " /api/user/google",
		http.MethodPost + " /api/user/forget-password",
		http.MethodPost + " /api/user/send-forget-password",
		http.MethodGet + " /api/user/get-details",
		// Profile updates historically used POST; both verbs are served.
		http.MethodPost + " /api/user/update-profile",
		http.MethodPut + " /api/user/update-profile",
		http.MethodPost + " /api/create-audition",
		http.MethodGet + " /api/get-all",
		http.MethodGet + " /api/get-all/:id",
		http.MethodGet + " /api/get-all-user/:userId",
		http.MethodPut + " /api/update-audi/:id",
		http.MethodDelete + " /api/delete-audi/:id",
		http.MethodGet + " /",
		http.MethodGet + " /metrics",
		http.MethodGet + " /health",
		http.MethodGet + " /health/ready",
	}
	for _, route := range want {
		if !registered[route] {
			t.Fatalf("route %q not registered", route)
		}
	}
}
