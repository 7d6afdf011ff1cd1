// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable. Object storage is left unconfigured — upload endpoints are
// covered for their validation paths only.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"districtcms/internal/cache"
	"districtcms/internal/database"
	"districtcms/internal/middleware"
	"districtcms/internal/session"
	"districtcms/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "district")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "district")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "list:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB           *sql.DB
	Valkey       *redis.Client
	Sessions     *session.Store
	Projects     *store.ProjectStore
	Services     *store.ServiceStore
	Collection   *store.CollectionItemStore
	Testimonials *store.TestimonialStore
	ClientLogos  *store.ClientLogoStore
	Stats        *store.StatStore
	Media        *store.MediaStore
	Sections     *store.SectionStore
	Users        *store.UserStore
	ListCache    *cache.ListCache
	Admin        *Admin
	Auth         *Auth
	Public       *Public
}

// newTestEnv creates a complete test environment with all handler
// dependencies. Storage is nil (uploads disabled).
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk, false)
	projects := store.NewProjectStore(db)
	services := store.NewServiceStore(db)
	collection := store.NewCollectionItemStore(db)
	testimonials := store.NewTestimonialStore(db)
	clientLogos := store.NewClientLogoStore(db)
	stats := store.NewStatStore(db)
	media := store.NewMediaStore(db)
	sections := store.NewSectionStore(db)
	users := store.NewUserStore(db)
	listCache := cache.NewListCache(vk, 1*time.Minute)

	admin := NewAdmin(projects, services, collection, testimonials,
		clientLogos, stats, media, sections, users, nil, listCache)
	auth := NewAuth(sessions, users)
	public := NewPublic(projects, services, collection, testimonials,
		clientLogos, stats, sections, listCache)

	return &testEnv{
		DB:           db,
		Valkey:       vk,
		Sessions:     sessions,
		Projects:     projects,
		Services:     services,
		Collection:   collection,
		Testimonials: testimonials,
		ClientLogos:  clientLogos,
		Stats:        stats,
		Media:        media,
		Sections:     sections,
		Users:        users,
		ListCache:    listCache,
		Admin:        admin,
		Auth:         auth,
		Public:       public,
	}
}

// ctxWithSession adds session data to a request context the way
// LoadSession does, so handlers under test see a logged-in user.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// editorSession returns a session for a 2FA-complete editor.
func editorSession(userID uuid.UUID) *session.Data {
	return &session.Data{
		UserID:    userID,
		Email:     "editor@test.local",
		FullName:  "Test Editor",
		Role:      "editor",
		TwoFADone: true,
	}
}

// doJSON performs a request against a handler with chi URL params and an
// optional session, returning the recorder.
func doJSON(t *testing.T, h http.HandlerFunc, method, target string, body *string, sess *session.Data, params map[string]string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(*body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	r.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		r.AddCookie(c)
	}

	ctx := r.Context()
	if sess != nil {
		ctx = ctxWithSession(ctx, sess)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	r = r.WithContext(ctx)

	w := httptest.NewRecorder()
	h(w, r)
	return w
}

// createSessionCookie opens a real session in Valkey and returns its
// cookie, for handlers that update session state through the request.
func createSessionCookie(t *testing.T, env *testEnv, data *session.Data) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	if _, err := env.Sessions.Create(context.Background(), w, data); err != nil {
		t.Fatalf("session create: %v", err)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}
