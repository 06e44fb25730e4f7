package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalakaar-art/kalakaar-backend/internal/artists"
	"github.com/kalakaar-art/kalakaar-backend/internal/artworks"
	"github.com/kalakaar-art/kalakaar-backend/internal/badges"
	pkgAuth "github.com/kalakaar-art/kalakaar-backend/pkg/auth"
	"github.com/kalakaar-art/kalakaar-backend/pkg/config"
	"github.com/kalakaar-art/kalakaar-backend/pkg/enums"
	pkgerrors "github.com/kalakaar-art/kalakaar-backend/pkg/errors"
	"github.com/kalakaar-art/kalakaar-backend/pkg/logger"
	"github.com/kalakaar-art/kalakaar-backend/pkg/pagination"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

type stubBadgesService struct {
	stats    *badges.Statistics
	eval     *badges.EvaluationResult
	batch    *badges.BatchResult
	verified *badges.VerifiedArtistsPage
	err      error
}

func (s *stubBadgesService) Evaluate(context.Context, uuid.UUID) (*badges.EvaluationResult, error) {
	return s.eval, s.err
}

func (s *stubBadgesService) RunForAllArtists(context.Context) (*badges.BatchResult, error) {
	return s.batch, s.err
}

func (s *stubBadgesService) Statistics(context.Context) (*badges.Statistics, error) {
	return s.stats, s.err
}

func (s *stubBadgesService) ListVerifiedArtists(context.Context, pagination.Params) (*badges.VerifiedArtistsPage, error) {
	return s.verified, s.err
}

type stubArtistsService struct {
	profile *artists.ProfileDTO
	page    *artworks.Page
	err     error
}

func (s *stubArtistsService) Profile(context.Context, uuid.UUID) (*artists.ProfileDTO, error) {
	return s.profile, s.err
}

func (s *stubArtistsService) Artworks(context.Context, uuid.UUID, pagination.Params) (*artworks.Page, error) {
	return s.page, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: config.AppEnvDev},
		JWT: config.JWTConfig{Secret: "router-test-secret", Issuer: "kalakaar-test", ExpirationMinutes: 15},
	}
}

func testRouter(t *testing.T, badgesSvc badges.Service, artistsSvc artists.Service, db, cache stubPinger) http.Handler {
	t.Helper()
	return NewRouter(RouterParams{
		Config:  testConfig(),
		Logger:  logger.New(logger.Options{ServiceName: "router-test"}),
		DB:      db,
		Redis:   cache,
		Badges:  badgesSvc,
		Artists: artistsSvc,
	})
}

func mintToken(t *testing.T, cfg *config.Config, userType enums.UserType) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:   userID,
		UserType: userType,
		JTI:      uuid.NewString(),
	})
	require.NoError(t, err)
	return token, userID
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected data envelope, got %s", rec.Body.String())
	return data
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter(t, &stubBadgesService{}, &stubArtistsService{}, stubPinger{}, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health/live", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, config.AppEnvDev, rec.Header().Get("X-Kalakaar-Env"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health/ready", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthReadyFailsWhenStoreDown(t *testing.T) {
	router := testRouter(t, &stubBadgesService{}, &stubArtistsService{}, stubPinger{err: fmt.Errorf("connection refused")}, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBadgeStatsIsPublic(t *testing.T) {
	svc := &stubBadgesService{stats: &badges.Statistics{
		TotalArtists:     10,
		VerifiedArtists:  4,
		EligibleArtists:  6,
		VerificationRate: 40,
	}}
	router := testRouter(t, svc, &stubArtistsService{}, stubPinger{}, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/badges/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(10), data["total_artists"])
	assert.Equal(t, float64(40), data["verification_rate"])
}

func TestVerifiedArtistsRejectsBadQuery(t *testing.T) {
	router := testRouter(t, &stubBadgesService{}, &stubArtistsService{}, stubPinger{}, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/badges/verified-artists?limit=abc", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckRequiresAuth(t *testing.T) {
	router := testRouter(t, &stubBadgesService{}, &stubArtistsService{}, stubPinger{}, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/badges/check", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckEvaluatesCaller(t *testing.T) {
	cfg := testConfig()
	svc := &stubBadgesService{eval: &badges.EvaluationResult{BadgeAwarded: true, ArtworkCount: 3}}
	router := testRouter(t, svc, &stubArtistsService{}, stubPinger{}, stubPinger{})

	token, _ := mintToken(t, cfg, enums.UserTypeArtist)
	req := httptest.NewRequest("GET", "/api/v1/badges/check", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, true, data["badge_awarded"])
}

func TestCheckSurfacesNotAnArtist(t *testing.T) {
	cfg := testConfig()
	svc := &stubBadgesService{err: pkgerrors.New(pkgerrors.CodeNotAnArtist, "user is not an artist")}
	router := testRouter(t, svc, &stubArtistsService{}, stubPinger{}, stubPinger{})

	token, _ := mintToken(t, cfg, enums.UserTypeBrand)
	req := httptest.NewRequest("GET", "/api/v1/badges/check", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_AN_ARTIST", body["error"]["code"])
}

func TestCheckAllRequiresAdmin(t *testing.T) {
	cfg := testConfig()
	router := testRouter(t, &stubBadgesService{}, &stubArtistsService{}, stubPinger{}, stubPinger{})

	token, _ := mintToken(t, cfg, enums.UserTypeArtist)
	req := httptest.NewRequest("POST", "/api/v1/badges/check-all", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCheckAllRunsBatchForAdmin(t *testing.T) {
	cfg := testConfig()
	failure := "store down"
	svc := &stubBadgesService{batch: &badges.BatchResult{
		TotalArtists:  2,
		BadgesAwarded: 1,
		Results: []badges.BatchEntry{
			{ArtistID: uuid.New(), BadgeAwarded: true},
			{ArtistID: uuid.New(), Error: &failure},
		},
	}}
	router := testRouter(t, svc, &stubArtistsService{}, stubPinger{}, stubPinger{})

	token, _ := mintToken(t, cfg, enums.UserTypeAdmin)
	req := httptest.NewRequest("POST", "/api/v1/badges/check-all", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "partial failures still answer 200")
	data := decodeData(t, rec)
	assert.Equal(t, float64(2), data["total_artists"])
	assert.Equal(t, float64(1), data["badges_awarded"])
}

func TestArtistProfileRoute(t *testing.T) {
	artistID := uuid.New()
	svc := &stubArtistsService{profile: &artists.ProfileDTO{
		ID:           artistID,
		DisplayName:  "Meera",
		Badges:       artists.BadgeDTO{Verified: true},
		ArtworkCount: 5,
	}}
	router := testRouter(t, &stubBadgesService{}, svc, stubPinger{}, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/artists/"+artistID.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "Meera", data["display_name"])
	assert.Equal(t, float64(5), data["artwork_count"])
}

func TestArtistProfileRejectsBadID(t *testing.T) {
	router := testRouter(t, &stubBadgesService{}, &stubArtistsService{}, stubPinger{}, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/artists/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArtistArtworksRoute(t *testing.T) {
	artistID := uuid.New()
	svc := &stubArtistsService{page: &artworks.Page{}}
	router := testRouter(t, &stubBadgesService{}, svc, stubPinger{}, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/artists/"+artistID.String()+"/artworks?page=1&limit=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeaderIsEchoed(t *testing.T) {
	router := testRouter(t, &stubBadgesService{}, &stubArtistsService{}, stubPinger{}, stubPinger{})

	req := httptest.NewRequest("GET", "/api/public/ping", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}
