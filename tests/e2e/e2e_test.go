package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleetrental/internal/database"
	"fleetrental/internal/domain"
	"fleetrental/internal/middleware"
	"fleetrental/internal/modules/auth"
	"fleetrental/internal/modules/fleet"
	"fleetrental/internal/modules/rental"
	"fleetrental/internal/modules/service"
	jwtsvc "fleetrental/internal/pkg/jwt"
	"fleetrental/internal/repository"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
	token  string
}

type testResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorDetail    `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupSuite(t *testing.T) *testSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Company{},
		&domain.Trailer{},
		&domain.Rental{},
		&domain.RentalTrailer{},
		&domain.RentalHistory{},
		&domain.TrailerLog{},
		&domain.ServiceHistory{},
	))

	userRepo := repository.NewUserRepository(db)
	trailerRepo := repository.NewTrailerRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	historyRepo := repository.NewServiceHistoryRepository(db)

	j := jwtsvc.New("e2e-secret", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	fleetHandler := fleet.NewHandler(fleet.NewService(trailerRepo, auditRepo, historyRepo))
	rentalHandler := rental.NewHandler(rental.NewService(rentalRepo, assignmentRepo, companyRepo, trailerRepo))
	maintHandler := service.NewHandler(service.NewService(trailerRepo, historyRepo, auditRepo, assignmentRepo, service.DefaultServiceCenter))

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := domain.User{Username: "admin", PasswordHash: string(hash), Role: domain.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	token, err := j.GenerateToken(admin.ID, admin.Username, string(admin.Role))
	require.NoError(t, err)

	r := gin.New()
	v1 := r.Group("/api/v1")
	authHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(j))
	fleetHandler.RegisterRoutes(protected)
	rentalHandler.RegisterRoutes(protected)
	maintHandler.RegisterRoutes(protected)

	return &testSuite{router: r, db: db, token: token}
}

func (s *testSuite) request(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, *testResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp testResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, &resp
}

func (s *testSuite) createTrailer(t *testing.T, name, serial string) int64 {
	w, resp := s.request(t, http.MethodPost, "/api/v1/trailers", map[string]interface{}{
		"name":                name,
		"ip_address":          "10.0.0.1",
		"serial_number":       serial,
		"registration_number": "WX 1234",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var trailer domain.Trailer
	require.NoError(t, json.Unmarshal(resp.Data, &trailer))
	return trailer.ID
}

func (s *testSuite) createCompany(t *testing.T, name string) int64 {
	w, resp := s.request(t, http.MethodPost, "/api/v1/companies", map[string]interface{}{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)

	var company domain.Company
	require.NoError(t, json.Unmarshal(resp.Data, &company))
	return company.ID
}

func (s *testSuite) createRental(t *testing.T, companyID int64, start, end string) int64 {
	w, resp := s.request(t, http.MethodPost, "/api/v1/rentals", map[string]interface{}{
		"company_id":    companyID,
		"start_date":    start,
		"end_date":      end,
		"monthly_price": 3000,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var r domain.Rental
	require.NoError(t, json.Unmarshal(resp.Data, &r))
	return r.ID
}

func (s *testSuite) assign(t *testing.T, rentalID, trailerID int64) (*httptest.ResponseRecorder, *testResponse) {
	return s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/rentals/%d/trailers", rentalID),
		map[string]interface{}{"trailer_id": trailerID})
}

func TestAssignTrailer_CollisionFlow(t *testing.T) {
	s := setupSuite(t)

	trailerID := s.createTrailer(t, "T-100", "SN-0001")
	companyID := s.createCompany(t, "Nordic Haulage")

	rentalA := s.createRental(t, companyID, "2024-03-01", "2024-03-10")
	rentalB := s.createRental(t, companyID, "2024-03-05", "2024-03-07")

	// First assignment succeeds and writes exactly one audit row.
	w, _ := s.assign(t, rentalA, trailerID)
	assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var history []domain.RentalHistory
	require.NoError(t, s.db.Where("rental_id = ?", rentalA).Find(&history).Error)
	require.Len(t, history, 1)
	assert.Contains(t, history[0].Description, "was added to the rental")

	// Overlapping range on the same trailer is rejected, nothing written.
	w, resp := s.assign(t, rentalB, trailerID)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", resp.Error.Code)

	var count int64
	require.NoError(t, s.db.Model(&domain.RentalTrailer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Unassign frees the trailer and records the removal.
	var link domain.RentalTrailer
	require.NoError(t, s.db.Where("rental_id = ?", rentalA).First(&link).Error)

	w, _ = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/rental-trailers/%d", link.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, s.db.Where("rental_id = ?", rentalA).Find(&history).Error)
	require.Len(t, history, 2)
	assert.Contains(t, history[1].Description, "was removed from the rental")

	// The previously conflicting rental can now take the trailer.
	w, _ = s.assign(t, rentalB, trailerID)
	assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
}

func TestAssignTrailer_InclusiveBoundaries(t *testing.T) {
	s := setupSuite(t)

	trailerID := s.createTrailer(t, "T-200", "SN-0002")
	companyID := s.createCompany(t, "Vistula Logistics")

	base := s.createRental(t, companyID, "2024-03-01", "2024-03-10")
	w, _ := s.assign(t, base, trailerID)
	require.Equal(t, http.StatusCreated, w.Code)

	// Starting the very day the other rental ends still collides.
	sameDay := s.createRental(t, companyID, "2024-03-10", "2024-03-15")
	w, _ = s.assign(t, sameDay, trailerID)
	assert.Equal(t, http.StatusConflict, w.Code)

	// One day of clearance is enough.
	dayAfter := s.createRental(t, companyID, "2024-03-11", "2024-03-15")
	w, _ = s.assign(t, dayAfter, trailerID)
	assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
}

func TestAssignTrailer_SameRentalTwiceIsRejected(t *testing.T) {
	s := setupSuite(t)

	trailerID := s.createTrailer(t, "T-300", "SN-0003")
	companyID := s.createCompany(t, "Nordic Haulage")
	rentalID := s.createRental(t, companyID, "2024-04-01", "2024-04-30")

	w, _ := s.assign(t, rentalID, trailerID)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = s.assign(t, rentalID, trailerID)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSendForService_RelocatesAndUnassigns(t *testing.T) {
	s := setupSuite(t)

	trailerID := s.createTrailer(t, "T-400", "SN-0004")
	companyID := s.createCompany(t, "Nordic Haulage")
	rentalID := s.createRental(t, companyID, "2024-05-01", "2024-05-20")

	w, _ := s.assign(t, rentalID, trailerID)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/trailers/%d/service", trailerID),
		map[string]interface{}{"service_type": "transport", "note": "axle inspection"})
	assert.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var trailer domain.Trailer
	require.NoError(t, s.db.First(&trailer, trailerID).Error)
	assert.Equal(t, domain.TrailerMaintenance, trailer.Status)
	require.NotNil(t, trailer.Latitude)
	assert.Equal(t, service.DefaultServiceCenter.Latitude, *trailer.Latitude)

	// A transport service pulls the trailer out of its rentals.
	var count int64
	require.NoError(t, s.db.Model(&domain.RentalTrailer{}).Where("trailer_id = ?", trailerID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var histories []domain.ServiceHistory
	require.NoError(t, s.db.Where("trailer_id = ?", trailerID).Find(&histories).Error)
	require.Len(t, histories, 1)
}

func TestDuplicateSerialIsRejected(t *testing.T) {
	s := setupSuite(t)

	s.createTrailer(t, "T-500", "SN-0005")

	w, resp := s.request(t, http.MethodPost, "/api/v1/trailers", map[string]interface{}{
		"name":                "T-501",
		"ip_address":          "10.0.0.2",
		"serial_number":       "SN-0005",
		"registration_number": "WX 9999",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
}

func TestLogin_ReturnsToken(t *testing.T) {
	s := setupSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "admin",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.NotEmpty(t, data["access_token"])
}
