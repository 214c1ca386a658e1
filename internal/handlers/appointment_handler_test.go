package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AuMiauServices/petshop-api/internal/audit"
	domain "github.com/AuMiauServices/petshop-api/internal/domain/appointment"
	"github.com/AuMiauServices/petshop-api/internal/middleware"
	"github.com/AuMiauServices/petshop-api/internal/models"
	usecase "github.com/AuMiauServices/petshop-api/internal/usecase/appointment"
)

// -------------------------
// Fakes
// -------------------------

var errFakeNotFound = errors.New("not found")

type fakeAppointmentRepo struct {
	pets         map[uint]models.Pet
	services     map[uint]models.Service
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		pets:         map[uint]models.Pet{},
		services:     map[uint]models.Service{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (r *fakeAppointmentRepo) GetPetForOwner(ctx context.Context, petID, ownerID uint) (*models.Pet, error) {
	pet, ok := r.pets[petID]
	if !ok || pet.UserID != ownerID {
		return nil, errFakeNotFound
	}
	copy := pet
	return &copy, nil
}

func (r *fakeAppointmentRepo) ListServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = r.nextID
	r.nextID++
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeAppointmentRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errFakeNotFound
	}
	copy := *ap
	return &copy, nil
}

func (r *fakeAppointmentRepo) GetAppointmentForOwner(ctx context.Context, id, ownerID uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok || ap.UserID != ownerID {
		return nil, errFakeNotFound
	}
	copy := *ap
	return &copy, nil
}

func (r *fakeAppointmentRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return errFakeNotFound
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeAppointmentRepo) ListByOwner(ctx context.Context, ownerID uint) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.UserID == ownerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

type noopRecorder struct{}

func (noopRecorder) Dispatch(ev audit.Event) {}

// -------------------------
// Router
// -------------------------

func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func newAppointmentRouter(t *testing.T, repo domain.Repository, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAppointmentHandler(
		usecase.NewCreateAppointment(repo, noopRecorder{}),
		usecase.NewCancelAppointment(repo, noopRecorder{}),
		nil,
		usecase.NewListAppointments(repo),
	)

	r := gin.New()
	grp := r.Group("/appointments", asUser(userID))
	grp.POST("", h.Create)
	grp.PUT("/cancel/:id", h.Cancel)
	return r
}

func seedAppointmentRepo() *fakeAppointmentRepo {
	repo := newFakeAppointmentRepo()
	repo.pets[1] = models.Pet{ID: 1, UserID: 1, Name: "Thor", Size: models.PetSizeSmall, Breed: "SRD"}
	repo.services[10] = models.Service{ID: 10, Name: "Banho", Price: 40, EstimatedTime: 30}
	return repo
}

// -------------------------
// Tests
// -------------------------

func TestAppointmentHandlerCreate(t *testing.T) {
	r := newAppointmentRouter(t, seedAppointmentRepo(), 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(
		`{"petId":1,"serviceIds":[10],"scheduledDate":"2026-09-10T14:00:00-03:00"}`,
	))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAppointmentHandlerCreateWithoutServices(t *testing.T) {
	r := newAppointmentRouter(t, seedAppointmentRepo(), 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(
		`{"petId":1,"serviceIds":[],"scheduledDate":"2026-09-10T14:00:00-03:00"}`,
	))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAppointmentHandlerCreateForeignPet(t *testing.T) {
	r := newAppointmentRouter(t, seedAppointmentRepo(), 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(
		`{"petId":1,"serviceIds":[10],"scheduledDate":"2026-09-10T14:00:00-03:00"}`,
	))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAppointmentHandlerCreateUnknownService(t *testing.T) {
	r := newAppointmentRouter(t, seedAppointmentRepo(), 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(
		`{"petId":1,"serviceIds":[10,999],"scheduledDate":"2026-09-10T14:00:00-03:00"}`,
	))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAppointmentHandlerCancelConflicts(t *testing.T) {
	repo := seedAppointmentRepo()
	repo.appointments[5] = &models.Appointment{
		ID:     5,
		UserID: 1,
		Status: string(domain.StatusPending),
	}
	repo.nextID = 6

	r := newAppointmentRouter(t, repo, 1)

	cancel := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/appointments/cancel/5", nil))
		return w
	}

	if w := cancel(); w.Code != http.StatusOK {
		t.Fatalf("first cancel: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if w := cancel(); w.Code != http.StatusConflict {
		t.Fatalf("second cancel: expected 409, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAppointmentHandlerCancelForeign(t *testing.T) {
	repo := seedAppointmentRepo()
	repo.appointments[5] = &models.Appointment{
		ID:     5,
		UserID: 1,
		Status: string(domain.StatusPending),
	}
	repo.nextID = 6

	r := newAppointmentRouter(t, repo, 2)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/appointments/cancel/5", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign appointment, got %d (%s)", w.Code, w.Body.String())
	}
}
