package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/AuMiauServices/petshop-api/internal/models"
)

func newPetDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// banco em memória: uma conexão só, senão cada conexão enxerga
	// um banco vazio diferente
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Pet{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newPetRouter(t *testing.T, db *gorm.DB, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewPetHandler(db)

	r := gin.New()
	grp := r.Group("/pets", asUser(userID))
	grp.POST("", h.Create)
	grp.GET("/:id", h.Get)
	grp.PUT("/:id", h.Update)
	grp.DELETE("/:id", h.Delete)
	return r
}

func createPet(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const thorJSON = `{"name":"Thor","size":"pequeno","age":3,"breed":"SRD"}`

func TestPetHandlerCreate(t *testing.T) {
	r := newPetRouter(t, newPetDB(t), 1)

	if w := createPet(t, r, thorJSON); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestPetHandlerCreateDuplicateNameSameOwner(t *testing.T) {
	r := newPetRouter(t, newPetDB(t), 1)

	if w := createPet(t, r, thorJSON); w.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if w := createPet(t, r, thorJSON); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("duplicate name: expected 422, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestPetHandlerCreateSameNameOtherOwner(t *testing.T) {
	db := newPetDB(t)

	if w := createPet(t, newPetRouter(t, db, 1), thorJSON); w.Code != http.StatusCreated {
		t.Fatalf("owner 1: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	// a unicidade é por dono, não global
	if w := createPet(t, newPetRouter(t, db, 2), thorJSON); w.Code != http.StatusCreated {
		t.Fatalf("owner 2: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestPetHandlerCreateInvalidSize(t *testing.T) {
	r := newPetRouter(t, newPetDB(t), 1)

	w := createPet(t, r, `{"name":"Thor","size":"gigante","age":3,"breed":"SRD"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestPetHandlerForeignPetRespondsNotFound(t *testing.T) {
	db := newPetDB(t)

	if w := createPet(t, newPetRouter(t, db, 1), thorJSON); w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	other := newPetRouter(t, db, 2)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/pets/1", nil),
		httptest.NewRequest(http.MethodDelete, "/pets/1", nil),
	} {
		w := httptest.NewRecorder()
		other.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d (%s)",
				req.Method, req.URL.Path, w.Code, w.Body.String())
		}
	}
}

func TestPetHandlerUpdateDuplicateName(t *testing.T) {
	db := newPetDB(t)
	r := newPetRouter(t, db, 1)

	if w := createPet(t, r, thorJSON); w.Code != http.StatusCreated {
		t.Fatalf("create thor: %d", w.Code)
	}
	if w := createPet(t, r, `{"name":"Loki","size":"médio","age":2,"breed":"SRD"}`); w.Code != http.StatusCreated {
		t.Fatalf("create loki: %d", w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/pets/2", strings.NewReader(thorJSON))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("rename to taken name: expected 422, got %d (%s)", w.Code, w.Body.String())
	}
}
