package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estate-service/internal/core/domain"
	"estate-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quietLogger struct{}

func (quietLogger) Info(msg string, fields port.Fields)             {}
func (quietLogger) Warn(msg string, fields port.Fields)             {}
func (quietLogger) Error(msg string, err error, fields port.Fields) {}
func (quietLogger) Debug(msg string, fields port.Fields)            {}
func (l quietLogger) WithFields(fields port.Fields) port.LoggerPort { return l }

// stubUseCases implements every use case interface the handlers need, each
// method delegating to an overridable func.
type stubUseCases struct {
	create    func(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error)
	update    func(ctx context.Context, id uuid.UUID, draft domain.PropertyDraft) (*domain.Property, error)
	images    func(ctx context.Context, id uuid.UUID, thumbnail *domain.ImageReference, imgs []domain.ImageReference) (*domain.Property, error)
	delete    func(ctx context.Context, id uuid.UUID) error
	setStatus func(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) (*domain.Property, error)
	byID      func(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	bySlug    func(ctx context.Context, slug string) (*domain.Property, error)
	all       func(ctx context.Context) ([]domain.Property, error)
	page      func(ctx context.Context, cursor *uuid.UUID, limit int) (*domain.ListingPage, error)
}

type stubCreate struct{ s *stubUseCases }

func (u stubCreate) Execute(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error) {
	return u.s.create(ctx, draft)
}

type stubUpdate struct{ s *stubUseCases }

func (u stubUpdate) Execute(ctx context.Context, id uuid.UUID, draft domain.PropertyDraft) (*domain.Property, error) {
	return u.s.update(ctx, id, draft)
}

type stubImages struct{ s *stubUseCases }

func (u stubImages) Execute(ctx context.Context, id uuid.UUID, thumbnail *domain.ImageReference, imgs []domain.ImageReference) (*domain.Property, error) {
	return u.s.images(ctx, id, thumbnail, imgs)
}

type stubDelete struct{ s *stubUseCases }

func (u stubDelete) Execute(ctx context.Context, id uuid.UUID) error {
	return u.s.delete(ctx, id)
}

type stubSetStatus struct{ s *stubUseCases }

func (u stubSetStatus) Execute(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) (*domain.Property, error) {
	return u.s.setStatus(ctx, id, status)
}

type stubByID struct{ s *stubUseCases }

func (u stubByID) Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return u.s.byID(ctx, id)
}

type stubBySlug struct{ s *stubUseCases }

func (u stubBySlug) Execute(ctx context.Context, slug string) (*domain.Property, error) {
	return u.s.bySlug(ctx, slug)
}

type stubAll struct{ s *stubUseCases }

func (u stubAll) Execute(ctx context.Context) ([]domain.Property, error) {
	return u.s.all(ctx)
}

type stubPage struct{ s *stubUseCases }

func (u stubPage) Execute(ctx context.Context, cursor *uuid.UUID, limit int) (*domain.ListingPage, error) {
	return u.s.page(ctx, cursor, limit)
}

func sampleProperty() domain.Property {
	return domain.Property{
		ID:           uuid.New(),
		Name:         "Lake House",
		Slug:         "lake-house",
		Description:  "Quiet waterfront retreat",
		PropertyType: "House",
		Price:        450000,
		Location:     "Lakeside, Ohio",
		Bedrooms:     4,
		Bathrooms:    2,
		Features:     []string{"Private Garden"},
		Status:       domain.StatusPublished,
		CreatedAt:    time.Now().UTC(),
	}
}

func newTestServer(stubs *stubUseCases) http.Handler {
	propertyHandlers := NewPropertyHandler(
		stubCreate{stubs}, stubUpdate{stubs}, stubImages{stubs},
		stubDelete{stubs}, stubSetStatus{stubs}, stubByID{stubs}, stubAll{stubs})
	listingHandlers := NewListingHandler(stubPage{stubs}, stubBySlug{stubs})
	server := NewServer("0", []string{"http://localhost:3000"}, propertyHandlers, listingHandlers, quietLogger{})
	return server.Handler()
}

func TestCreatePropertyHandler(t *testing.T) {
	t.Run("valid body gives 201", func(t *testing.T) {
		created := sampleProperty()
		stubs := &stubUseCases{
			create: func(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error) {
				assert.Equal(t, domain.StatusDraft, draft.Status, "omitted status defaults to draft")
				return &created, nil
			},
		}
		handler := newTestServer(stubs)

		body := []byte(`{"name":"Lake House","description":"d","propertyType":"House","price":450000,"location":"Lakeside","bedrooms":4,"bathrooms":2,"features":[]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewReader(body))
		req.Header.Set("X-User-ID", "user-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "lake-house", resp["slug"])
	})

	t.Run("missing identity gives 401", func(t *testing.T) {
		handler := newTestServer(&stubUseCases{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid json gives 400", func(t *testing.T) {
		handler := newTestServer(&stubUseCases{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewReader([]byte("{broken")))
		req.Header.Set("X-User-ID", "user-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error gives 400 with fields", func(t *testing.T) {
		stubs := &stubUseCases{
			create: func(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error) {
				return nil, &domain.ValidationError{Fields: []domain.FieldError{
					{Field: "name", Message: "is required"},
				}}
			},
		}
		handler := newTestServer(stubs)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("X-User-ID", "user-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp struct {
			Error  string             `json:"error"`
			Fields []domain.FieldError `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Fields, 1)
		assert.Equal(t, "name", resp.Fields[0].Field)
	})
}

func TestPropertyMutationHandlers(t *testing.T) {
	property := sampleProperty()

	t.Run("update unknown id gives 404", func(t *testing.T) {
		stubs := &stubUseCases{
			update: func(ctx context.Context, id uuid.UUID, draft domain.PropertyDraft) (*domain.Property, error) {
				return nil, &domain.NotFoundError{Entity: "property", Key: id.String()}
			},
		}
		handler := newTestServer(stubs)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/properties/"+uuid.NewString(), bytes.NewReader([]byte(`{}`)))
		req.Header.Set("X-User-ID", "user-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id gives 400", func(t *testing.T) {
		handler := newTestServer(&stubUseCases{})
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/properties/not-a-uuid", nil)
		req.Header.Set("X-User-ID", "user-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete gives 204", func(t *testing.T) {
		stubs := &stubUseCases{
			delete: func(ctx context.Context, id uuid.UUID) error { return nil },
		}
		handler := newTestServer(stubs)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/properties/"+property.ID.String(), nil)
		req.Header.Set("X-User-ID", "user-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("publish routes to the published status", func(t *testing.T) {
		var gotStatus domain.PropertyStatus
		stubs := &stubUseCases{
			setStatus: func(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) (*domain.Property, error) {
				gotStatus = status
				return &property, nil
			},
		}
		handler := newTestServer(stubs)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/"+property.ID.String()+"/publish", nil)
		req.Header.Set("X-User-ID", "user-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.StatusPublished, gotStatus)
	})
}

func TestListingHandlers(t *testing.T) {
	t.Run("page is public and passes cursor and limit", func(t *testing.T) {
		property := sampleProperty()
		cursorID := uuid.New()
		stubs := &stubUseCases{
			page: func(ctx context.Context, cursor *uuid.UUID, limit int) (*domain.ListingPage, error) {
				require.NotNil(t, cursor)
				assert.Equal(t, cursorID, *cursor)
				assert.Equal(t, 5, limit)
				next := property.ID
				return &domain.ListingPage{
					Items:      []domain.Property{property},
					NextCursor: &next,
					HasMore:    true,
				}, nil
			},
		}
		handler := newTestServer(stubs)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/listings?cursor="+cursorID.String()+"&limit=5", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Items      []json.RawMessage `json:"items"`
			NextCursor *string           `json:"nextCursor"`
			HasMore    bool              `json:"hasMore"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 1)
		require.NotNil(t, resp.NextCursor)
		assert.Equal(t, property.ID.String(), *resp.NextCursor)
		assert.True(t, resp.HasMore)
	})

	t.Run("invalid cursor gives 400", func(t *testing.T) {
		handler := newTestServer(&stubUseCases{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/listings?cursor=banana", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown slug gives 404", func(t *testing.T) {
		stubs := &stubUseCases{
			bySlug: func(ctx context.Context, slug string) (*domain.Property, error) {
				assert.Equal(t, "no-such-slug", slug)
				return nil, nil
			},
		}
		handler := newTestServer(stubs)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/no-such-slug", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("known slug returns the listing", func(t *testing.T) {
		property := sampleProperty()
		stubs := &stubUseCases{
			bySlug: func(ctx context.Context, slug string) (*domain.Property, error) {
				return &property, nil
			},
		}
		handler := newTestServer(stubs)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/lake-house", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "lake-house", resp["slug"])
	})
}
