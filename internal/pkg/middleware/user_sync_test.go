package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	synced []models.Principal
	err    error
}

func (s *fakeUserStore) EnsureUser(_ context.Context, principal models.Principal) error {
	s.synced = append(s.synced, principal)
	return s.err
}

func userSyncContext(method string, principal *models.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, "/", nil), rec)
	if principal != nil {
		c.Set(ContextKeyUserID, principal.UserID)
		c.Set(ContextKeyUserRole, principal.Role)
	}
	return c, rec
}

func TestUserSyncMiddleware_UpsertsOnWrite(t *testing.T) {
	store := &fakeUserStore{}
	principal := models.Principal{UserID: uuid.New(), Role: models.RoleDriver}
	c, rec := userSyncContext(http.MethodPost, &principal)

	handler := UserSyncMiddleware(store)(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []models.Principal{principal}, store.synced)
}

func TestUserSyncMiddleware_SkipsReads(t *testing.T) {
	store := &fakeUserStore{}
	principal := models.Principal{UserID: uuid.New(), Role: models.RolePassenger}
	c, rec := userSyncContext(http.MethodGet, &principal)

	handler := UserSyncMiddleware(store)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.synced)
}

func TestUserSyncMiddleware_StoreFailure(t *testing.T) {
	store := &fakeUserStore{err: errors.New("connection reset")}
	principal := models.Principal{UserID: uuid.New(), Role: models.RolePassenger}
	c, rec := userSyncContext(http.MethodPut, &principal)

	called := false
	handler := UserSyncMiddleware(store)(func(c echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, called)
}

func TestUserSyncMiddleware_RequiresPrincipal(t *testing.T) {
	c, rec := userSyncContext(http.MethodPost, nil)

	handler := UserSyncMiddleware(&fakeUserStore{})(func(c echo.Context) error {
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
