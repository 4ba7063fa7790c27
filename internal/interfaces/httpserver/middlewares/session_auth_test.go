package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitoolhub-server/services/hub-api/internal/domain/user"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	req, err := http.NewRequest(http.MethodGet, "/v1/tools", nil)
	require.NoError(t, err)
	ctx.Request = req
	return ctx, rec
}

func TestSessionTokenExtractionOrder(t *testing.T) {
	ctx, _ := testContext(t)
	assert.Empty(t, SessionToken(ctx))

	ctx.Request.Header.Set("Authorization", "Bearer from-bearer")
	assert.Equal(t, "from-bearer", SessionToken(ctx))

	ctx.Request.Header.Set("X-Session-Token", "from-header")
	assert.Equal(t, "from-header", SessionToken(ctx), "header outranks bearer")

	ctx.Request.AddCookie(&http.Cookie{Name: "session_token", Value: "from-cookie"})
	assert.Equal(t, "from-cookie", SessionToken(ctx), "cookie outranks header")
}

func TestSessionTokenIgnoresNonBearerAuth(t *testing.T) {
	ctx, _ := testContext(t)
	ctx.Request.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	assert.Empty(t, SessionToken(ctx))
}

func TestRequestIDInjected(t *testing.T) {
	ctx, rec := testContext(t)
	RequestID()(ctx)

	id := RequestIDFromContext(ctx)
	require.NotEmpty(t, id)
	assert.Equal(t, id, rec.Header().Get("X-Request-Id"))
}

func TestRequestIDPreserved(t *testing.T) {
	ctx, rec := testContext(t)
	ctx.Request.Header.Set("X-Request-Id", "req-abc")
	RequestID()(ctx)

	assert.Equal(t, "req-abc", RequestIDFromContext(ctx))
	assert.Equal(t, "req-abc", rec.Header().Get("X-Request-Id"))
}

func TestRequireAdmin(t *testing.T) {
	ctx, rec := testContext(t)
	RequireAdmin()(ctx)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ctx, rec = testContext(t)
	ctx.Set(userContextKey, &user.User{ID: 1, IsActive: true})
	RequireAdmin()(ctx)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	ctx, rec = testContext(t)
	ctx.Set(userContextKey, &user.User{ID: 1, IsActive: true, IsAdmin: true})
	RequireAdmin()(ctx)
	assert.False(t, ctx.IsAborted())
}

func TestUserFromContext(t *testing.T) {
	ctx, _ := testContext(t)

	_, ok := UserFromContext(ctx)
	assert.False(t, ok)

	ctx.Set(userContextKey, &user.User{ID: 42})
	usr, ok := UserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(42), usr.ID)
}
