package root_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/budget-tracker/backend/internal/controllers/root"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.OPTIONS("/", func(_ *gin.Context) {
		root.Options(c)
	})

	c.Request, _ = http.NewRequest(http.MethodOptions, "http://example.com/", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}

func TestGet(t *testing.T) {
	t.Parallel()
	recorder := httptest.NewRecorder()
	c, r := gin.CreateTestContext(recorder)

	r.GET("/", func(_ *gin.Context) {
		c.Set(httputil.ContextURL, "https://example.com/api")
		root.Get(c)
	})

	c.Request, _ = http.NewRequest(http.MethodGet, "https://example.com/", nil)
	r.ServeHTTP(recorder, c.Request)

	var response root.Response
	test.DecodeResponse(t, recorder, &response)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://example.com/api/v1", response.Links.V1)
	assert.Equal(t, "https://example.com/api/metrics", response.Links.Metrics)
}
