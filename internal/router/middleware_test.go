package router_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestURLMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	u, _ := url.Parse("https://budget.example.com:8081/api")
	r.Use(router.URLMiddleware(u))
	r.GET("/transactions", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(httputil.ContextURL))
	})

	req, _ := http.NewRequest(http.MethodGet, "https://example.com/transactions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://budget.example.com:8081/api", w.Body.String())
}
