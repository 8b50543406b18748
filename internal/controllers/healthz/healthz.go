package healthz

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Pinger verifies the connection to a database.
type Pinger interface {
	Ping() error
}

type httpError struct {
	Error string `json:"error" example:"There is a problem with the database connection"`
}

func RegisterRoutes(r *gin.RouterGroup, db Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler reporting the health of the local database
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		500	{object}	httpError
//	@Router			/healthz [get]
func Get(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: "There is no database connection"})
			return
		}

		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: "There is a problem with the database connection: " + err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
