package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

func options(c *gin.Context, allow string) {
	c.Header("allow", allow)
	c.Render(http.StatusNoContent, render.JSON{})
}

func OptionsGet(c *gin.Context) {
	options(c, "OPTIONS, GET")
}

func OptionsPost(c *gin.Context) {
	options(c, "OPTIONS, POST")
}

func OptionsPut(c *gin.Context) {
	options(c, "OPTIONS, PUT")
}

func OptionsDelete(c *gin.Context) {
	options(c, "OPTIONS, DELETE")
}

func OptionsGetPost(c *gin.Context) {
	options(c, "OPTIONS, GET, POST")
}

func OptionsGetDelete(c *gin.Context) {
	options(c, "OPTIONS, GET, DELETE")
}

func OptionsGetPostDelete(c *gin.Context) {
	options(c, "OPTIONS, GET, POST, DELETE")
}

func OptionsPutDelete(c *gin.Context) {
	options(c, "OPTIONS, PUT, DELETE")
}
