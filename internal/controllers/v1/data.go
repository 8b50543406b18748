package v1

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/budget-tracker/backend/internal/export"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/gin-gonic/gin"
)

type ImportSummary struct {
	Profile        string `json:"profile" example:"hemank"`   // Profile the data was imported into
	Transactions   int    `json:"transactions" example:"12"`  // Number of imported transactions
	ArchivedMonths int    `json:"archivedMonths" example:"3"` // Number of imported archives
	Budgets        int    `json:"budgets" example:"4"`        // Number of imported budgets
	CustomFields   int    `json:"customFields" example:"1"`   // Number of imported custom fields
}

type ImportResponse struct {
	Data ImportSummary `json:"data"`
}

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", co.GetExport)
}

func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", co.Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all data of the active profile as JSON file
// @Tags			Export
// @Produce		json
// @Success		200	{object}	export.Snapshot
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	co.session(c, func(s *profile.Session) error {
		snapshot := s.Export()

		var buf bytes.Buffer
		if err := export.Encode(&buf, snapshot); err != nil {
			return err
		}

		filename := export.Filename("json", "budget", snapshot.Profile, snapshot.ExportDate.Format("2006-01-02"))
		attachment(c, filename, "application/json; charset=utf-8", buf.Bytes())
		return nil
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import
// @Description	Replaces all data of the active profile with the data of an export file. The file is sent either as request body or as multipart form field "file". Invalid files are rejected without changing any data.
// @Tags			Import
// @Accept			json
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			file	formData	file	false	"Export file"
// @Router			/v1/import [post]
func (co Controller) Import(c *gin.Context) {
	r, err := importFile(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	defer r.Close()

	snapshot, err := export.Decode(r)
	if err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		if err := s.Import(c.Request.Context(), snapshot); err != nil {
			return err
		}

		c.JSON(http.StatusOK, ImportResponse{Data: ImportSummary{
			Profile:        s.Profile(),
			Transactions:   len(snapshot.Transactions),
			ArchivedMonths: len(snapshot.ArchivedMonths),
			Budgets:        len(snapshot.CategoryBudgets),
			CustomFields:   len(snapshot.CustomFields),
		}})
		return nil
	})
}

// importFile returns the uploaded file or the request body.
func importFile(c *gin.Context) (io.ReadCloser, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		header, err := c.FormFile("file")
		if err != nil {
			return nil, errNoFile
		}

		f, err := header.Open()
		if err != nil {
			return nil, err
		}

		return f, nil
	}

	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil, errNoFile
	}

	return c.Request.Body, nil
}
