package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/budget-tracker/backend/internal/archive"
	"github.com/budget-tracker/backend/internal/export"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/gin-gonic/gin"
)

type ArchiveListResponse struct {
	Data []archive.Archive `json:"data"` // List of archived months
}

type ArchiveResponse struct {
	Data archive.Archive `json:"data"` // Data for the archived month
}

type ArchiveCreate struct {
	Month string `json:"month" example:"2024-01"` // Month to archive the current transactions as. Defaults to the current month
	Force bool   `json:"force" example:"false"`   // Overwrite an existing archive of the month
}

type NewMonth struct {
	Force bool `json:"force" example:"true"` // Overwrite an existing archive of the current month
}

const csvContentType = "text/csv; charset=utf-8"

func (co Controller) RegisterArchiveRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsArchiveList)
		r.GET("", co.GetArchives)
		r.POST("", co.CreateArchive)
	}

	// Archive with key
	{
		r.OPTIONS("/:key", OptionsArchiveDetail)
		r.GET("/:key", co.GetArchive)
		r.DELETE("/:key", co.DeleteArchive)
		r.OPTIONS("/:key/csv", OptionsArchiveCSV)
		r.GET("/:key/csv", co.GetArchiveCSV)
	}
}

func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/new", OptionsNewMonth)
	r.POST("/new", co.StartNewMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Archives
// @Success		204
// @Router			/v1/archives [options]
func OptionsArchiveList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Archives
// @Success		204
// @Param			key	path	string	true	"Month of the archive, YYYY-MM"
// @Router			/v1/archives/{key} [options]
func OptionsArchiveDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Archives
// @Success		204
// @Param			key	path	string	true	"Month of the archive, YYYY-MM"
// @Router			/v1/archives/{key}/csv [options]
func OptionsArchiveCSV(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get archives
// @Description	Returns all archived months of the active profile. With format=csv, all archives are returned as one CSV file.
// @Tags			Archives
// @Produce		json
// @Produce		text/csv
// @Success		200		{object}	ArchiveListResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			format	query		string	false	"'json' (default) or 'csv'"
// @Router			/v1/archives [get]
func (co Controller) GetArchives(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		badRequest(c, errInvalidFormat)
		return
	}

	co.session(c, func(s *profile.Session) error {
		archives := s.Archives()
		if archives == nil {
			archives = []archive.Archive{}
		}

		if format == "json" {
			c.JSON(http.StatusOK, ArchiveListResponse{Data: archives})
			return nil
		}

		var buf bytes.Buffer
		if err := export.WriteArchivesCSV(&buf, archives); err != nil {
			return err
		}

		attachment(c, export.Filename("csv", "budget", s.Profile(), "archives"), csvContentType, buf.Bytes())
		return nil
	})
}

// @Summary		Archive month
// @Description	Stores a copy of the current transactions as archive of the month. The current transactions are not changed.
// @Tags			Archives
// @Accept			json
// @Produce		json
// @Success		201		{object}	ArchiveResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			archive	body		ArchiveCreate	false	"Month and overwrite flag"
// @Router			/v1/archives [post]
func (co Controller) CreateArchive(c *gin.Context) {
	var data ArchiveCreate
	if err := httputil.BindOptionalData(c, &data); err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		a, err := s.ArchiveMonth(c.Request.Context(), data.Month, data.Force)
		if err != nil {
			return err
		}

		c.JSON(http.StatusCreated, ArchiveResponse{Data: a})
		return nil
	})
}

func (co Controller) archive(c *gin.Context, fn func(s *profile.Session, a archive.Archive) error) {
	key := c.Param("key")

	co.session(c, func(s *profile.Session) error {
		a, ok := s.Archive(key)
		if !ok {
			return fmt.Errorf("archive %s: %w", key, profile.ErrNotFound)
		}

		return fn(s, a)
	})
}

// @Summary		Get archive
// @Description	Returns a specific archived month
// @Tags			Archives
// @Produce		json
// @Success		200	{object}	ArchiveResponse
// @Failure		404	{object}	httpError
// @Param			key	path		string	true	"Month of the archive, YYYY-MM"
// @Router			/v1/archives/{key} [get]
func (co Controller) GetArchive(c *gin.Context) {
	co.archive(c, func(_ *profile.Session, a archive.Archive) error {
		c.JSON(http.StatusOK, ArchiveResponse{Data: a})
		return nil
	})
}

// @Summary		Get archive as CSV
// @Description	Returns the summary and the transactions of an archived month as CSV file
// @Tags			Archives
// @Produce		text/csv
// @Success		200
// @Failure		404	{object}	httpError
// @Param			key	path		string	true	"Month of the archive, YYYY-MM"
// @Router			/v1/archives/{key}/csv [get]
func (co Controller) GetArchiveCSV(c *gin.Context) {
	co.archive(c, func(s *profile.Session, a archive.Archive) error {
		var buf bytes.Buffer
		if err := export.WriteArchiveCSV(&buf, a); err != nil {
			return err
		}

		attachment(c, export.Filename("csv", "budget", s.Profile(), a.Month, strconv.Itoa(a.Year)), csvContentType, buf.Bytes())
		return nil
	})
}

// @Summary		Delete archive
// @Description	Deletes an archived month
// @Tags			Archives
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			key	path		string	true	"Month of the archive, YYYY-MM"
// @Router			/v1/archives/{key} [delete]
func (co Controller) DeleteArchive(c *gin.Context) {
	key := c.Param("key")

	co.session(c, func(s *profile.Session) error {
		deleted, err := s.DeleteArchive(c.Request.Context(), key)
		if err != nil {
			return err
		}

		if !deleted {
			return fmt.Errorf("archive %s: %w", key, profile.ErrNotFound)
		}

		c.Status(http.StatusNoContent)
		return nil
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Archives
// @Success		204
// @Router			/v1/months/new [options]
func OptionsNewMonth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Start new month
// @Description	Archives the current transactions as the current month and deletes them afterwards
// @Tags			Archives
// @Accept			json
// @Produce		json
// @Success		201		{object}	ArchiveResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	body		NewMonth	false	"Overwrite flag"
// @Router			/v1/months/new [post]
func (co Controller) StartNewMonth(c *gin.Context) {
	var data NewMonth
	if err := httputil.BindOptionalData(c, &data); err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		a, err := s.StartNewMonth(c.Request.Context(), data.Force)
		if err != nil {
			return err
		}

		c.JSON(http.StatusCreated, ArchiveResponse{Data: a})
		return nil
	})
}

// attachment sends data as file download
func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
