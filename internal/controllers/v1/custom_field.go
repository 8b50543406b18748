package v1

import (
	"fmt"
	"net/http"

	"github.com/budget-tracker/backend/internal/customfield"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/gin-gonic/gin"
)

type CustomFieldListResponse struct {
	Data   []customfield.Field `json:"data"`   // Field definitions
	Values map[string]string   `json:"values"` // Values of the fields, keyed by field name
}

type CustomFieldResponse struct {
	Data customfield.Field `json:"data"`
}

type CustomFieldValue struct {
	Value string `json:"value" example:"1500"` // Value of the field
}

func (co Controller) RegisterCustomFieldRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCustomFieldList)
		r.GET("", co.GetCustomFields)
		r.POST("", co.CreateCustomField)
	}

	// Field with name
	{
		r.OPTIONS("/:name", OptionsCustomFieldDetail)
		r.DELETE("/:name", co.DeleteCustomField)
		r.OPTIONS("/:name/value", OptionsCustomFieldValue)
		r.PUT("/:name/value", co.SetCustomFieldValue)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Custom Fields
// @Success		204
// @Router			/v1/custom-fields [options]
func OptionsCustomFieldList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Custom Fields
// @Success		204
// @Param			name	path	string	true	"Name of the field"
// @Router			/v1/custom-fields/{name} [options]
func OptionsCustomFieldDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Custom Fields
// @Success		204
// @Param			name	path	string	true	"Name of the field"
// @Router			/v1/custom-fields/{name}/value [options]
func OptionsCustomFieldValue(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Get custom fields
// @Description	Returns all custom fields of the active profile and their values
// @Tags			Custom Fields
// @Produce		json
// @Success		200	{object}	CustomFieldListResponse
// @Failure		409	{object}	httpError
// @Router			/v1/custom-fields [get]
func (co Controller) GetCustomFields(c *gin.Context) {
	co.session(c, func(s *profile.Session) error {
		fields, values := s.CustomFields()
		if fields == nil {
			fields = []customfield.Field{}
		}
		if values == nil {
			values = map[string]string{}
		}

		c.JSON(http.StatusOK, CustomFieldListResponse{Data: fields, Values: values})
		return nil
	})
}

// @Summary		Create custom field
// @Description	Defines a new custom field. Field names are unique.
// @Tags			Custom Fields
// @Accept			json
// @Produce		json
// @Success		201		{object}	CustomFieldResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			field	body		customfield.Field	true	"Custom field"
// @Router			/v1/custom-fields [post]
func (co Controller) CreateCustomField(c *gin.Context) {
	var data customfield.Field
	if err := httputil.BindData(c, &data); err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		f, err := s.AddCustomField(c.Request.Context(), data)
		if err != nil {
			return err
		}

		c.JSON(http.StatusCreated, CustomFieldResponse{Data: f})
		return nil
	})
}

// @Summary		Delete custom field
// @Description	Deletes a custom field and its value
// @Tags			Custom Fields
// @Success		204
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			name	path		string	true	"Name of the field"
// @Router			/v1/custom-fields/{name} [delete]
func (co Controller) DeleteCustomField(c *gin.Context) {
	name := c.Param("name")

	co.session(c, func(s *profile.Session) error {
		deleted, err := s.RemoveCustomField(c.Request.Context(), name)
		if err != nil {
			return err
		}

		if !deleted {
			return fmt.Errorf("custom field %q: %w", name, profile.ErrNotFound)
		}

		c.Status(http.StatusNoContent)
		return nil
	})
}

// @Summary		Set custom field value
// @Description	Sets the value of a custom field. Number and currency fields only accept numbers.
// @Tags			Custom Fields
// @Accept			json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			name	path		string				true	"Name of the field"
// @Param			value	body		CustomFieldValue	true	"Value"
// @Router			/v1/custom-fields/{name}/value [put]
func (co Controller) SetCustomFieldValue(c *gin.Context) {
	var data CustomFieldValue
	if err := httputil.BindData(c, &data); err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		if err := s.SetCustomFieldValue(c.Request.Context(), c.Param("name"), data.Value); err != nil {
			return err
		}

		c.Status(http.StatusNoContent)
		return nil
	})
}
