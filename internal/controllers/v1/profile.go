package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/budget-tracker/backend/internal/syncer"
	"github.com/gin-gonic/gin"
)

type Profile struct {
	ID     string `json:"id" example:"hemank"`
	HasPIN bool   `json:"hasPin" example:"true"`  // The profile needs a PIN to be opened
	Locked bool   `json:"locked" example:"false"` // The PIN needs to be entered before the next switch
	Active bool   `json:"active" example:"true"`  // The profile is the active one
}

type ProfileListResponse struct {
	Data []Profile `json:"data"` // List of profiles
}

type ProfileSwitch struct {
	PIN string `json:"pin" example:"1234"` // PIN of the profile. Only needed for locked profiles
}

type ProfileSwitchResponse struct {
	Data     Profile  `json:"data"`     // The profile that is now active
	Warnings []string `json:"warnings"` // Problems with the stored data of the profile. The affected data was reset
}

type SyncState struct {
	Profile string                  `json:"profile" example:"hemank"`
	Remote  bool                    `json:"remote" example:"true"` // A remote store is configured
	States  map[string]syncer.State `json:"states" swaggertype:"object,string" example:"transactions:synced"`
}

type SyncResponse struct {
	Data SyncState `json:"data"`
}

func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsProfileList)
		r.GET("", co.GetProfiles)
	}

	{
		r.OPTIONS("/:id/switch", OptionsProfileSwitch)
		r.POST("/:id/switch", co.SwitchProfile)
		r.OPTIONS("/:id/lock", OptionsProfileLock)
		r.POST("/:id/lock", co.LockProfile)
	}
}

func (co Controller) RegisterSyncRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSync)
	r.GET("", co.GetSync)
}

func (co Controller) profile(p profile.Profile, active string) Profile {
	return Profile{
		ID:     p.ID,
		HasPIN: p.HasPIN(),
		Locked: !co.Manager.Registry().Unlocked(p.ID),
		Active: p.ID == active,
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profiles [options]
func OptionsProfileList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Param			id	path	string	true	"ID of the profile"
// @Router			/v1/profiles/{id}/switch [options]
func OptionsProfileSwitch(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Param			id	path	string	true	"ID of the profile"
// @Router			/v1/profiles/{id}/lock [options]
func OptionsProfileLock(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List profiles
// @Description	Returns all configured profiles
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileListResponse
// @Router			/v1/profiles [get]
func (co Controller) GetProfiles(c *gin.Context) {
	active := co.Manager.Current()

	profiles := co.Manager.Registry().Profiles()
	data := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		data = append(data, co.profile(p, active))
	}

	c.JSON(http.StatusOK, ProfileListResponse{Data: data})
}

// @Summary		Switch profile
// @Description	Saves the data of the active profile and makes the profile the active one
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileSwitchResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID of the profile"
// @Param			pin		body		ProfileSwitch	false	"PIN"
// @Router			/v1/profiles/{id}/switch [post]
func (co Controller) SwitchProfile(c *gin.Context) {
	var data ProfileSwitch
	if err := httputil.BindOptionalData(c, &data); err != nil {
		badRequest(c, err)
		return
	}

	s, err := co.Manager.Switch(c.Request.Context(), c.Param("id"), data.PIN)
	if err != nil {
		renderError(c, err)
		return
	}

	warnings := make([]string, 0)
	for _, w := range s.Warnings() {
		warnings = append(warnings, w.Error())
	}

	p, _ := co.Manager.Registry().Get(s.Profile())
	c.JSON(http.StatusOK, ProfileSwitchResponse{
		Data:     co.profile(p, s.Profile()),
		Warnings: warnings,
	})
}

// @Summary		Lock profile
// @Description	Requires the PIN for the next switch to the profile. When the profile is active, its data is saved and it is closed.
// @Tags			Profiles
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the profile"
// @Router			/v1/profiles/{id}/lock [post]
func (co Controller) LockProfile(c *gin.Context) {
	if err := co.Manager.Lock(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sync
// @Success		204
// @Router			/v1/sync [options]
func OptionsSync(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Synchronization state
// @Description	Returns the synchronization state of every collection of the active profile
// @Tags			Sync
// @Produce		json
// @Success		200	{object}	SyncResponse
// @Failure		409	{object}	httpError
// @Router			/v1/sync [get]
func (co Controller) GetSync(c *gin.Context) {
	co.session(c, func(s *profile.Session) error {
		c.JSON(http.StatusOK, SyncResponse{Data: SyncState{
			Profile: s.Profile(),
			Remote:  co.Manager.HasRemote(),
			States:  s.SyncStates(),
		}})
		return nil
	})
}
