package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haseebk/dev-net/internal/service"
)

// MyProfile godoc
// @Summary Current user's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} map[string]string
// @Router /api/profile/me [get]
func (h *Handler) MyProfile(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	p, err := h.Profiles.OwnProfile(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpsertProfile godoc
// @Summary Create or update the caller's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body service.ProfileInput true "profile fields"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} map[string]any
// @Router /api/profile [post]
func (h *Handler) UpsertProfile(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var in service.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := h.Profiles.Upsert(c.Request.Context(), id, in, reqID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListProfiles godoc
// @Summary List all profiles with owner display fields
// @Tags profile
// @Produce json
// @Success 200 {array} domain.ProfileWithOwner
// @Router /api/profile [get]
func (h *Handler) ListProfiles(c *gin.Context) {
	out, err := h.Profiles.List(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ProfileByUser godoc
// @Summary Profile by owner user id
// @Tags profile
// @Produce json
// @Param user_id path string true "owner user id"
// @Success 200 {object} domain.ProfileWithOwner
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/profile/user/{user_id} [get]
func (h *Handler) ProfileByUser(c *gin.Context) {
	p, err := h.Profiles.ByOwner(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteAccount godoc
// @Summary Delete the caller's profile, posts and user account
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/profile [delete]
func (h *Handler) DeleteAccount(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	if err := h.Profiles.DeleteAccount(c.Request.Context(), id, reqID(c)); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user deleted"})
}

// AddExperience godoc
// @Summary Add a work experience entry
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body service.ExperienceInput true "experience"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /api/profile/experience [put]
func (h *Handler) AddExperience(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var in service.ExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := h.Profiles.AddExperience(c.Request.Context(), id, in)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveExperience godoc
// @Summary Remove a work experience entry by id
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param exp_id path string true "experience entry id"
// @Success 200 {object} domain.Profile
// @Router /api/profile/experience/{exp_id} [delete]
func (h *Handler) RemoveExperience(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	p, err := h.Profiles.RemoveExperience(c.Request.Context(), id, c.Param("exp_id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddEducation godoc
// @Summary Add an education entry
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body service.EducationInput true "education"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /api/profile/education [put]
func (h *Handler) AddEducation(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var in service.EducationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := h.Profiles.AddEducation(c.Request.Context(), id, in)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveEducation godoc
// @Summary Remove an education entry by id
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param edu_id path string true "education entry id"
// @Success 200 {object} domain.Profile
// @Router /api/profile/education/{edu_id} [delete]
func (h *Handler) RemoveEducation(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	p, err := h.Profiles.RemoveEducation(c.Request.Context(), id, c.Param("edu_id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GithubRepos godoc
// @Summary Latest-created repositories for a github username
// @Tags profile
// @Produce json
// @Param username path string true "github username"
// @Success 200 {array} github.Repo
// @Failure 404 {object} map[string]string
// @Router /api/profile/github/{username} [get]
func (h *Handler) GithubRepos(c *gin.Context) {
	repos, err := h.Github.Repositories(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, repos)
}
