package handlers

import (
	"github.com/gin-gonic/gin"

	"health-portal-server/internal/pages"
	"health-portal-server/internal/session"
	"health-portal-server/internal/utils"
)

// GetFamilyCare returns the family care page.
func (h *PageHandler) GetFamilyCare(c *gin.Context) {
	h.view(c, "Family care page fetched", func(st *session.State) interface{} {
		return st.FamilyCare.View()
	})
}

// ToggleChecklistItem flips one preparation checklist item.
func (h *PageHandler) ToggleChecklistItem(c *gin.Context) {
	i, ok := indexParam(c)
	if !ok {
		return
	}
	s, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var (
		err  error
		view pages.FamilyCareView
	)
	s.Use(func(st *session.State) {
		err = st.FamilyCare.ToggleItem(i)
		view = st.FamilyCare.View()
	})
	if err != nil {
		if isNotFound(err) {
			utils.NotFound(c, "Checklist item not found")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}
	utils.Success(c, "Checklist item toggled", view)
}

// Refresh starts the simulated refresh. The completion arrives later as a
// notification; a trigger while one is running changes nothing.
func (h *PageHandler) Refresh(c *gin.Context) {
	s, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var (
		started bool
		view    pages.FamilyCareView
	)
	s.Use(func(st *session.State) {
		started = st.FamilyCare.Refresh()
		view = st.FamilyCare.View()
	})
	if !started {
		utils.Success(c, "Refresh already in progress", view)
		return
	}
	utils.Accepted(c, "Refresh started", view)
}
