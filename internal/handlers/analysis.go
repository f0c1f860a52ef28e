package handlers

import (
	"github.com/gin-gonic/gin"

	"health-portal-server/internal/pages"
	"health-portal-server/internal/session"
	"health-portal-server/internal/utils"
)

// SelectAgeRangeRequest represents the request body for choosing an age baseline.
type SelectAgeRangeRequest struct {
	Label string `json:"label" binding:"required"`
}

// GetAnalysis returns the analysis page.
func (h *PageHandler) GetAnalysis(c *gin.Context) {
	h.view(c, "Analysis page fetched", func(st *session.State) interface{} {
		return st.Analysis.View()
	})
}

// SelectAgeRange switches the displayed baseline. An unknown label leaves the
// selection as it was and still answers with the page.
func (h *PageHandler) SelectAgeRange(c *gin.Context) {
	var req SelectAgeRangeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	h.view(c, "Age range updated", func(st *session.State) interface{} {
		st.Analysis.SelectAgeRange(req.Label)
		return st.Analysis.View()
	})
}

// ShowSuggestion pushes the suggestion for a warning to the notification feed.
func (h *PageHandler) ShowSuggestion(c *gin.Context) {
	i, ok := indexParam(c)
	if !ok {
		return
	}
	s, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var err error
	s.Use(func(st *session.State) { err = st.Analysis.ShowSuggestion(i) })
	if err != nil {
		if isNotFound(err) {
			utils.NotFound(c, "Warning not found")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}
	utils.Success(c, "Suggestion sent", gin.H{"durationMs": pages.SuggestionDuration.Milliseconds()})
}
