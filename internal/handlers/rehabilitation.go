package handlers

import (
	"github.com/gin-gonic/gin"

	"health-portal-server/internal/pages"
	"health-portal-server/internal/session"
	"health-portal-server/internal/utils"
)

// SelectPlanRequest represents the request body for choosing a treatment plan.
type SelectPlanRequest struct {
	ID *int `json:"id" binding:"required"`
}

// AdjustmentRequest represents the request body for the doctor sliders.
// Out-of-range values are clamped, not rejected.
type AdjustmentRequest struct {
	Dose      *int `json:"dose" binding:"required"`
	Frequency *int `json:"frequency" binding:"required"`
}

// NoteRequest represents the request body for submitting a note.
type NoteRequest struct {
	Note string `json:"note"`
}

// NoteResponse reports whether a note was accepted together with the page.
type NoteResponse struct {
	Accepted bool                     `json:"accepted"`
	Page     pages.RehabilitationView `json:"page"`
}

// GetRehabilitation returns the rehabilitation page.
func (h *PageHandler) GetRehabilitation(c *gin.Context) {
	h.view(c, "Rehabilitation page fetched", func(st *session.State) interface{} {
		return st.Rehabilitation.View()
	})
}

// SelectPlan makes a plan active. Unknown ids leave the selection unchanged.
func (h *PageHandler) SelectPlan(c *gin.Context) {
	var req SelectPlanRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	h.view(c, "Plan selected", func(st *session.State) interface{} {
		st.Rehabilitation.SelectPlan(*req.ID)
		return st.Rehabilitation.View()
	})
}

// SetAdjustment stores dose and frequency.
func (h *PageHandler) SetAdjustment(c *gin.Context) {
	var req AdjustmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	h.view(c, "Adjustment updated", func(st *session.State) interface{} {
		st.Rehabilitation.SetAdjustment(*req.Dose, *req.Frequency)
		return st.Rehabilitation.View()
	})
}

// OpenNote shows the note modal.
func (h *PageHandler) OpenNote(c *gin.Context) {
	h.view(c, "Note opened", func(st *session.State) interface{} {
		st.Rehabilitation.OpenNote()
		return st.Rehabilitation.View()
	})
}

// CancelNote hides the note modal.
func (h *PageHandler) CancelNote(c *gin.Context) {
	h.view(c, "Note cancelled", func(st *session.State) interface{} {
		st.Rehabilitation.CancelNote()
		return st.Rehabilitation.View()
	})
}

// SubmitNote confirms a note. Blank notes are ignored without an error.
func (h *PageHandler) SubmitNote(c *gin.Context) {
	var req NoteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	h.view(c, "Note submitted", func(st *session.State) interface{} {
		accepted := st.Rehabilitation.SubmitNote(req.Note)
		return NoteResponse{Accepted: accepted, Page: st.Rehabilitation.View()}
	})
}
