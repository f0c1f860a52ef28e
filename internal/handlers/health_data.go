package handlers

import (
	"github.com/gin-gonic/gin"

	"health-portal-server/internal/session"
	"health-portal-server/internal/utils"
)

// PainLevelRequest represents the request body for the pain slider.
type PainLevelRequest struct {
	Value *int `json:"value" binding:"required"`
}

// GetHealthData returns the health data page.
func (h *PageHandler) GetHealthData(c *gin.Context) {
	h.view(c, "Health data page fetched", func(st *session.State) interface{} {
		return st.HealthData.View()
	})
}

// ConnectDevice runs the device pairing stub.
func (h *PageHandler) ConnectDevice(c *gin.Context) {
	h.view(c, "Device search started", func(st *session.State) interface{} {
		st.HealthData.ConnectDevice()
		return st.HealthData.View()
	})
}

// TakePhoto runs the camera stub.
func (h *PageHandler) TakePhoto(c *gin.Context) {
	h.view(c, "Camera opened", func(st *session.State) interface{} {
		st.HealthData.TakePhoto()
		return st.HealthData.View()
	})
}

// ToggleRecording flips the voice recording indicator.
func (h *PageHandler) ToggleRecording(c *gin.Context) {
	h.view(c, "Recording toggled", func(st *session.State) interface{} {
		st.HealthData.ToggleRecording()
		return st.HealthData.View()
	})
}

// SetPainLevel stores the pain slider value, clamped to its range.
func (h *PageHandler) SetPainLevel(c *gin.Context) {
	var req PainLevelRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	h.view(c, "Pain level updated", func(st *session.State) interface{} {
		st.HealthData.SetPainLevel(*req.Value)
		return st.HealthData.View()
	})
}
