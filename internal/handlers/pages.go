package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"health-portal-server/internal/control"
	"health-portal-server/internal/pages"
	"health-portal-server/internal/session"
	"health-portal-server/internal/utils"
)

// PageHandler serves the page views and their actions for the calling
// session.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// view runs fn under the session lock and responds with whatever it returns.
func (h *PageHandler) view(c *gin.Context, message string, fn func(st *session.State) interface{}) {
	s, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var data interface{}
	s.Use(func(st *session.State) { data = fn(st) })
	utils.Success(c, message, data)
}

// indexParam parses the :index path parameter.
func indexParam(c *gin.Context) (int, bool) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequest(c, "Invalid index: "+c.Param("index"))
		return 0, false
	}
	return i, true
}

// isNotFound reports errors that mean "no such item in a fixed list".
func isNotFound(err error) bool {
	return errors.Is(err, pages.ErrIndexOutOfRange) || errors.Is(err, control.ErrItemNotFound)
}

// GetHome returns the navigation cards.
func (h *PageHandler) GetHome(c *gin.Context) {
	h.view(c, "Home page fetched", func(st *session.State) interface{} {
		return st.Home.View()
	})
}
