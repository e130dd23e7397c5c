package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mwilkosz/Meta-Back-End-Developer/repository"
)

// PageController serves the minimal menu/booking web app.
type PageController struct{ MenuRepo *repository.MenuItemRepository }

func NewPageController(menuRepo *repository.MenuItemRepository) *PageController {
	return &PageController{MenuRepo: menuRepo}
}

// GET /
func (h *PageController) Index(c *gin.Context) {
	items, err := h.MenuRepo.List("")
	if err != nil {
		c.String(http.StatusInternalServerError, "menu unavailable")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"MenuItems": items})
}

// GET /book
func (h *PageController) Book(c *gin.Context) {
	c.HTML(http.StatusOK, "book.html", nil)
}
