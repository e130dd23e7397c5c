package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mwilkosz/Meta-Back-End-Developer/pkg/resp"
	"github.com/mwilkosz/Meta-Back-End-Developer/services"
	"github.com/mwilkosz/Meta-Back-End-Developer/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart/menu-items/ — the caller's own rows only; ?ordering=price or
// ?ordering=-price sorts by line price
func (h *CartController) List(c *gin.Context) {
	rows, err := h.Svc.List(utils.CurrentUserID(c), c.Query("ordering"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /cart/menu-items/
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	row, err := h.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuantityInvalid),
			errors.Is(err, services.ErrAlreadyInCart),
			errors.Is(err, services.ErrMenuItemNotFound):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, row)
}

// DELETE /cart/menu-items/ — clear everything
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		if errors.Is(err, services.ErrCartAlreadyEmpty) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "cart cleared")
}
