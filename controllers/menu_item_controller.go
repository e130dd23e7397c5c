package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
	"github.com/mwilkosz/Meta-Back-End-Developer/pkg/resp"
	"github.com/mwilkosz/Meta-Back-End-Developer/repository"
)

type MenuItemController struct{ Repo *repository.MenuItemRepository }

func NewMenuItemController(r *repository.MenuItemRepository) *MenuItemController {
	return &MenuItemController{Repo: r}
}

type menuItemReq struct {
	Title    string          `json:"title" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Featured bool            `json:"featured"`
	Category uint            `json:"category" binding:"required"`
}

// GET /menu-items/ — ?ordering=price or ?ordering=-price
func (h *MenuItemController) List(c *gin.Context) {
	items, err := h.Repo.List(c.Query("ordering"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu-items/ (manager only)
func (h *MenuItemController) Create(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: req.Category,
	}
	if err := h.Repo.Create(&item); err != nil {
		resp.BadRequest(c, "menu item could not be created")
		return
	}
	resp.Created(c, item)
}

// GET /menu-items/:id
func (h *MenuItemController) Retrieve(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT /menu-items/:id (manager only) — full replace
func (h *MenuItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item.Title = req.Title
	item.Price = req.Price
	item.Featured = req.Featured
	item.CategoryID = req.Category

	if err := h.Repo.Update(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /menu-items/:id (manager only) — partial update
func (h *MenuItemController) PartialUpdate(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req struct {
		Title    *string          `json:"title"`
		Price    *decimal.Decimal `json:"price"`
		Featured *bool            `json:"featured"`
		Category *uint            `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.Category != nil {
		item.CategoryID = *req.Category
	}

	if err := h.Repo.Update(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id (manager only)
func (h *MenuItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	deleted, err := h.Repo.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if deleted == 0 {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.Message(c, 200, "menu item deleted")
}
