package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
	"github.com/mwilkosz/Meta-Back-End-Developer/pkg/resp"
	"github.com/mwilkosz/Meta-Back-End-Developer/repository"
)

type CategoryController struct{ Repo *repository.CategoryRepository }

func NewCategoryController(r *repository.CategoryRepository) *CategoryController {
	return &CategoryController{Repo: r}
}

// GET /category/
func (h *CategoryController) List(c *gin.Context) {
	categories, err := h.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /category/ (manager only)
func (h *CategoryController) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category := entity.Category{Title: req.Title}
	if err := h.Repo.Create(&category); err != nil {
		resp.BadRequest(c, "category could not be created")
		return
	}
	resp.Created(c, category)
}
