package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct{ DB *gorm.DB }

func NewCategoryController(db *gorm.DB) *CategoryController { return &CategoryController{DB: db} }

// POST /category/create
func (h *CategoryController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "category name is required")
		return
	}

	var exist entity.Category
	if err := h.DB.Where("name = ?", req.Name).First(&exist).Error; err == nil {
		resp.BadRequest(c, "category with the same name already exists")
		return
	}

	category := entity.Category{Name: req.Name}
	if err := h.DB.Create(&category).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "category created successfully", category)
}

// PATCH /category/update
func (h *CategoryController) Update(c *gin.Context) {
	var req struct {
		ID   uint   `json:"id" binding:"required"`
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "category ID and name are required")
		return
	}

	var category entity.Category
	if err := h.DB.First(&category, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if err := h.DB.Model(&category).Update("name", req.Name).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "category updated successfully", nil)
}

// DELETE /category/delete/:id
func (h *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category ID")
		return
	}

	res := h.DB.Delete(&entity.Category{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OKMessage(c, "category deleted successfully", nil)
}

// GET /category/get
func (h *CategoryController) List(c *gin.Context) {
	var categories []entity.Category
	if err := h.DB.Order("id").Find(&categories).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}
