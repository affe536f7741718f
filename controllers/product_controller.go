package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Price        float64  `json:"price" binding:"required"`
	Images       []string `json:"images" binding:"omitempty,dive,url"`
	Videos       []string `json:"videos" binding:"omitempty,dive,url"`
	Availability *bool    `json:"availability"`
	CategoryID   uint     `json:"category" binding:"required"`
	Color        string   `json:"color"`
	Sizes        []string `json:"sizes" binding:"omitempty,dive,oneof=SM MD LG XL"`
	Brand        string   `json:"brand"`
}

type ProductController struct{ DB *gorm.DB }

func NewProductController(db *gorm.DB) *ProductController { return &ProductController{DB: db} }

func (h *ProductController) fromRequest(req *ProductRequest) entity.Product {
	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}
	return entity.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Images:       req.Images,
		Videos:       req.Videos,
		Availability: availability,
		CategoryID:   req.CategoryID,
		Color:        req.Color,
		Sizes:        req.Sizes,
		Brand:        req.Brand,
	}
}

// POST /product/create
func (h *ProductController) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var category entity.Category
	if err := h.DB.First(&category, req.CategoryID).Error; err != nil {
		resp.BadRequest(c, "invalid category ID")
		return
	}

	product := h.fromRequest(&req)
	if err := h.DB.Create(&product).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	product.Category = category
	resp.Created(c, "product created successfully", product)
}

// PATCH /product/update
func (h *ProductController) Update(c *gin.Context) {
	var req struct {
		ID uint `json:"id" binding:"required"`
		ProductRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var exist entity.Product
	if err := h.DB.First(&exist, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var category entity.Category
	if err := h.DB.First(&category, req.CategoryID).Error; err != nil {
		resp.BadRequest(c, "invalid category ID")
		return
	}

	product := h.fromRequest(&req.ProductRequest)
	product.ID = req.ID
	product.CreatedAt = exist.CreatedAt
	if err := h.DB.Save(&product).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "product updated successfully", nil)
}

// DELETE /product/delete/:id
func (h *ProductController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product ID")
		return
	}

	res := h.DB.Delete(&entity.Product{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "product not found")
		return
	}
	resp.OKMessage(c, "product deleted successfully", nil)
}

// GET /product/get/:id
func (h *ProductController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product ID")
		return
	}

	var product entity.Product
	if err := h.DB.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}

// GET /product/get
func (h *ProductController) List(c *gin.Context) {
	var products []entity.Product
	if err := h.DB.Preload("Category").Order("id").Find(&products).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}
