package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type UploadController struct{ Svc *services.UploadService }

func NewUploadController(s *services.UploadService) *UploadController {
	return &UploadController{Svc: s}
}

// POST /upload/putobj-urls
func (h *UploadController) PutObjectURLs(c *gin.Context) {
	var req struct {
		Files []services.FileSpec `json:"files" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	urls, err := h.Svc.PutObjectURLs(c.Request.Context(), req.Files)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, urls)
}
