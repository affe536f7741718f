package controllers

import (
	"net/http"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /cart/add
func (h *CartController) Add(c *gin.Context) {
	owner := utils.CurrentOwner(c)
	if owner.IsZero() {
		resp.BadRequest(c, "user ID or session ID is required")
		return
	}

	var req struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "product ID is required")
		return
	}

	item, created, err := h.Svc.AddItem(owner, req.ProductID)
	if err != nil {
		resp.Error(c, err)
		return
	}

	msg := "product was already in the cart, quantity increased by one"
	if created {
		msg = "product has been added to cart"
	}
	resp.OKMessage(c, msg, item)
}

// DELETE /cart/remove/:cartItemId
func (h *CartController) Remove(c *gin.Context) {
	owner := utils.CurrentOwner(c)
	if owner.IsZero() {
		resp.BadRequest(c, "user ID or session ID is required")
		return
	}

	id, err := strconv.ParseUint(c.Param("cartItemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart item ID")
		return
	}

	if err := h.Svc.RemoveItem(owner, uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "product has been removed from cart"})
}

// GET /cart/get
func (h *CartController) Get(c *gin.Context) {
	owner := utils.CurrentOwner(c)
	if owner.IsZero() {
		resp.BadRequest(c, "user ID or session ID is required")
		return
	}

	view, err := h.Svc.GetCart(owner)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// PATCH /cart/manage-cart-quantity
func (h *CartController) ManageQuantity(c *gin.Context) {
	owner := utils.CurrentOwner(c)
	if owner.IsZero() {
		resp.BadRequest(c, "user ID or session ID is required")
		return
	}

	var req struct {
		CartItemID uint   `json:"cartItemId" binding:"required"`
		Event      string `json:"event" binding:"required,oneof=INC DEC"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "cart item ID and an 'INC' or 'DEC' event are required")
		return
	}

	item, removed, err := h.Svc.AdjustQuantity(owner, req.CartItemID, req.Event)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if removed {
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "product has been removed from the cart"})
		return
	}
	msg := "quantity has been incremented"
	if req.Event == services.CartEventDecrement {
		msg = "quantity has been decremented"
	}
	resp.OKMessage(c, msg, item)
}

// PATCH /cart/merge-cart — requires a logged-in user on top of the session.
func (h *CartController) Merge(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		// a credential that was presented but failed verification is 403,
		// a missing one is 401
		if utils.CredentialRejected(c) {
			resp.Forbidden(c, "invalid token")
			return
		}
		resp.Unauthorized(c, "unauthorized")
		return
	}

	moved, err := h.Svc.MergeSessionIntoUser(utils.CurrentSessionID(c), userID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OKMessage(c, "cart successfully merged", gin.H{"mergedItems": moved})
}
