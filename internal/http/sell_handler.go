package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/domain/dto"
	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/guttosm/kol-client/internal/request"
)

// Autosell handles POST /api/autosell.
//
// @Summary      Autosell items
// @Description  Sells items to the NPC buyer. Items that do not fit in one form submission are sold by follow-up requests. The page and quantity mode depend on the character's autosell mode and current inventory. Supports idempotency via Idempotency-Key header.
// @Tags         Sell
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AutosellRequest true "Items to sell"
// @Success      200 {object} dto.SuccessResponse{data=dto.SellResponse} "Items sold"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      502 {object} dto.ErrorResponse "Game server rejected or failed the request"
// @Failure      503 {object} dto.ErrorResponse "Game server unavailable"
// @Failure      504 {object} dto.ErrorResponse "Game server timed out"
// @Router       /api/autosell [post]
func (h *Handler) Autosell(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.AutosellRequest](c)
	if err != nil {
		NewResponseBuilder(c).BadRequest(err)
		return
	}
	h.sell(c, "autosell", req.Stacks(), model.DirectSell, model.ListingTerms{})
}

// ListInMall handles POST /api/mall.
//
// @Summary      Place items in the mall store
// @Description  Lists items in the player's store, up to 11 per form submission, with per-item price and limit. default_pricing lists at the store's maximum price. Supports idempotency via Idempotency-Key header.
// @Tags         Sell
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.MallRequest true "Items and terms"
// @Success      200 {object} dto.SuccessResponse{data=dto.SellResponse} "Items listed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      502 {object} dto.ErrorResponse "Game server rejected or failed the request"
// @Failure      503 {object} dto.ErrorResponse "Game server unavailable"
// @Router       /api/mall [post]
func (h *Handler) ListInMall(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.MallRequest](c)
	if err != nil {
		NewResponseBuilder(c).BadRequest(err)
		return
	}
	h.sell(c, "mall", req.Stacks(), model.MarketListing, req.Terms())
}

func (h *Handler) sell(c *gin.Context, label string, items []model.ItemStack, mode model.SaleMode, terms model.ListingTerms) {
	builder := NewResponseBuilder(c)

	h.sellMu.Lock()
	defer h.sellMu.Unlock()

	before := h.svc.Character.Meat()

	r, err := request.NewSellRequest(h.svc.Sell, items, mode, terms)
	if err != nil {
		builder.Fail(err)
		return
	}
	if err := r.Run(c.Request.Context()); err != nil {
		builder.Fail(err)
		return
	}

	meat := h.svc.Character.Meat()
	builder.SuccessOK(dto.SellResponse{
		Mode:      label,
		Items:     len(items),
		Meat:      meat,
		MeatDelta: meat - before,
	})
}
