package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/domain/dto"
	"github.com/guttosm/kol-client/internal/domain/model"
)

// GetCharacter handles GET /api/character.
//
// @Summary      Character state
// @Description  Returns the locally known meat, autosell mode and inventory.
// @Tags         Character
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=character.Snapshot}
// @Router       /api/character [get]
func (h *Handler) GetCharacter(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.svc.Character.Snapshot())
}

// UpdateInventory handles PUT /api/inventory.
//
// @Summary      Replace inventory
// @Description  Replaces the locally known inventory and, when given, the meat on hand. Sell requests size their batches from this inventory.
// @Tags         Character
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateInventoryRequest true "Inventory"
// @Success      200 {object} dto.SuccessResponse{data=character.Snapshot}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/inventory [put]
func (h *Handler) UpdateInventory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateInventoryRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}

	h.svc.Character.SetInventory(req.Stacks())
	if req.Meat != nil {
		h.svc.Character.SetMeat(*req.Meat)
	}
	builder.SuccessOK(h.svc.Character.Snapshot())
}

// SetAutosellMode handles PUT /api/autosell-mode.
//
// @Summary      Change autosell mode
// @Description  Selects the compact or detailed autosell page for later sells.
// @Tags         Character
// @Accept       json
// @Produce      json
// @Param        request body dto.AutosellModeRequest true "Autosell mode"
// @Success      200 {object} dto.SuccessResponse{data=character.Snapshot}
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown mode"
// @Router       /api/autosell-mode [put]
func (h *Handler) SetAutosellMode(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AutosellModeRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}

	mode, _ := model.ParseAutosellMode(req.Mode)
	h.svc.Character.SetAutosellMode(mode)
	builder.SuccessOK(h.svc.Character.Snapshot())
}
