package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/domain/dto"
	"github.com/guttosm/kol-client/internal/i18n"
)

// GetStatus handles GET /api/status.
//
// @Summary      Status line
// @Description  Returns the last status message and whether input is currently disabled.
// @Tags         Status
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.Status}
// @Router       /api/status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.svc.Status.Current())
}

// GetStoreSnapshot handles GET /api/store/snapshot.
//
// @Summary      Latest store snapshot
// @Description  Returns the newest store management page captured after a mall listing.
// @Tags         Store
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.StoreSnapshot}
// @Failure      404 {object} dto.ErrorResponse "No snapshot yet"
// @Failure      503 {object} dto.ErrorResponse "Database unavailable"
// @Router       /api/store/snapshot [get]
func (h *Handler) GetStoreSnapshot(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap, err := h.svc.Store.Latest(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	}
	if snap == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}
	builder.SuccessOK(snap)
}

// ListStoreSnapshots handles GET /api/store/snapshots.
//
// @Summary      Store snapshot history
// @Tags         Store
// @Produce      json
// @Param        limit query int false "Maximum snapshots to return (1-100, default 10)"
// @Success      200 {object} dto.SuccessResponse{data=[]model.StoreSnapshot}
// @Failure      400 {object} dto.ErrorResponse "Bad limit"
// @Failure      503 {object} dto.ErrorResponse "Database unavailable"
// @Router       /api/store/snapshots [get]
func (h *Handler) ListStoreSnapshots(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var q dto.SnapshotQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	snaps, err := h.svc.Store.History(c.Request.Context(), q.LimitOrDefault())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	}
	builder.SuccessOK(snaps)
}
