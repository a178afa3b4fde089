package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"propfirm-assistant/internal/model"
	"propfirm-assistant/pkg/response"
)

// Ask godoc
// @Summary     Ask a question
// @Description Runs the full answer pipeline: cache, intent detection, context filtering, LLM.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question payload"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown firm"
// @Failure     502 {object} response.Resp "Generation failed"
// @Router      /api/v1/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{UserID: fmt.Sprintf("http_%s", c.ClientIP())}

	output, err := h.uc.Answer(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAskResp(output))
}

// CacheStats godoc
// @Summary     Response cache metrics
// @Description Returns hit/miss counters, entry counts per tier, and average latency.
// @Tags        Cache
// @Produce     json
// @Success     200 {object} cacheStatsResp
// @Router      /api/v1/cache/stats [GET]
func (h *handler) CacheStats(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newCacheStatsResp(h.uc.CacheMetrics(ctx)))
}

// CacheClear godoc
// @Summary     Clear the response cache
// @Description Invalidates the exact and semantic tiers. Precomputed answers survive.
// @Tags        Cache
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /api/v1/cache/clear [POST]
func (h *handler) CacheClear(c *gin.Context) {
	ctx := c.Request.Context()
	h.uc.ClearCache(ctx)
	response.OK(c, map[string]string{"status": "cleared"})
}

// Firms godoc
// @Summary     List known prop firms
// @Tags        Firms
// @Produce     json
// @Success     200 {object} firmsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/firms [GET]
func (h *handler) Firms(c *gin.Context) {
	ctx := c.Request.Context()

	firms, err := h.uc.ListFirms(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListFirms: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newFirmsResp(firms))
}
