package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/cache"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/chart"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/dashboard"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/metrics"
)

type CallbackResult struct {
	Output string       `json:"output"`
	Figure chart.Figure `json:"figure"`
}

func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) GetLayout(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "layout", h.dashboard.Page())
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "summary", h.dashboard.Summary())
}

func (h *Handler) GetCallbacks(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "callbacks", h.dashboard.Callbacks())
}

func (h *Handler) GetFigure(w http.ResponseWriter, r *http.Request) {
	graphID := chi.URLParam(r, "graphID")

	fig, err := h.dashboard.Figure(graphID)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrUnknownGraph):
			h.notFound(w, r, "graph not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "figure", fig)
}

func (h *Handler) RunCallback(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `validate:"max=256"`
	}
	req.Value = r.URL.Query().Get("value")
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	control := r.Context().Value(ControlCtx).(controlInfo)

	// 缓存出错只记录日志，直接重新计算
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.ConnectTimeout)*time.Second)
	defer cancel()

	cached, err := h.figureCache.Get(ctx, control.ID, req.Value)
	switch {
	case err == nil:
		metrics.IncCallback(control.ID, metrics.OutcomeCacheHit)
		h.successResponse(w, r, "figure", CallbackResult{Output: control.Output, Figure: *cached})
		return
	case !errors.Is(err, cache.ErrMiss):
		metrics.IncCacheError("get")
		slog.Warn("读取图表缓存失败", "control", control.ID, "error", err)
	}

	output, fig, err := h.dashboard.Update(control.ID, req.Value)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if !h.dashboard.IsKnownDepartment(req.Value) {
		metrics.IncCallback(control.ID, metrics.OutcomeUnknownValue)
		h.successResponse(w, r, "figure", CallbackResult{Output: output, Figure: fig})
		return
	}

	metrics.IncCallback(control.ID, metrics.OutcomeFiltered)
	if err := h.figureCache.Set(ctx, control.ID, req.Value, fig); err != nil {
		metrics.IncCacheError("set")
		slog.Warn("写入图表缓存失败", "control", control.ID, "error", err)
	}

	h.successResponse(w, r, "figure", CallbackResult{Output: output, Figure: fig})
}
