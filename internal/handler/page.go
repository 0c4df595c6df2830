package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sysu-ecnc-dev/hr-dashboard/internal/chart"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	stylesheetURL = "https://codepen.io/chriddyp/pen/bWLwgP.css"
	plotlyURL     = "https://cdn.plot.ly/plotly-2.35.2.min.js"
)

type pageData struct {
	Page       dashboard.Page
	Figures    map[string]chart.Figure
	Stylesheet string
	PlotlyJS   string
}

func parsePageTemplate() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/dashboard.html")
}

func (h *Handler) GetDashboardPage(w http.ResponseWriter, r *http.Request) {
	page := h.dashboard.Page()

	figures := make(map[string]chart.Figure)
	for _, p := range page.Panels() {
		figures[p.GraphID] = *p.Figure
	}

	// 先渲染到缓冲区，模板出错时还能返回 500
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, pageData{
		Page:       page,
		Figures:    figures,
		Stylesheet: stylesheetURL,
		PlotlyJS:   plotlyURL,
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
