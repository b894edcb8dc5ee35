package report

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/store-tools/report-atlas/pkg/models/api"
)

// Renderer is the builder surface the facade depends on.
type Renderer interface {
	RenderKPI(p api.KpiPayload) ([]byte, error)
	RenderOrders(p api.OrdersPayload) ([]byte, error)
	RenderMenu(p api.MenuPayload) ([]byte, error)
	RenderTimeDay(p api.TimeDayPayload) ([]byte, error)
	RenderMaterial(p api.MaterialPayload) ([]byte, error)
}

type Handler struct {
	renderer Renderer
}

func NewHandler(renderer Renderer) *Handler {
	return &Handler{renderer: renderer}
}

func (h *Handler) CreateKPIReport(w http.ResponseWriter, r *http.Request) {
	var payload api.KpiPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	pdf, err := h.renderer.RenderKPI(payload)
	writeDocument(w, r, "KPI", pdf, err)
}

func (h *Handler) CreateOrdersReport(w http.ResponseWriter, r *http.Request) {
	var payload api.OrdersPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	pdf, err := h.renderer.RenderOrders(payload)
	writeDocument(w, r, "Orders", pdf, err)
}

func (h *Handler) CreateMenusReport(w http.ResponseWriter, r *http.Request) {
	var payload api.MenuPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	pdf, err := h.renderer.RenderMenu(payload)
	writeDocument(w, r, "Menus", pdf, err)
}

func (h *Handler) CreateTimeDayReport(w http.ResponseWriter, r *http.Request) {
	var payload api.TimeDayPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	pdf, err := h.renderer.RenderTimeDay(payload)
	writeDocument(w, r, "Time-Day", pdf, err)
}

func (h *Handler) CreateMaterialReport(w http.ResponseWriter, r *http.Request) {
	var payload api.MaterialPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	pdf, err := h.renderer.RenderMaterial(payload)
	writeDocument(w, r, "Material", pdf, err)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("failed to decode report payload")
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeDocument replies with the rendered PDF. A render error and an empty
// document are indistinguishable on the wire: both map to the fixed 500
// detail; the distinction only survives in the server log.
func writeDocument(w http.ResponseWriter, r *http.Request, name string, pdf []byte, err error) {
	logger := zerolog.Ctx(r.Context())

	if err != nil || len(pdf) == 0 {
		if err != nil {
			logger.Error().Err(err).Str("report", name).Msg("report render failed")
		} else {
			logger.Error().Str("report", name).Msg("report produced no output")
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Empty %s PDF generated", name))
		return
	}

	logger.Info().Str("report", name).Int("bytes", len(pdf)).Msg("report rendered")
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		logger.Error().Err(err).Str("report", name).Msg("failed to write report response")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
