package http

import (
	"net/http"

	"request-metrics/internal/archivers"
	"request-metrics/internal/models"
)

type ArchivedWindowsResponse struct {
	Count   int                      `json:"count"`
	Windows []*models.ArchivedWindow `json:"windows"`
}

type archivedWindowsHandler struct {
	archive archivers.ArchiveService
}

func NewArchivedWindowsHandler(archive archivers.ArchiveService) AppHttpHandler {
	return &archivedWindowsHandler{archive: archive}
}

// Handle processes GET /archive/windows?from=&to=.
func (h *archivedWindowsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	tr, err := timeRangeFromQuery(r)
	if err != nil {
		return err
	}

	windows, svcErr := h.archive.Windows(r.Context(), tr)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, ArchivedWindowsResponse{Count: len(windows), Windows: windows})
}
