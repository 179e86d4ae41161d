package http

import (
	"net/http"

	"request-metrics/internal/ingestors"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/shared/svcerrors"
)

type ingestEventResponse struct {
	ID       int64  `json:"id"`
	Sequence uint64 `json:"sequence"`
}

type ingestEventHandler struct {
	buffer ingestors.IngestBuffer
}

func NewIngestEventHandler(buffer ingestors.IngestBuffer) AppHttpHandler {
	return &ingestEventHandler{buffer: buffer}
}

// Handle processes POST /events.
func (h *ingestEventHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	event, err := ingestors.ParseEvent(r.Body)
	if err != nil {
		return err
	}

	seq, err := h.buffer.Ingest(r.Context(), event)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusAccepted, ingestEventResponse{ID: event.ID, Sequence: seq})
}

type batchItemResult struct {
	Index            int     `json:"index"`
	ID               *int64  `json:"id,omitempty"`
	Sequence         *uint64 `json:"sequence,omitempty"`
	ErrorCode        string  `json:"errorCode,omitempty"`
	ErrorDescription string  `json:"errorDescription,omitempty"`
}

type ingestBatchResponse struct {
	Accepted int               `json:"accepted"`
	Rejected int               `json:"rejected"`
	Results  []batchItemResult `json:"results"`
}

type ingestBatchHandler struct {
	buffer ingestors.IngestBuffer
}

func NewIngestBatchHandler(buffer ingestors.IngestBuffer) AppHttpHandler {
	return &ingestBatchHandler{buffer: buffer}
}

// Handle processes POST /events/batch. Items are ingested in order and each one is
// accepted or rejected on its own; only a body that is not an event array fails the call.
func (h *ingestBatchHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	decoded, err := ingestors.ParseEvents(r.Body)
	if err != nil {
		return err
	}

	resp := ingestBatchResponse{Results: make([]batchItemResult, 0, len(decoded))}
	for _, d := range decoded {
		item := batchItemResult{Index: d.Index, ID: d.ID}

		itemErr := d.Err
		if itemErr == nil {
			seq, err := h.buffer.Ingest(r.Context(), d.Event)
			if err == nil {
				item.Sequence = &seq
			}
			itemErr = err
		}

		if itemErr != nil {
			svcErr, ok := svcerrors.AsServiceError(itemErr)
			if !ok {
				svcErr = svcerrors.NewInternalErrorUndefined(itemErr)
			}
			if svcErr.IsInternalError() {
				loggers.Ctx(r.Context()).Error().
					Err(svcErr.Cause).
					Str(loggers.FieldErrorCode, svcErr.Code).
					Int("index", d.Index).
					Msg("internal error in batch item")
			}
			item.ErrorCode = svcErr.Code
			item.ErrorDescription = svcErr.Message
			resp.Rejected++
		} else {
			resp.Accepted++
		}
		resp.Results = append(resp.Results, item)
	}

	metricBatchItemsTotal.WithLabelValues("accepted").Add(float64(resp.Accepted))
	metricBatchItemsTotal.WithLabelValues("rejected").Add(float64(resp.Rejected))

	return writeJSON(w, http.StatusOK, resp)
}
