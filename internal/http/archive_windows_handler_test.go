package http

import (
	"net/http"
	"testing"
	"time"

	archivermocks "request-metrics/internal/archivers/mocks"
	ingestormocks "request-metrics/internal/ingestors/mocks"
	"request-metrics/internal/models"
	querymocks "request-metrics/internal/queries/mocks"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newArchiveTestRouter(t *testing.T) (http.Handler, *archivermocks.MockArchiveService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	archive := archivermocks.NewMockArchiveService(ctrl)
	router := NewRouter(
		ingestormocks.NewMockIngestBuffer(ctrl),
		querymocks.NewMockQueryEngine(ctrl),
		loggers.Nop(),
		RouterOptions{Archive: archive},
	)
	return router, archive
}

func TestRouter_ArchivedWindows(t *testing.T) {
	t.Parallel()

	router, archive := newArchiveTestRouter(t)
	from := time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	archive.EXPECT().
		Windows(gomock.Any(), models.TimeRange{From: from, To: to}).
		Return([]*models.ArchivedWindow{{
			WindowStart:      from.Add(24 * time.Minute),
			WindowEnd:        from.Add(25 * time.Minute),
			Bucket:           "1m0s",
			Count:            3,
			ErrorCount:       2,
			ErrorsByRegion:   map[string]int64{"APAC": 2},
			RequestsByRegion: map[string]int64{"APAC": 2, "EU": 1},
		}}, nil)

	rr := serve(router, http.MethodGet, "/archive/windows?from=2025-10-07T12:00:00Z&to=2025-10-07T13:00:00Z")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"count":1`)
	assert.Contains(t, rr.Body.String(), `"windowStart":"2025-10-07T12:24:00Z"`)
	assert.Contains(t, rr.Body.String(), `"errorsByRegion":{"APAC":2}`)
}

func TestRouter_ArchivedWindows_Empty(t *testing.T) {
	t.Parallel()

	router, archive := newArchiveTestRouter(t)
	archive.EXPECT().Windows(gomock.Any(), gomock.Any()).Return([]*models.ArchivedWindow{}, nil)

	rr := serve(router, http.MethodGet, "/archive/windows?from=2025-10-07T12:00:00Z&to=2025-10-07T13:00:00Z")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":0,"windows":[]}`, rr.Body.String())
}

func TestRouter_ArchivedWindows_Rejected(t *testing.T) {
	t.Parallel()

	router, archive := newArchiveTestRouter(t)
	archive.EXPECT().
		Windows(gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewInvalidArgumentError("ARC_1001", "from and to are both required", nil))

	rr := serve(router, http.MethodGet, "/archive/windows")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "ARC_1001")
}

func TestRouter_ArchivedWindows_NotMountedWithoutArchive(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)
	rr := serve(router, http.MethodGet, "/archive/windows?from=2025-10-07T12:00:00Z&to=2025-10-07T13:00:00Z")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
