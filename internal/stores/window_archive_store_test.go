package stores

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"request-metrics/internal/models"
	"request-metrics/internal/shared/filestorages"
	"request-metrics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func minuteSpan(t *testing.T) models.BucketSpan {
	t.Helper()
	span, err := models.NewBucketSpan(time.Minute)
	require.NoError(t, err)
	return span
}

func sampleArchivedWindow() *models.ArchivedWindow {
	start := time.Date(2025, 10, 7, 12, 24, 0, 0, time.UTC)
	return &models.ArchivedWindow{
		WindowStart:           start,
		WindowEnd:             start.Add(time.Minute),
		Bucket:                "1m0s",
		Count:                 3,
		SumLatencyMs:          836,
		AverageLatencyMs:      836.0 / 3,
		ErrorCount:            2,
		ErrorsByRegion:        map[string]int64{"APAC": 2},
		RequestsByRegion:      map[string]int64{"APAC": 2, "EU": 1},
		RequestsByStatusClass: map[string]int64{"2xx": 1, "5xx": 2},
		EvictedAt:             start.Add(time.Hour),
		ArchivedAt:            start.Add(time.Hour + time.Second),
	}
}

func TestWindowArchiveStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewWindowArchiveStore(mockFileStorage, minuteSpan(t))

	ctx := context.Background()
	archived := sampleArchivedWindow()
	expectedKey := "window-archive/20251007/20251007T1224Z.json"
	expectedJSON, _ := json.Marshal(archived)

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	assert.NoError(t, store.Put(ctx, archived))
}

func TestWindowArchiveStore_Put_AlreadyArchived(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewWindowArchiveStore(mockFileStorage, minuteSpan(t))

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Put(context.Background(), sampleArchivedWindow())
	assert.ErrorIs(t, err, ErrWindowAlreadyArchived)
}

func TestWindowArchiveStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewWindowArchiveStore(mockFileStorage, minuteSpan(t))

	diskFull := errors.New("no space left on device")
	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, diskFull)

	err := store.Put(context.Background(), sampleArchivedWindow())
	assert.ErrorIs(t, err, diskFull)
	assert.NotErrorIs(t, err, ErrWindowAlreadyArchived)
}

func TestWindowArchiveStore_Get_NotArchived(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewWindowArchiveStore(mockFileStorage, minuteSpan(t))

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "window-archive/20251007/20251007T1224Z.json").
		Return(nil, filestorages.ErrFileNotFound)

	_, err := store.Get(context.Background(), time.Date(2025, 10, 7, 12, 24, 30, 0, time.UTC))
	assert.ErrorIs(t, err, ErrWindowNotArchived)
}

func TestWindowArchiveStore_RoundTripOnDisk(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewWindowArchiveStore(fileStorage, minuteSpan(t))

	ctx := context.Background()
	archived := sampleArchivedWindow()

	require.NoError(t, store.Put(ctx, archived))
	assert.ErrorIs(t, store.Put(ctx, archived), ErrWindowAlreadyArchived, "archives are write-once")

	got, err := store.Get(ctx, archived.WindowStart)
	require.NoError(t, err)
	assert.Equal(t, archived.Count, got.Count)
	assert.Equal(t, archived.ErrorsByRegion, got.ErrorsByRegion)
	assert.True(t, archived.WindowStart.Equal(got.WindowStart))
}

func TestWindowArchiveStore_List_OnDisk(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewWindowArchiveStore(fileStorage, minuteSpan(t))
	ctx := context.Background()

	first := sampleArchivedWindow()
	second := sampleArchivedWindow()
	second.WindowStart = first.WindowStart.Add(2 * time.Minute)
	second.WindowEnd = second.WindowStart.Add(time.Minute)
	require.NoError(t, store.Put(ctx, second))
	require.NoError(t, store.Put(ctx, first))

	got, err := store.List(ctx, first.WindowStart.Add(-time.Hour), first.WindowStart.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, first.WindowStart.Equal(got[0].WindowStart), "oldest first")
	assert.True(t, second.WindowStart.Equal(got[1].WindowStart))

	got, err = store.List(ctx, first.WindowStart.Add(30*time.Second), second.WindowStart)
	require.NoError(t, err)
	assert.Empty(t, got, "from is rounded up to a window start and to is exclusive")

	got, err = store.List(ctx, first.WindowStart, first.WindowStart.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].Count)
}

func TestWindowArchiveStore_List_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewWindowArchiveStore(mockFileStorage, minuteSpan(t))

	from := time.Date(2025, 10, 7, 12, 24, 0, 0, time.UTC)
	denied := errors.New("permission denied")
	gomock.InOrder(
		mockFileStorage.EXPECT().
			Get(gomock.Any(), "window-archive/20251007/20251007T1224Z.json").
			Return(nil, filestorages.ErrFileNotFound),
		mockFileStorage.EXPECT().
			Get(gomock.Any(), "window-archive/20251007/20251007T1225Z.json").
			Return(nil, denied),
	)

	_, err := store.List(context.Background(), from, from.Add(5*time.Minute))
	assert.ErrorIs(t, err, denied)
}
