package importer_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
	"github.com/mkoval-dev/x3pl-dashboard/internal/importer"
	"github.com/mkoval-dev/x3pl-dashboard/test/helpers"
	"github.com/mkoval-dev/x3pl-dashboard/test/mocks"
)

func makeItems(n int) []domain.MinimalImportRecord {
	items := make([]domain.MinimalImportRecord, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, domain.MinimalImportRecord{
			SHK:  fmt.Sprintf("SHK-%03d", i),
			Name: fmt.Sprintf("Товар %d", i),
		})
	}
	return items
}

func TestUpload_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockInventoryGateway(ctrl)
	gateway.EXPECT().AddMinimal(gomock.Any(), gomock.Any()).Return(nil).Times(25)

	uploader := importer.NewUploader(gateway, 10, helpers.TestLogger())

	var percents []int
	result := uploader.Upload(context.Background(), makeItems(25), func(p int) {
		percents = append(percents, p)
	})

	assert.True(t, result.Success)
	assert.Equal(t, 25, result.Processed)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)
	assert.Equal(t, []int{33, 67, 100}, percents, "one progress tick per batch")
}

func TestUpload_PartialFailureDoesNotAbortRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockInventoryGateway(ctrl)

	gateway.EXPECT().AddMinimal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item domain.MinimalImportRecord) error {
			if item.SHK == "SHK-007" {
				return errors.New("duplicate item")
			}
			return nil
		}).Times(25)

	uploader := importer.NewUploader(gateway, 10, helpers.TestLogger())
	result := uploader.Upload(context.Background(), makeItems(25), nil)

	assert.True(t, result.Success, "partial failures keep the aggregate successful")
	assert.Equal(t, 24, result.Processed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "SHK-007: duplicate item", result.Errors[0])
}

func TestUpload_BatchesAreSequentialAndBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockInventoryGateway(ctrl)

	var (
		mu         sync.Mutex
		inFlight   atomic.Int32
		maxInFlight int32
	)
	gateway.EXPECT().AddMinimal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.MinimalImportRecord) error {
			current := inFlight.Add(1)
			mu.Lock()
			if current > maxInFlight {
				maxInFlight = current
			}
			mu.Unlock()
			defer inFlight.Add(-1)
			return nil
		}).Times(25)

	uploader := importer.NewUploader(gateway, 10, helpers.TestLogger())
	result := uploader.Upload(context.Background(), makeItems(25), nil)

	assert.Equal(t, 25, result.Processed)
	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, maxInFlight, int32(10), "no more than one batch in flight at a time")
}

func TestUpload_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockInventoryGateway(ctrl)

	uploader := importer.NewUploader(gateway, 10, helpers.TestLogger())

	called := false
	result := uploader.Upload(context.Background(), nil, func(int) { called = true })

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 0, result.Failed)
	assert.False(t, called, "no batches means no progress ticks")
}

func TestUpload_SingleShortBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockInventoryGateway(ctrl)
	gateway.EXPECT().AddMinimal(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	uploader := importer.NewUploader(gateway, 10, helpers.TestLogger())

	var percents []int
	result := uploader.Upload(context.Background(), makeItems(3), func(p int) {
		percents = append(percents, p)
	})

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, []int{100}, percents)
}

func TestNewUploader_DefaultBatchSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockInventoryGateway(ctrl)
	gateway.EXPECT().AddMinimal(gomock.Any(), gomock.Any()).Return(nil).Times(11)

	// batchSize 0 falls back to 10: 11 items make two batches.
	uploader := importer.NewUploader(gateway, 0, helpers.TestLogger())

	var percents []int
	uploader.Upload(context.Background(), makeItems(11), func(p int) {
		percents = append(percents, p)
	})

	assert.Equal(t, []int{50, 100}, percents)
}
