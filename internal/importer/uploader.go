// internal/importer/uploader.go
package importer

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
	"github.com/mkoval-dev/x3pl-dashboard/internal/core/ports"
)

// DefaultBatchSize bounds in-flight requests during an upload run.
const DefaultBatchSize = 10

// ProgressFunc receives the percentage of completed batches after each
// batch resolves.
type ProgressFunc func(percent int)

// Uploader submits minimal records to the backend in fixed-size
// sequential batches. Items within a batch are posted concurrently;
// the whole batch is joined before the next one starts, so at most
// batchSize requests are ever in flight and batch N+1 never overlaps
// batch N.
type Uploader struct {
	gateway   ports.InventoryGateway
	batchSize int
	logger    *slog.Logger
}

// NewUploader creates an uploader. batchSize <= 0 falls back to the
// default of 10.
func NewUploader(gateway ports.InventoryGateway, batchSize int, logger *slog.Logger) *Uploader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Uploader{
		gateway:   gateway,
		batchSize: batchSize,
		logger:    logger.With(slog.String("component", "uploader")),
	}
}

// Upload runs the whole batch sequence. Per-item failures increment
// the failure counter and append "<shk>: <message>" to the error list;
// they never abort the batch or the run. The aggregate result reports
// Success=true even with partial failures.
func (u *Uploader) Upload(ctx context.Context, items []domain.MinimalImportRecord, progress ProgressFunc) domain.UploadResult {
	result := domain.UploadResult{Success: true, Errors: []string{}}
	if len(items) == 0 {
		return result
	}

	totalBatches := (len(items) + u.batchSize - 1) / u.batchSize

	for batchIdx := 0; batchIdx < totalBatches; batchIdx++ {
		start := batchIdx * u.batchSize
		end := start + u.batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		// Each item's outcome lands in its own slot; the join below
		// waits for every outcome, success or failure.
		outcomes := make([]error, len(batch))
		var wg sync.WaitGroup
		for i := range batch {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				outcomes[i] = u.gateway.AddMinimal(ctx, batch[i])
			}(i)
		}
		wg.Wait()

		for i, err := range outcomes {
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, batch[i].SHK+": "+err.Error())
				continue
			}
			result.Processed++
		}

		percent := int(math.Round(100 * float64(batchIdx+1) / float64(totalBatches)))
		if progress != nil {
			progress(percent)
		}

		u.logger.DebugContext(ctx, "upload batch completed",
			slog.Int("batch", batchIdx+1),
			slog.Int("total_batches", totalBatches),
			slog.Int("processed", result.Processed),
			slog.Int("failed", result.Failed))
	}

	u.logger.InfoContext(ctx, "upload run completed",
		slog.Int("items", len(items)),
		slog.Int("processed", result.Processed),
		slog.Int("failed", result.Failed))

	return result
}
