package service

import (
	"context"
	"sync"
	"time"

	"github.com/kapu/member-directory-go/internal/constants"
	"github.com/kapu/member-directory-go/internal/domain"
	"github.com/kapu/member-directory-go/internal/metrics"
	"github.com/kapu/member-directory-go/internal/util"
	"github.com/kapu/member-directory-go/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// NoInterChunkDelay disables the pause between chunks. A zero
// InterChunkDelay means "unset" and falls back to the engine default.
const NoInterChunkDelay = time.Duration(-1)

// BatchOptions controls a range extraction run. Zero values fall back to the
// engine defaults.
type BatchOptions struct {
	ChunkSize       int
	InterChunkDelay time.Duration

	// MaxConcurrency is accepted for compatibility but has no distinct
	// effect: the chunked algorithm's concurrency bound is ChunkSize.
	MaxConcurrency int
}

// ExtractorEngine owns the full extraction pipeline: cache lookup, fetch,
// field extraction, validation, memoization and metrics. One engine is built
// per server process; it holds all shared mutable state.
type ExtractorEngine struct {
	fetcher *DocumentFetcher
	builder *RecordBuilder
	cache   *RecordCache
	metrics *MetricsAggregator
	logger  *zap.Logger

	defaultChunkSize int
	defaultDelay     time.Duration
}

type EngineConfig struct {
	DefaultChunkSize       int
	DefaultInterChunkDelay time.Duration
}

func NewExtractorEngine(fetcher *DocumentFetcher, cfg EngineConfig, logger *zap.Logger) *ExtractorEngine {
	if cfg.DefaultChunkSize < 1 {
		cfg.DefaultChunkSize = constants.BatchConfig.DefaultChunkSize
	}
	if cfg.DefaultInterChunkDelay <= 0 {
		cfg.DefaultInterChunkDelay = constants.BatchConfig.DefaultInterChunkDelay
	}

	extractor := NewFieldExtractor(logger)

	return &ExtractorEngine{
		fetcher:          fetcher,
		builder:          NewRecordBuilder(extractor, logger),
		cache:            NewRecordCache(constants.CacheSchemaVersion),
		metrics:          NewMetricsAggregator(),
		logger:           logger,
		defaultChunkSize: cfg.DefaultChunkSize,
		defaultDelay:     cfg.DefaultInterChunkDelay,
	}
}

// ExtractOne runs the pipeline for a single member id. A fetch or parse
// failure returns a typed error; a record that merely fails validation is
// returned with warnings attached and is not cached.
func (e *ExtractorEngine) ExtractOne(ctx context.Context, memberID int) (*domain.MemberRecord, error) {
	if memberID <= 0 {
		return nil, errors.NewValidationError("member id must be positive", "memberId", memberID)
	}

	if hit, ok := e.cache.Get(memberID); ok {
		e.metrics.RecordCacheHit()
		metrics.CacheOperationsTotal.WithLabelValues("get", "hit").Inc()
		e.logger.Debug("Record cache hit", zap.Int("member_id", memberID))
		return hit, nil
	}
	metrics.CacheOperationsTotal.WithLabelValues("get", "miss").Inc()

	start := time.Now()

	doc, err := e.fetcher.FetchMemberDocument(ctx, memberID)
	if err != nil {
		elapsed := time.Since(start)
		e.metrics.RecordFailure(elapsed)
		metrics.ExtractionsTotal.WithLabelValues("error").Inc()
		metrics.ExtractionDuration.Observe(elapsed.Seconds())
		return nil, errors.NewExtractionError("member extraction failed", memberID, err)
	}

	record := e.builder.Build(doc, memberID, start)
	result := ValidateRecord(record)

	elapsed := time.Since(start)
	record.ExtractionMetadata.ProcessingTimeMs = elapsed.Milliseconds()
	metrics.ExtractionDuration.Observe(elapsed.Seconds())

	if result.IsValid {
		e.cache.Put(memberID, record)
		metrics.CacheSize.Set(float64(e.cache.Size()))
		e.metrics.RecordSuccess(elapsed)
		metrics.ExtractionsTotal.WithLabelValues("success").Inc()
	} else {
		record.ValidationWarnings = result.Warnings
		e.metrics.RecordFailure(elapsed)
		metrics.ExtractionsTotal.WithLabelValues("invalid").Inc()
		e.logger.Warn("Record failed validation",
			zap.Int("member_id", memberID),
			zap.Strings("warnings", result.Warnings))
	}

	return record, nil
}

// ExtractRange processes [startID, endID] in contiguous chunks. Every id in
// a chunk is fetched concurrently; the chunk completes only when all tasks
// settle, and per-id failures never abort siblings or later chunks. Between
// chunks (never after the last) the scheduler sleeps to spare the upstream
// from burst load.
func (e *ExtractorEngine) ExtractRange(ctx context.Context, startID, endID int, opts BatchOptions) (*domain.BatchResult, error) {
	if startID <= 0 {
		return nil, errors.NewValidationError("start id must be positive", "startId", startID)
	}
	if startID > endID {
		return nil, errors.NewValidationError("start id must not exceed end id", "startId", startID)
	}

	chunkSize := opts.ChunkSize
	if chunkSize == 0 {
		chunkSize = e.defaultChunkSize
	}
	if chunkSize < 1 {
		return nil, errors.NewValidationError("chunk size must be at least 1", "chunkSize", opts.ChunkSize)
	}

	delay := opts.InterChunkDelay
	if delay == 0 {
		delay = e.defaultDelay
	}
	if delay < 0 {
		delay = 0
	}

	e.logger.Info("Batch extraction started",
		zap.Int("start_id", startID),
		zap.Int("end_id", endID),
		zap.Int("chunk_size", chunkSize),
		zap.Duration("inter_chunk_delay", delay))

	batchStart := time.Now()
	successful := make([]*domain.MemberRecord, 0, endID-startID+1)
	failed := make([]domain.FailedMember, 0)
	var resultsMu sync.Mutex

	for chunkStart := startID; chunkStart <= endID; chunkStart += chunkSize {
		chunkEnd := util.Min(chunkStart+chunkSize-1, endID)

		p := pool.New().WithMaxGoroutines(chunkEnd - chunkStart + 1)
		for id := chunkStart; id <= chunkEnd; id++ {
			id := id
			p.Go(func() {
				record, err := e.ExtractOne(ctx, id)

				resultsMu.Lock()
				defer resultsMu.Unlock()
				if err != nil {
					failed = append(failed, domain.FailedMember{MemberID: id, Error: err.Error()})
					return
				}
				successful = append(successful, record)
			})
		}
		p.Wait()

		e.logger.Debug("Chunk completed",
			zap.Int("chunk_start", chunkStart),
			zap.Int("chunk_end", chunkEnd))

		if chunkEnd < endID && delay > 0 {
			time.Sleep(delay)
		}
	}

	summary := domain.BatchSummary{
		TotalProcessed: endID - startID + 1,
		SuccessCount:   len(successful),
		FailureCount:   len(failed),
		ElapsedMs:      time.Since(batchStart).Milliseconds(),
		CompletedAt:    time.Now(),
	}

	e.logger.Info("Batch extraction completed",
		zap.Int("total", summary.TotalProcessed),
		zap.Int("succeeded", summary.SuccessCount),
		zap.Int("failed", summary.FailureCount),
		zap.Int64("elapsed_ms", summary.ElapsedMs))

	return &domain.BatchResult{
		Successful: successful,
		Failed:     failed,
		Summary:    summary,
	}, nil
}

// Metrics returns a snapshot of the running counters plus cache size.
func (e *ExtractorEngine) Metrics() domain.MetricsSnapshot {
	return e.metrics.Snapshot(e.cache.Size())
}
