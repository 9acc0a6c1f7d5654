package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/logger"
	"github.com/guttosm/cart-pricing-service/internal/metrics"
	"github.com/guttosm/cart-pricing-service/internal/service"
)

// AsyncLoggerConfig tunes the background request log writer.
type AsyncLoggerConfig struct {
	BufferSize    int
	NumWorkers    int
	BatchSize     int
	FlushInterval time.Duration
	WriteTimeout  time.Duration
}

// DefaultAsyncLoggerConfig returns the settings used by the service.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

func (cfg AsyncLoggerConfig) withDefaults() AsyncLoggerConfig {
	def := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	return cfg
}

// AsyncLoggerStats is a snapshot of writer counters.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Failed   int64
}

// AsyncLogger persists request log entries off the request path.
// Entries are queued in a bounded buffer and written in batches; when the
// buffer is full new entries are dropped rather than blocking the request.
type AsyncLogger struct {
	sink    service.LoggingService
	cfg     AsyncLoggerConfig
	entries chan *model.LogEntry
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts a writer for sink. It returns nil when sink is nil.
func NewAsyncLogger(sink service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if sink == nil {
		return nil
	}
	cfg = cfg.withDefaults()

	al := &AsyncLogger{
		sink:    sink,
		cfg:     cfg,
		entries: make(chan *model.LogEntry, cfg.BufferSize),
		done:    make(chan struct{}),
	}
	al.wg.Add(cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		go al.run()
	}
	return al
}

func (al *AsyncLogger) run() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, al.cfg.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		al.write(batch)
		batch = make([]*model.LogEntry, 0, al.cfg.BatchSize)
	}

	for {
		select {
		case entry := <-al.entries:
			batch = append(batch, entry)
			if len(batch) >= al.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-al.done:
			for {
				select {
				case entry := <-al.entries:
					batch = append(batch, entry)
					if len(batch) >= al.cfg.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) write(batch []*model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.cfg.WriteTimeout)
	defer cancel()

	var err error
	if len(batch) == 1 {
		err = al.sink.CreateLog(ctx, batch[0])
	} else {
		err = al.sink.CreateLogs(ctx, batch)
	}
	if err != nil {
		al.failed.Add(int64(len(batch)))
		metrics.RecordRequestLogEntries("failed", len(batch))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to persist request log batch")
		return
	}
	al.written.Add(int64(len(batch)))
	metrics.RecordRequestLogEntries("written", len(batch))
}

// Log queues entry and reports whether it was accepted.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	select {
	case <-al.done:
		al.drop()
		return false
	default:
	}
	select {
	case al.entries <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.drop()
		return false
	}
}

func (al *AsyncLogger) drop() {
	al.dropped.Add(1)
	metrics.RecordRequestLogEntries("dropped", 1)
}

// Stop flushes queued entries and waits for the workers. Safe to call twice.
func (al *AsyncLogger) Stop() {
	al.once.Do(func() {
		close(al.done)
		al.wg.Wait()
	})
}

// Stats returns the writer counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}

var (
	asyncLoggerMu sync.RWMutex
	asyncLogger   *AsyncLogger
)

// InitAsyncLogger starts the process-wide writer, stopping any previous one.
func InitAsyncLogger(sink service.LoggingService, cfg AsyncLoggerConfig) {
	asyncLoggerMu.Lock()
	defer asyncLoggerMu.Unlock()

	if asyncLogger != nil {
		asyncLogger.Stop()
	}
	asyncLogger = NewAsyncLogger(sink, cfg)
}

// GetAsyncLogger returns the process-wide writer, or nil when none is running.
func GetAsyncLogger() *AsyncLogger {
	asyncLoggerMu.RLock()
	defer asyncLoggerMu.RUnlock()
	return asyncLogger
}

// StopAsyncLogger flushes and stops the process-wide writer.
func StopAsyncLogger() {
	asyncLoggerMu.Lock()
	defer asyncLoggerMu.Unlock()

	if asyncLogger != nil {
		asyncLogger.Stop()
		asyncLogger = nil
	}
}
