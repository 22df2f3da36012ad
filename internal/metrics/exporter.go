package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"perfmeter/internal/config"
	"perfmeter/internal/registry"
	"perfmeter/internal/repository"
)

// Exporter buffers completed calls and writes them in batches. Record never
// blocks: when the buffer is full the call is dropped and counted.
type Exporter struct {
	writer       CallWriter
	ids          IDEncoder
	logger       *slog.Logger
	cfg          *config.ExportConfig
	callCh       chan registry.CompletedCall
	dropped      atomic.Uint64
	written      atomic.Uint64
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewExporter(writer CallWriter, ids IDEncoder, cfg *config.ExportConfig, logger *slog.Logger) *Exporter {
	return &Exporter{
		writer:     writer,
		ids:        ids,
		logger:     logger,
		cfg:        cfg,
		callCh:     make(chan registry.CompletedCall, cfg.BufferSize),
		shutdownCh: make(chan struct{}),
	}
}

// Record has the registry.Observer signature so it can be passed to
// Hub.OnComplete directly.
func (e *Exporter) Record(call registry.CompletedCall) {
	if !e.cfg.Enabled {
		return
	}
	select {
	case e.callCh <- call:
	default:
		e.dropped.Add(1)
		e.logger.Warn("export buffer full, dropping call",
			slog.String("class", call.Method.Class),
			slog.String("method", call.Method.Name))
	}
}

func (e *Exporter) Start(ctx context.Context) {
	if !e.cfg.Enabled {
		e.logger.Info("call export disabled")
		return
	}

	flushInterval := time.Duration(e.cfg.FlushInterval) * time.Millisecond

	e.wg.Add(1)
	go e.flushCalls(ctx, flushInterval)

	e.logger.Info("call exporter started",
		slog.Int("buffer_size", e.cfg.BufferSize),
		slog.Int("flush_interval_ms", e.cfg.FlushInterval))
}

func (e *Exporter) Close() {
	e.shutdownOnce.Do(func() {
		close(e.shutdownCh)
		e.wg.Wait()
	})
}

func (e *Exporter) Dropped() uint64 {
	return e.dropped.Load()
}

func (e *Exporter) Written() uint64 {
	return e.written.Load()
}

func (e *Exporter) flushCalls(ctx context.Context, interval time.Duration) {
	defer e.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]registry.CompletedCall, 0, e.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			e.drainAndFlush(batch)
			return
		case <-e.shutdownCh:
			e.drainAndFlush(batch)
			return
		case call := <-e.callCh:
			batch = append(batch, call)
			if len(batch) >= e.cfg.FlushThreshold {
				e.writeBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				e.writeBatch(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (e *Exporter) drainAndFlush(batch []registry.CompletedCall) {
	for {
		select {
		case call := <-e.callCh:
			batch = append(batch, call)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				e.writeBatch(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (e *Exporter) writeBatch(ctx context.Context, batch []registry.CompletedCall) {
	if len(batch) == 0 {
		return
	}

	rows := make([]repository.CallRow, 0, len(batch))
	for _, call := range batch {
		row, err := e.toRow(call)
		if err != nil {
			e.logger.Warn("skipping call that cannot be exported",
				slog.String("method", call.Method.String()),
				slog.String("error", err.Error()))
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return
	}

	n, err := e.writer.WriteCalls(ctx, rows)
	if err != nil {
		e.logger.Error("failed to write method calls batch", slog.String("error", err.Error()))
		return
	}
	e.written.Add(uint64(n))
}

type stepRow struct {
	Name       string         `json:"name"`
	ElapsedMs  float64        `json:"elapsed_ms"`
	StartTime  time.Time      `json:"start_time"`
	EndTime    time.Time      `json:"end_time"`
	CustomData map[string]any `json:"custom_data,omitempty"`
}

func (e *Exporter) toRow(call registry.CompletedCall) (repository.CallRow, error) {
	id, err := e.ids.Encode(call.Method.Class, call.Seq)
	if err != nil {
		return repository.CallRow{}, err
	}

	row := repository.CallRow{
		ID:        id,
		ClassName: call.Method.Class,
		Method:    call.Method.Name,
		Caller:    call.Caller,
		StartTime: call.StartTime,
		EndTime:   call.EndTime,
		ElapsedMs: Millis(call.Elapsed),
	}

	if len(call.CustomData) > 0 {
		if row.CustomData, err = json.Marshal(call.CustomData); err != nil {
			return repository.CallRow{}, err
		}
	}

	if len(call.Steps) > 0 {
		steps := make([]stepRow, len(call.Steps))
		for i, s := range call.Steps {
			steps[i] = stepRow{
				Name:       s.Name,
				ElapsedMs:  Millis(s.Elapsed),
				StartTime:  s.StartTime,
				EndTime:    s.EndTime,
				CustomData: s.CustomData,
			}
		}
		if row.Steps, err = json.Marshal(steps); err != nil {
			return repository.CallRow{}, err
		}
	}

	return row, nil
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
