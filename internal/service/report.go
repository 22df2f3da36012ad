package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"perfmeter/internal/domain"
	"perfmeter/internal/metrics"
	"perfmeter/internal/registry"
)

var (
	ErrClassNotFound = errors.New("class not found")
	ErrCallNotFound  = errors.New("call not found")
)

type ReportService struct {
	registries Registries
	cache      Cache
	ids        IDCodec
	maxCalls   int
	logger     *slog.Logger
}

// NewReportService renders at most maxCalls calls per report, keeping the
// newest. A non-positive maxCalls renders every retained call.
func NewReportService(registries Registries, cache Cache, ids IDCodec, maxCalls int, logger *slog.Logger) *ReportService {
	return &ReportService{
		registries: registries,
		cache:      cache,
		ids:        ids,
		maxCalls:   maxCalls,
		logger:     logger,
	}
}

func (s *ReportService) ListClasses() domain.ClassList {
	classes := s.registries.ClassNames()
	if classes == nil {
		classes = []string{}
	}
	return domain.ClassList{Classes: classes}
}

// Report returns the JSON report of a class, served from cache while fresh.
func (s *ReportService) Report(className string) ([]byte, error) {
	if cached, ok := s.cache.Get(className); ok {
		return cached, nil
	}

	reg, ok := s.registries.Lookup(className)
	if !ok {
		return nil, ErrClassNotFound
	}

	report, err := s.render(reg.Snapshot())
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	s.cache.Set(className, body)
	return body, nil
}

// Call finds one retained call by the id shown in reports.
func (s *ReportService) Call(className, id string) (*domain.CallView, error) {
	reg, ok := s.registries.Lookup(className)
	if !ok {
		return nil, ErrClassNotFound
	}

	_, seq, err := s.ids.Decode(id)
	if err != nil {
		return nil, ErrCallNotFound
	}
	// The id must also carry this class, not only a matching sequence.
	if expected, err := s.ids.Encode(className, seq); err != nil || expected != id {
		return nil, ErrCallNotFound
	}

	snap := reg.Snapshot()
	for _, call := range snap.MethodCalls {
		if call.Seq == seq {
			view := callView(id, call)
			return &view, nil
		}
	}
	return nil, ErrCallNotFound
}

func (s *ReportService) Reset(className string) error {
	reg, ok := s.registries.Lookup(className)
	if !ok {
		return ErrClassNotFound
	}
	reg.Reset()
	s.cache.Invalidate(className)
	s.logger.Info("performance data reset", slog.String("class", className))
	return nil
}

func (s *ReportService) SetRetention(className string, minutes int) (*domain.RetentionResponse, error) {
	reg, ok := s.registries.Lookup(className)
	if !ok {
		return nil, ErrClassNotFound
	}
	if err := reg.SetRetentionMinutes(minutes); err != nil {
		return nil, fmt.Errorf("failed to set retention: %w", err)
	}
	s.cache.Invalidate(className)
	return &domain.RetentionResponse{
		ClassName:        className,
		RetentionMinutes: reg.RetentionMinutes(),
	}, nil
}

func (s *ReportService) AddCustomData(className, key string, value any) error {
	reg, ok := s.registries.Lookup(className)
	if !ok {
		return ErrClassNotFound
	}
	reg.AddCustomData(key, value)
	s.cache.Invalidate(className)
	return nil
}

func (s *ReportService) RemoveCustomData(className, key string) error {
	reg, ok := s.registries.Lookup(className)
	if !ok {
		return ErrClassNotFound
	}
	reg.RemoveCustomData(key)
	s.cache.Invalidate(className)
	return nil
}

func (s *ReportService) render(snap registry.Snapshot) (*domain.Report, error) {
	calls := snap.MethodCalls
	truncated := 0
	if s.maxCalls > 0 && len(calls) > s.maxCalls {
		truncated = len(calls) - s.maxCalls
		calls = calls[truncated:]
	}

	views := make([]domain.CallView, 0, len(calls))
	for _, call := range calls {
		id, err := s.ids.Encode(snap.ClassName, call.Seq)
		if err != nil {
			return nil, fmt.Errorf("failed to encode call id: %w", err)
		}
		views = append(views, callView(id, call))
	}

	customData := encodable(snap.CustomData)
	if customData == nil {
		customData = map[string]any{}
	}

	return &domain.Report{
		ClassName:        snap.ClassName,
		MethodNames:      snap.MethodNames,
		CurrentActivity:  counts(snap.CurrentActivity),
		TotalActivity:    counts(snap.TotalActivity),
		MethodCalls:      views,
		TruncatedCalls:   truncated,
		CustomData:       customData,
		UptimeSince:      snap.UptimeSince,
		RetentionMinutes: snap.RetentionMinutes,
	}, nil
}

func counts(in []registry.CallCount) []domain.MethodCount {
	out := make([]domain.MethodCount, len(in))
	for i, c := range in {
		out[i] = domain.MethodCount{Method: c.Method.Name, Calls: c.Calls}
	}
	return out
}

func callView(id string, call registry.CompletedCall) domain.CallView {
	view := domain.CallView{
		ID:         id,
		Method:     call.Method.Name,
		ElapsedMs:  metrics.Millis(call.Elapsed),
		Caller:     call.Caller,
		StartTime:  call.StartTime,
		EndTime:    call.EndTime,
		CustomData: encodable(call.CustomData),
	}
	if len(call.Steps) > 0 {
		view.Steps = make([]domain.StepView, len(call.Steps))
		for i, step := range call.Steps {
			view.Steps[i] = domain.StepView{
				Name:       step.Name,
				ElapsedMs:  metrics.Millis(step.Elapsed),
				StartTime:  step.StartTime,
				EndTime:    step.EndTime,
				CustomData: encodable(step.CustomData),
			}
		}
	}
	return view
}

// encodable replaces custom data values that JSON cannot carry with their
// printed form. data is returned as is when every value encodes.
func encodable(data map[string]any) map[string]any {
	var out map[string]any
	for k, v := range data {
		if _, err := json.Marshal(v); err == nil {
			continue
		}
		if out == nil {
			out = maps.Clone(data)
		}
		out[k] = fmt.Sprint(v)
	}
	if out == nil {
		return data
	}
	return out
}
