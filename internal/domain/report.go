package domain

import "time"

type ClassList struct {
	Classes []string `json:"classes"`
}

type MethodCount struct {
	Method string `json:"method"`
	Calls  int64  `json:"calls"`
}

type StepView struct {
	Name       string         `json:"name"`
	ElapsedMs  float64        `json:"elapsed_ms"`
	StartTime  time.Time      `json:"start_time"`
	EndTime    time.Time      `json:"end_time"`
	CustomData map[string]any `json:"custom_data,omitempty"`
}

type CallView struct {
	ID         string         `json:"id"`
	Method     string         `json:"method"`
	ElapsedMs  float64        `json:"elapsed_ms"`
	Caller     string         `json:"caller"`
	StartTime  time.Time      `json:"start_time"`
	EndTime    time.Time      `json:"end_time"`
	CustomData map[string]any `json:"custom_data,omitempty"`
	Steps      []StepView     `json:"steps,omitempty"`
}

type Report struct {
	ClassName        string         `json:"class_name"`
	MethodNames      []string       `json:"method_names"`
	CurrentActivity  []MethodCount  `json:"current_activity"`
	TotalActivity    []MethodCount  `json:"total_activity"`
	MethodCalls      []CallView     `json:"method_calls"`
	TruncatedCalls   int            `json:"truncated_calls,omitempty"`
	CustomData       map[string]any `json:"custom_data"`
	UptimeSince      time.Time      `json:"uptime_since"`
	RetentionMinutes int            `json:"retention_minutes"`
}

type RetentionRequest struct {
	Minutes int `json:"minutes"`
}

type RetentionResponse struct {
	ClassName        string `json:"class_name"`
	RetentionMinutes int    `json:"retention_minutes"`
}

type CustomDataRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}
