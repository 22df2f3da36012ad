package handler

//go:generate go tool mockery

import "perfmeter/internal/domain"

type ReportService interface {
	ListClasses() domain.ClassList
	Report(className string) ([]byte, error)
	Call(className, id string) (*domain.CallView, error)
	Reset(className string) error
	SetRetention(className string, minutes int) (*domain.RetentionResponse, error)
	AddCustomData(className, key string, value any) error
	RemoveCustomData(className, key string) error
}

type ReportValidator interface {
	ValidateClassName(name string) error
	ValidateRetention(minutes int) error
	ValidateCustomDataKey(key string) error
	ValidateCustomData(key string, value any) error
}
