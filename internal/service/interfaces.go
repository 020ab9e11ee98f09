package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ReportServiceInterface defines the interface for the inspection report
type ReportServiceInterface interface {
	GetReport() (*Report, error)
}

// SimulationServiceInterface defines the interface for a generation run
type SimulationServiceInterface interface {
	Run(ctx context.Context, opts SimulationOptions) (*SimulationSummary, error)
}
