// internal/service/report.go
package service

import (
	"context"

	"github.com/sirecovip/backend/internal/model"
	"github.com/sirecovip/backend/internal/repository"
)

type ReportService struct {
	repo repository.MerchantRepositoryIface
}

func NewReportService(repo repository.MerchantRepositoryIface) *ReportService {
	return &ReportService{repo: repo}
}

// StatusBreakdown pairs a status count with its display label from the
// shared catalog.
type StatusBreakdown struct {
	Status model.MerchantStatus `json:"status"`
	Label  string               `json:"label"`
	Count  int64                `json:"count"`
}

type ReportSummary struct {
	TotalMerchants int64                   `json:"total_merchants"`
	ByStatus       []StatusBreakdown       `json:"by_status"`
	ByDelegation   []model.DelegationCount `json:"by_delegation"`
}

// Summary aggregates merchant counts for the coordinator reporting view.
func (s *ReportService) Summary(ctx context.Context) (*ReportSummary, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make([]StatusBreakdown, 0, len(statusCounts))
	for _, count := range statusCounts {
		byStatus = append(byStatus, StatusBreakdown{
			Status: count.Status,
			Label:  model.StatusLabel(count.Status),
			Count:  count.Count,
		})
	}

	byDelegation, err := s.repo.CountByDelegation(ctx)
	if err != nil {
		return nil, err
	}

	return &ReportSummary{
		TotalMerchants: total,
		ByStatus:       byStatus,
		ByDelegation:   byDelegation,
	}, nil
}
