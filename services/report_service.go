package services

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"alertsystem/utils"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ReportService stores field reports officers file against a disaster.
type ReportService struct {
	reportRepo   interfaces.ReportRepository
	disasterRepo interfaces.DisasterRepository
}

func NewReportService(reportRepo interfaces.ReportRepository, disasterRepo interfaces.DisasterRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo, disasterRepo: disasterRepo}
}

func (rs *ReportService) Submit(ctx context.Context, officer *models.User, disasterID, details string) (*models.Report, error) {
	if strings.TrimSpace(details) == "" {
		return nil, utils.NewBadRequestError("Details are required")
	}

	disaster, err := rs.disasterRepo.GetByID(ctx, disasterID)
	if err != nil {
		return nil, utils.NewBadRequestError("Disaster not found")
	}

	report := &models.Report{
		DisasterID:    disaster.ID,
		ResponderID:   officer.ID,
		ResponderName: officer.Name,
		Details:       details,
		SubmittedAt:   time.Now(),
	}
	if err := rs.reportRepo.Create(ctx, report); err != nil {
		return nil, utils.NewDatabaseError("create report", err)
	}

	logrus.WithFields(logrus.Fields{
		"reportId":   report.ID.Hex(),
		"disasterId": disaster.ID.Hex(),
	}).Info("Field report submitted")

	return report, nil
}

func (rs *ReportService) ListAll(ctx context.Context) ([]*models.Report, error) {
	reports, err := rs.reportRepo.List(ctx, interfaces.ReportFilter{})
	if err != nil {
		return nil, utils.NewDatabaseError("list reports", err)
	}
	return reports, nil
}
