package services

import (
	"patidestek/db"
	"patidestek/inout"
	"patidestek/model"
	"patidestek/pkg/apperr"
	"patidestek/pkg/monitoring"
)

type ReportService struct{}

// Create files a report against a comment; every report starts OPEN.
func (s *ReportService) Create(req inout.CreateReportReq, reporterId int) (*inout.ReportItem, error) {
	var count int64
	if err := db.Dao.Model(&model.Comment{}).Where("id = ?", req.CommentId).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.NotFound("comment not found")
	}

	report := model.CommentReport{
		Reason:     req.Reason,
		Details:    req.Details,
		Status:     model.ReportStatusOpen,
		CommentId:  req.CommentId,
		ReporterId: reporterId,
	}
	if err := db.Dao.Create(&report).Error; err != nil {
		return nil, err
	}

	monitoring.RecordReportCreated()
	return s.findWithRelations(report.Id)
}

// FindAll lists reports for moderation, newest first, with the reported
// comment, its author and the reporter joined in. Optional status filter.
func (s *ReportService) FindAll(status string) ([]inout.ReportItem, error) {
	query := db.Dao.Model(&model.CommentReport{}).
		Preload("Comment").Preload("Comment.User").Preload("Reporter")

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reports []model.CommentReport
	if err := query.Order("created_at DESC, id DESC").Find(&reports).Error; err != nil {
		return nil, err
	}

	items := make([]inout.ReportItem, len(reports))
	for i := range reports {
		items[i] = inout.NewReportItem(&reports[i])
	}
	return items, nil
}

// Resolve closes a report. Terminal; there is no reopen operation.
func (s *ReportService) Resolve(id int) (*inout.ReportItem, error) {
	var report model.CommentReport
	if err := db.Dao.First(&report, id).Error; err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("report not found")
		}
		return nil, err
	}

	report.Status = model.ReportStatusResolved
	if err := db.Dao.Save(&report).Error; err != nil {
		return nil, err
	}
	return s.findWithRelations(report.Id)
}

// Delete discards a report regardless of its status.
func (s *ReportService) Delete(id int) error {
	var report model.CommentReport
	if err := db.Dao.First(&report, id).Error; err != nil {
		if isNotFoundErr(err) {
			return apperr.NotFound("report not found")
		}
		return err
	}
	return db.Dao.Delete(&report).Error
}

func (s *ReportService) findWithRelations(id int) (*inout.ReportItem, error) {
	var report model.CommentReport
	err := db.Dao.
		Preload("Comment").Preload("Comment.User").Preload("Reporter").
		First(&report, id).Error
	if err != nil {
		return nil, err
	}
	item := inout.NewReportItem(&report)
	return &item, nil
}
