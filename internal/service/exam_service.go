package service

import (
	"context"

	"lingo-backend/internal/models"
	"lingo-backend/internal/repository"
)

// ExamService handles business logic for exam history.
type ExamService struct {
	repo repository.ExamHistoryRepository
}

// NewExamService creates a new ExamService.
func NewExamService(repo repository.ExamHistoryRepository) *ExamService {
	return &ExamService{repo: repo}
}

// GetHistory returns a student's exam history. A student with no prior
// submissions gets an empty record, not an error.
func (s *ExamService) GetHistory(ctx context.Context, studentID string) (*models.ExamHistory, error) {
	history, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if history == nil {
		return &models.ExamHistory{
			StudentID: studentID,
			Exams:     []models.ExamResult{},
		}, nil
	}

	if history.Exams == nil {
		history.Exams = []models.ExamResult{}
	}

	return history, nil
}

// SubmitExam appends an exam attempt to the student's history, creating the
// record on first submission. Resubmitting the same exam_id appends a second
// entry; attempts are never deduplicated.
func (s *ExamService) SubmitExam(ctx context.Context, req *models.SubmitExamRequest) (*models.ExamResult, error) {
	result := req.ToResult()

	if err := s.repo.AppendExam(ctx, req.StudentID, result); err != nil {
		return nil, err
	}

	return &result, nil
}
