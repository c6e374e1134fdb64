package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ExamResult is one completed exam attempt. Repeated submissions for the
// same exam_id append further entries; the history keeps every attempt.
type ExamResult struct {
	ExamID              string  `json:"exam_id" bson:"exam_id"`
	PackageID           string  `json:"package_id" bson:"package_id"`
	PackageName         string  `json:"package_name" bson:"package_name"`
	TotalQuestions      int     `json:"total_questions" bson:"total_questions"`
	TotalCorrectAnswers int     `json:"total_correct_answers" bson:"total_correct_answers"`
	TimeTaken           int     `json:"time_taken" bson:"time_taken"`
	Score               float64 `json:"score" bson:"score"`
	Date                string  `json:"date" bson:"date"`
	Status              string  `json:"status" bson:"status"`
}

// ExamHistory holds the ordered exam attempts of one student.
type ExamHistory struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	StudentID string             `json:"student_id" bson:"student_id"`
	Exams     []ExamResult       `json:"exams" bson:"exams"`
}

// SubmitExamRequest is the payload for an exam submission.
type SubmitExamRequest struct {
	StudentID           string  `json:"student_id" binding:"required"`
	ExamID              string  `json:"exam_id" binding:"required"`
	PackageID           string  `json:"package_id"`
	PackageName         string  `json:"package_name"`
	TotalQuestions      int     `json:"total_questions"`
	TotalCorrectAnswers int     `json:"total_correct_answers"`
	TimeTaken           int     `json:"time_taken"`
	Score               float64 `json:"score"`
	Date                string  `json:"date"`
	Status              string  `json:"status"`
}

// ToResult converts a submission into the stored exam entry.
func (r *SubmitExamRequest) ToResult() ExamResult {
	return ExamResult{
		ExamID:              r.ExamID,
		PackageID:           r.PackageID,
		PackageName:         r.PackageName,
		TotalQuestions:      r.TotalQuestions,
		TotalCorrectAnswers: r.TotalCorrectAnswers,
		TimeTaken:           r.TimeTaken,
		Score:               r.Score,
		Date:                r.Date,
		Status:              r.Status,
	}
}
