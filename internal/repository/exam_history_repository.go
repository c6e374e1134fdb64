package repository

import (
	"context"
	"errors"

	"lingo-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExamHistoryRepository defines data operations on per-student exam history.
type ExamHistoryRepository interface {
	// FindByStudentID returns the student's history, or (nil, nil) when the
	// student has no record yet. Absence is a valid state, not an error.
	FindByStudentID(ctx context.Context, studentID string) (*models.ExamHistory, error)
	// AppendExam appends an exam entry, creating the record on first
	// submission. Single atomic upsert; no read-then-write race.
	AppendExam(ctx context.Context, studentID string, exam models.ExamResult) error
}

type examHistoryRepository struct {
	collection *mongo.Collection
}

// NewExamHistoryRepository creates a new ExamHistoryRepository
func NewExamHistoryRepository(db *mongo.Database) ExamHistoryRepository {
	return &examHistoryRepository{
		collection: db.Collection("exam_history"),
	}
}

func (r *examHistoryRepository) FindByStudentID(ctx context.Context, studentID string) (*models.ExamHistory, error) {
	var history models.ExamHistory

	err := r.collection.FindOne(ctx, bson.M{"student_id": studentID}).Decode(&history)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &history, nil
}

func (r *examHistoryRepository) AppendExam(ctx context.Context, studentID string, exam models.ExamResult) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"student_id": studentID},
		bson.M{"$push": bson.M{"exams": exam}},
		options.Update().SetUpsert(true),
	)
	return err
}
