package service

import (
	"context"
	"encoding/json"
	"time"

	apperrors "lingo-backend/internal/errors"
	"lingo-backend/internal/models"
	"lingo-backend/internal/repository"
	"lingo-backend/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// filePartPrefix keys uploaded media to questions by id: file_<questionID>.
// Files are matched explicitly instead of by submission order, so two
// questions can never consume each other's upload.
const filePartPrefix = "file_"

// PackageService handles business logic for the package catalog.
type PackageService struct {
	repo  repository.PackageRepository
	store storage.Storage
}

// NewPackageService creates a new PackageService.
func NewPackageService(repo repository.PackageRepository, store storage.Storage) *PackageService {
	return &PackageService{
		repo:  repo,
		store: store,
	}
}

// ListPackages returns the full package catalog.
func (s *PackageService) ListPackages(ctx context.Context) ([]models.PackageDocument, error) {
	return s.repo.FindAll(ctx)
}

// AddPackage assembles a learning package from the submitted questions and
// media files, then appends it to the container document. Each media file
// part is named file_<questionID>; image-based questions receive imageUrl,
// listening questions receive audioUrl. Media is stored under a subfolder
// named after the question type.
func (s *PackageService) AddPackage(ctx context.Context, req *models.AddPackageRequest, files map[string]*FileUpload) (*models.LearningPackage, error) {
	var questions []models.Question
	if err := json.Unmarshal([]byte(req.Questions), &questions); err != nil {
		return nil, apperrors.ErrInvalidQuestions
	}
	if len(questions) == 0 {
		return nil, apperrors.ErrInvalidQuestions
	}

	for i := range questions {
		q := &questions[i]

		file, ok := files[FilePartName(q.ID)]
		if !ok {
			continue // question carries no media
		}

		// Only questions that can hold a media reference get their file
		// stored; anything else would leave an unreferenced object. The
		// folder comes from the validated type, never the raw payload.
		folder, ok := mediaFolder(q)
		if !ok {
			continue
		}

		ref, err := s.store.UploadFile(ctx, folder, file.Name, file.Body, file.ContentType)
		if err != nil {
			return nil, err
		}

		if q.SubType == models.SubTypeImageBased {
			q.ImageURL = ref
		}
		if q.Type == models.QuestionTypeListening {
			q.AudioURL = ref
		}
	}

	pkg := models.LearningPackage{
		ID:          primitive.NewObjectID().Hex(),
		Name:        req.Name,
		Description: req.Description,
		Questions:   questions,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.AppendPackage(ctx, pkg); err != nil {
		return nil, err
	}

	return &pkg, nil
}

// FilePartName returns the multipart field name carrying a question's media.
func FilePartName(questionID string) string {
	return filePartPrefix + questionID
}

// mediaFolder returns the storage subfolder for a question's upload. Only
// image-based reading questions and listening questions carry media; the
// folder name is the recognized type constant, so a crafted type string
// cannot steer the object key.
func mediaFolder(q *models.Question) (string, bool) {
	switch q.Type {
	case models.QuestionTypeReading:
		if q.SubType == models.SubTypeImageBased {
			return models.QuestionTypeReading, true
		}
	case models.QuestionTypeListening:
		return models.QuestionTypeListening, true
	}
	return "", false
}
