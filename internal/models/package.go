package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question types and sub-types recognized by the add-package flow.
const (
	QuestionTypeReading   = "reading"
	QuestionTypeListening = "listening"

	SubTypeImageBased = "image-based"
)

// Question is a single exercise inside a learning package.
type Question struct {
	ID       string   `json:"id" bson:"id"`
	Type     string   `json:"type" bson:"type"`
	SubType  string   `json:"subType" bson:"subType"`
	Text     string   `json:"text" bson:"text"`
	Options  []string `json:"options,omitempty" bson:"options,omitempty"`
	Answer   string   `json:"answer,omitempty" bson:"answer,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	AudioURL string   `json:"audioUrl,omitempty" bson:"audioUrl,omitempty"`
}

// LearningPackage is one course package inside the container document.
type LearningPackage struct {
	ID          string     `json:"id" bson:"id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Questions   []Question `json:"questions" bson:"questions"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}

// PackageDocument is the container document holding all learning packages.
type PackageDocument struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Packages []LearningPackage  `json:"packages" bson:"packages"`
}

// AddPackageRequest carries the non-file fields of the add-package form.
// The questions field is a JSON-encoded array; media files arrive as
// multipart parts named file_<questionID>.
type AddPackageRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Questions   string `form:"questions" binding:"required"`
}
