package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FAQ is a frequently-asked-question entry. Read-only catalog data.
type FAQ struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Question string             `json:"question" bson:"question"`
	Answer   string             `json:"answer" bson:"answer"`
	Category string             `json:"category" bson:"category"`
	Order    int                `json:"order" bson:"order"`
}
