package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Bundle is a purchasable grouping of learning packages. Read-only catalog
// data from this service's point of view.
type Bundle struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	PackageIDs   []string           `json:"packageIds" bson:"packageIds"`
	Price        float64            `json:"price" bson:"price"`
	Currency     string             `json:"currency" bson:"currency"`
	DurationDays int                `json:"durationDays" bson:"durationDays"`
}
