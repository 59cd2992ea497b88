package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task represents a single card on the board. Status holds the column
// (swimlane) the card currently sits in and is a free-form label.
type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Image     string             `bson:"image" json:"image"`
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Title  string `json:"title"`
	Status string `json:"status"`
	Image  string `json:"image"`
}

// CreateTaskResponse carries the identifier of a newly inserted task.
type CreateTaskResponse struct {
	ID string `json:"id"`
}

// UpdateStatusRequest represents a task status change request.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
