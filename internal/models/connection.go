package models

import "gorm.io/gorm"

const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
	ConnectionRejected = "rejected"
)

// Connection links a coach and a trainee. Plans can only be assigned
// across an accepted connection.
type Connection struct {
	gorm.Model
	CoachID     uint   `gorm:"uniqueIndex:idx_coach_trainee" json:"coach_id"`
	Coach       User   `gorm:"foreignKey:CoachID" json:"-"`
	TraineeID   uint   `gorm:"uniqueIndex:idx_coach_trainee" json:"trainee_id"`
	Trainee     User   `gorm:"foreignKey:TraineeID" json:"-"`
	Status      string `gorm:"default:pending" json:"status"`
	RequestedBy uint   `json:"requested_by"`
	Message     string `json:"message"`
}
