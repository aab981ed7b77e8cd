package repository

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type ConnectionRepository interface {
	Create(connection *models.Connection) error
	FindByID(id uint) (*models.Connection, error)
	FindByPair(coachID, traineeID uint) (*models.Connection, error)
	FindForUser(userID uint) ([]models.Connection, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type connectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db}
}

func (r *connectionRepository) Create(connection *models.Connection) error {
	return r.db.Create(connection).Error
}

func (r *connectionRepository) FindByID(id uint) (*models.Connection, error) {
	var connection models.Connection
	err := r.db.First(&connection, id).Error
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

func (r *connectionRepository) FindByPair(coachID, traineeID uint) (*models.Connection, error) {
	var connection models.Connection
	err := r.db.Where("coach_id = ? AND trainee_id = ?", coachID, traineeID).First(&connection).Error
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

func (r *connectionRepository) FindForUser(userID uint) ([]models.Connection, error) {
	var connections []models.Connection
	err := r.db.Where("coach_id = ? OR trainee_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&connections).Error
	return connections, err
}

func (r *connectionRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Connection{}).Where("id = ?", id).Update("status", status).Error
}

func (r *connectionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Connection{}, id).Error
}
