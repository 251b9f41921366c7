package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itzme170605/diabetes-prediction-app/internal/domain"
	"github.com/itzme170605/diabetes-prediction-app/pkg/pagination"
)

type SimulationRunRepository interface {
	Create(ctx context.Context, run *domain.SimulationRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SimulationRun, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, filter domain.SimulationRunFilter) ([]domain.SimulationRun, error)
}

type simulationRunRepository struct {
	db *gorm.DB
}

func NewSimulationRunRepository(db *gorm.DB) SimulationRunRepository {
	return &simulationRunRepository{db: db}
}

func (r *simulationRunRepository) Create(ctx context.Context, run *domain.SimulationRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *simulationRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SimulationRun, error) {
	var run domain.SimulationRun
	err := r.db.WithContext(ctx).First(&run, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &run, nil
}

func (r *simulationRunRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, filter domain.SimulationRunFilter) ([]domain.SimulationRun, error) {
	query := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: records strictly older than the cursor position
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	// fetch one extra row to detect whether more pages remain
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var runs []domain.SimulationRun
	if err := query.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
