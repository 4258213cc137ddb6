package postgres

import (
	"context"
	"time"

	"wayfarer/internal/domain/entity"
	domainerrors "wayfarer/internal/domain/errors"
	"wayfarer/internal/domain/repository"
	"wayfarer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// journeyRepository implements the repository.JourneyRepository interface.
type journeyRepository struct {
	db *gorm.DB
}

// NewJourneyRepository is the constructor for journeyRepository.
func NewJourneyRepository(db *gorm.DB) repository.JourneyRepository {
	return &journeyRepository{
		db: db,
	}
}

// Create persists a new journey.
func (repo *journeyRepository) Create(ctx context.Context, journey *entity.Journey) error {
	journeyM := fromJourneyDomain(journey)

	if err := repo.db.WithContext(ctx).Create(journeyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateJourney
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required journey information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create journey")
	}

	// Update the entity with generated values
	journey.ID = journeyM.ID

	return nil
}

// FindByID retrieves a journey by its unique ID.
func (repo *journeyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Journey, error) {
	var journeyM model.JourneyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&journeyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJourneyNotFound
		}

		return nil, errors.Wrap(err, "failed to find journey by ID")
	}

	return toJourneyDomain(&journeyM), nil
}

// FindByUserAndStartTime retrieves the journey a user recorded with the
// exact given start time, if any.
func (repo *journeyRepository) FindByUserAndStartTime(ctx context.Context, userID uuid.UUID, startTime time.Time) (*entity.Journey, error) {
	var journeyM model.JourneyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND start_time = ?", userID, startTime).
		First(&journeyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJourneyNotFound
		}

		return nil, errors.Wrap(err, "failed to find journey by user and start time")
	}

	return toJourneyDomain(&journeyM), nil
}

// FindByUser retrieves all journeys recorded by a user.
func (repo *journeyRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Journey, error) {
	var journeyModels []*model.JourneyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&journeyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find journeys by user")
	}

	return toJourneyDomainSlice(journeyModels), nil
}

// FindAll retrieves every journey ordered by start time.
func (repo *journeyRepository) FindAll(ctx context.Context) ([]*entity.Journey, error) {
	var journeyModels []*model.JourneyModel

	if err := repo.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&journeyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all journeys")
	}

	return toJourneyDomainSlice(journeyModels), nil
}

// FindForDate retrieves all journeys whose start time falls on the given
// UTC calendar day.
func (repo *journeyRepository) FindForDate(ctx context.Context, date time.Time) ([]*entity.Journey, error) {
	dayStart := date.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var journeyModels []*model.JourneyModel

	if err := repo.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Order("start_time ASC").
		Find(&journeyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find journeys for date")
	}

	return toJourneyDomainSlice(journeyModels), nil
}

// Update modifies an existing journey.
func (repo *journeyRepository) Update(ctx context.Context, journey *entity.Journey) error {
	journeyM := fromJourneyDomain(journey)

	result := repo.db.WithContext(ctx).
		Model(&model.JourneyModel{}).
		Where("id = ?", journeyM.ID).
		Updates(map[string]any{
			"starting_location":      journeyM.StartingLocation,
			"arrival_location":       journeyM.ArrivalLocation,
			"start_time":             journeyM.StartTime,
			"arrival_time":           journeyM.ArrivalTime,
			"transportation_type":    journeyM.TransportationType,
			"route_distance_km":      journeyM.RouteDistanceKm,
			"is_daily_goal_achieved": journeyM.IsDailyGoalAchieved,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateJourney
		}

		return errors.Wrap(result.Error, "failed to update journey")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJourneyNotFound
	}

	return nil
}

// Delete removes a journey by its ID.
func (repo *journeyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.JourneyModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete journey")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJourneyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toJourneyDomain converts a GORM JourneyModel to a domain Journey entity.
func toJourneyDomain(data *model.JourneyModel) *entity.Journey {
	if data == nil {
		return nil
	}

	return &entity.Journey{
		ID:                  data.ID,
		UserID:              data.UserID,
		StartingLocation:    data.StartingLocation,
		ArrivalLocation:     data.ArrivalLocation,
		StartTime:           data.StartTime,
		ArrivalTime:         data.ArrivalTime,
		TransportationType:  data.TransportationType,
		RouteDistanceKm:     data.RouteDistanceKm,
		IsDailyGoalAchieved: data.IsDailyGoalAchieved,
	}
}

func toJourneyDomainSlice(data []*model.JourneyModel) []*entity.Journey {
	journeys := make([]*entity.Journey, 0, len(data))
	for _, journeyM := range data {
		journeys = append(journeys, toJourneyDomain(journeyM))
	}

	return journeys
}

// fromJourneyDomain converts a domain Journey entity to a GORM JourneyModel.
func fromJourneyDomain(data *entity.Journey) *model.JourneyModel {
	if data == nil {
		return nil
	}

	return &model.JourneyModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		StartingLocation:    data.StartingLocation,
		ArrivalLocation:     data.ArrivalLocation,
		StartTime:           data.StartTime,
		ArrivalTime:         data.ArrivalTime,
		TransportationType:  data.TransportationType,
		RouteDistanceKm:     data.RouteDistanceKm,
		IsDailyGoalAchieved: data.IsDailyGoalAchieved,
	}
}
