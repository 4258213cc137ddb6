package postgres

import (
	"context"

	"wayfarer/internal/domain/entity"
	domainerrors "wayfarer/internal/domain/errors"
	"wayfarer/internal/domain/repository"
	"wayfarer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shareRepository implements the repository.ShareRepository interface.
type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository is the constructor for shareRepository.
func NewShareRepository(db *gorm.DB) repository.ShareRepository {
	return &shareRepository{
		db: db,
	}
}

// Create persists a new share.
func (repo *shareRepository) Create(ctx context.Context, share *entity.JourneyShare) error {
	shareM := fromShareDomain(share)

	if err := repo.db.WithContext(ctx).Create(shareM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateShare
		}
		// The referenced journey was deleted between check and insert.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrJourneyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create share")
	}

	share.ID = shareM.ID
	share.SharedAt = shareM.SharedAt

	return nil
}

// FindActiveByJourneyAndReceiver retrieves the non-revoked share for the
// given journey and receiving user, if one exists.
func (repo *shareRepository) FindActiveByJourneyAndReceiver(ctx context.Context, journeyID, receivingUserID uuid.UUID) (*entity.JourneyShare, error) {
	var shareM model.JourneyShareModel

	if err := repo.db.WithContext(ctx).
		Where("journey_id = ? AND receiving_user_id = ? AND is_revoked = ?", journeyID, receivingUserID, false).
		First(&shareM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShareNotFound
		}

		return nil, errors.Wrap(err, "failed to find active share by journey and receiver")
	}

	return toShareDomain(&shareM), nil
}

// FindByJourney retrieves all shares of a journey.
func (repo *shareRepository) FindByJourney(ctx context.Context, journeyID uuid.UUID) ([]*entity.JourneyShare, error) {
	var shareModels []*model.JourneyShareModel

	if err := repo.db.WithContext(ctx).
		Where("journey_id = ?", journeyID).
		Order("shared_at ASC").
		Find(&shareModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shares by journey")
	}

	shares := make([]*entity.JourneyShare, 0, len(shareModels))
	for _, shareM := range shareModels {
		shares = append(shares, toShareDomain(shareM))
	}

	return shares, nil
}

// DeleteByJourney removes all shares belonging to a journey.
func (repo *shareRepository) DeleteByJourney(ctx context.Context, journeyID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("journey_id = ?", journeyID).
		Delete(&model.JourneyShareModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete shares by journey")
	}

	return nil
}

// --- Mapper Functions ---

func toShareDomain(data *model.JourneyShareModel) *entity.JourneyShare {
	if data == nil {
		return nil
	}

	return &entity.JourneyShare{
		ID:              data.ID,
		JourneyID:       data.JourneyID,
		SharedByUserID:  data.SharedByUserID,
		ReceivingUserID: data.ReceivingUserID,
		SharedAt:        data.SharedAt,
		IsRevoked:       data.IsRevoked,
	}
}

func fromShareDomain(data *entity.JourneyShare) *model.JourneyShareModel {
	if data == nil {
		return nil
	}

	return &model.JourneyShareModel{
		ID:              data.ID,
		JourneyID:       data.JourneyID,
		SharedByUserID:  data.SharedByUserID,
		ReceivingUserID: data.ReceivingUserID,
		SharedAt:        data.SharedAt,
		IsRevoked:       data.IsRevoked,
	}
}
