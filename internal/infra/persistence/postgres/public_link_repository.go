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

// publicLinkRepository implements the repository.PublicLinkRepository interface.
type publicLinkRepository struct {
	db *gorm.DB
}

// NewPublicLinkRepository is the constructor for publicLinkRepository.
func NewPublicLinkRepository(db *gorm.DB) repository.PublicLinkRepository {
	return &publicLinkRepository{
		db: db,
	}
}

// Create persists a new public link.
func (repo *publicLinkRepository) Create(ctx context.Context, link *entity.JourneyPublicLink) error {
	linkM := fromPublicLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePublicLink
		}
		// The referenced journey was deleted between check and insert.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrJourneyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create public link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

// FindByID retrieves a link by its unique ID.
func (repo *publicLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JourneyPublicLink, error) {
	var linkM model.JourneyPublicLinkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPublicLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find public link by ID")
	}

	return toPublicLinkDomain(&linkM), nil
}

// FindByToken retrieves a link by its opaque token, revoked or not.
func (repo *publicLinkRepository) FindByToken(ctx context.Context, token string) (*entity.JourneyPublicLink, error) {
	var linkM model.JourneyPublicLinkModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPublicLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find public link by token")
	}

	return toPublicLinkDomain(&linkM), nil
}

// FindActiveByJourney retrieves the non-revoked link for a journey, if one exists.
func (repo *publicLinkRepository) FindActiveByJourney(ctx context.Context, journeyID uuid.UUID) (*entity.JourneyPublicLink, error) {
	var linkM model.JourneyPublicLinkModel

	if err := repo.db.WithContext(ctx).
		Where("journey_id = ? AND is_revoked = ?", journeyID, false).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPublicLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find active public link by journey")
	}

	return toPublicLinkDomain(&linkM), nil
}

// FindLatestByJourney retrieves the most recently created link for a
// journey, revoked or not.
func (repo *publicLinkRepository) FindLatestByJourney(ctx context.Context, journeyID uuid.UUID) (*entity.JourneyPublicLink, error) {
	var linkM model.JourneyPublicLinkModel

	if err := repo.db.WithContext(ctx).
		Where("journey_id = ?", journeyID).
		Order("created_at DESC").
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPublicLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest public link by journey")
	}

	return toPublicLinkDomain(&linkM), nil
}

// Revoke flips the revoked flag with a conditional write. The WHERE clause
// only matches a not-yet-revoked row, so two concurrent revocations of the
// same link cannot both succeed.
func (repo *publicLinkRepository) Revoke(ctx context.Context, id uuid.UUID, revokedAt *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.JourneyPublicLinkModel{}).
		Where("id = ? AND is_revoked = ?", id, false).
		Updates(map[string]any{
			"is_revoked": true,
			"revoked_at": revokedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to revoke public link")
	}

	if result.RowsAffected == 0 {
		// Either the row is gone or it was already revoked.
		if _, err := repo.FindByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrPublicLinkRevoked
	}

	return nil
}

// DeleteByJourney removes all links belonging to a journey.
func (repo *publicLinkRepository) DeleteByJourney(ctx context.Context, journeyID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("journey_id = ?", journeyID).
		Delete(&model.JourneyPublicLinkModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete public links by journey")
	}

	return nil
}

// --- Mapper Functions ---

func toPublicLinkDomain(data *model.JourneyPublicLinkModel) *entity.JourneyPublicLink {
	if data == nil {
		return nil
	}

	return &entity.JourneyPublicLink{
		ID:        data.ID,
		JourneyID: data.JourneyID,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
		IsRevoked: data.IsRevoked,
		RevokedAt: data.RevokedAt,
	}
}

func fromPublicLinkDomain(data *entity.JourneyPublicLink) *model.JourneyPublicLinkModel {
	if data == nil {
		return nil
	}

	return &model.JourneyPublicLinkModel{
		ID:        data.ID,
		JourneyID: data.JourneyID,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
		IsRevoked: data.IsRevoked,
		RevokedAt: data.RevokedAt,
	}
}
