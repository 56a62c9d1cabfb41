package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/models"
)

// businessRepository is the SQL implementation of [BusinessRepository] over
// the "businesses" table.
type businessRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewBusinessRepository(db *DB, logger *logger.Logger) BusinessRepository {
	logger.Debug().Msg("creating business repository")
	return &businessRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBusiness inserts business and returns it with its id. A second
// business for the same owner yields [ErrBusinessAlreadyExists]; an unknown
// owner yields [ErrUserNotFound]. Empty logo, city and region get the
// same defaults as the table columns.
func (r *businessRepository) CreateBusiness(ctx context.Context, business models.Business) (models.Business, error) {
	log := logger.FromContext(ctx)

	if business.Logo == "" {
		business.Logo = models.DefaultBusinessLogo
	}
	if business.City == "" {
		business.City = models.DefaultBusinessLocation
	}
	if business.Region == "" {
		business.Region = models.DefaultBusinessLocation
	}

	query, args, err := r.db.builder().
		Insert("businesses").
		Columns("business_name", "city", "region", "business_description", "logo", "owner_id").
		Values(business.Name, business.City, business.Region, business.Description, business.Logo, business.OwnerID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Business{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&business.ID); err != nil {
		switch {
		case r.db.isUniqueViolation(err):
			return models.Business{}, ErrBusinessAlreadyExists
		case r.db.isForeignKeyViolation(err):
			return models.Business{}, ErrUserNotFound
		}
		log.Err(err).
			Str("func", "*businessRepository.CreateBusiness").
			Int64("owner_id", business.OwnerID).
			Msg("error inserting business")
		return models.Business{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return business, nil
}

func (r *businessRepository) FindBusinessByID(ctx context.Context, id int64) (models.Business, error) {
	return r.findBusiness(ctx, "*businessRepository.FindBusinessByID", sq.Eq{"id": id})
}

func (r *businessRepository) FindBusinessByOwnerID(ctx context.Context, ownerID int64) (models.Business, error) {
	return r.findBusiness(ctx, "*businessRepository.FindBusinessByOwnerID", sq.Eq{"owner_id": ownerID})
}

func (r *businessRepository) findBusiness(ctx context.Context, funcName string, where sq.Eq) (models.Business, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectBusinesses().Where(where).ToSql()
	if err != nil {
		return models.Business{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	business, err := scanBusiness(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		err = noRows(err, ErrBusinessNotFound)
		if err != ErrBusinessNotFound {
			log.Err(err).Str("func", funcName).Msg("error finding business")
		}
		return models.Business{}, err
	}

	return business, nil
}

// UpdateBusiness stores name, city, region and description of business.
func (r *businessRepository) UpdateBusiness(ctx context.Context, business models.Business) (models.Business, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update("businesses").
		SetMap(map[string]any{
			"business_name":        business.Name,
			"city":                 business.City,
			"region":               business.Region,
			"business_description": business.Description,
		}).
		Where(sq.Eq{"id": business.ID}).
		ToSql()
	if err != nil {
		return models.Business{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		if err != ErrBusinessNotFound {
			log.Err(err).Str("func", "*businessRepository.UpdateBusiness").Int64("business_id", business.ID).Msg("error updating business")
		}
		return models.Business{}, err
	}

	return r.FindBusinessByID(ctx, business.ID)
}

// UpdateBusinessLogo sets only the logo column.
func (r *businessRepository) UpdateBusinessLogo(ctx context.Context, id int64, logo string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update("businesses").
		Set("logo", logo).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		if err != ErrBusinessNotFound {
			log.Err(err).Str("func", "*businessRepository.UpdateBusinessLogo").Int64("business_id", id).Msg("error updating logo")
		}
		return err
	}

	return nil
}

func (r *businessRepository) execAffectingOne(ctx context.Context, query string, args []any) error {
	result, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

func scanBusiness(row scanner) (models.Business, error) {
	var business models.Business
	err := row.Scan(
		&business.ID,
		&business.Name,
		&business.City,
		&business.Region,
		&business.Description,
		&business.Logo,
		&business.OwnerID,
	)
	return business, err
}
