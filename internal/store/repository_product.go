package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/migrations"
	"github.com/MKhiriev/buy-from-me/models"
)

// productRepository is the SQL implementation of [ProductRepository] over
// the "products" table.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct inserts product as given; the caller computes the discount.
// An unknown business yields [ErrBusinessNotFound].
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if product.Image == "" {
		product.Image = models.DefaultProductImage
	}
	if product.DatePublished.IsZero() {
		product.DatePublished = time.Now().UTC()
	}

	query, args, err := r.db.builder().
		Insert("products").
		Columns(productColumns[1:]...).
		Values(
			product.Name,
			product.Category,
			product.OriginalPrice,
			product.NewPrice,
			product.PercentageDiscount,
			product.OfferExpirationDate,
			product.Image,
			product.DatePublished,
			product.BusinessID,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&product.ID); err != nil {
		if r.db.isForeignKeyViolation(err) {
			return models.Product{}, ErrBusinessNotFound
		}
		log.Err(err).
			Str("func", "*productRepository.CreateProduct").
			Int64("business_id", product.BusinessID).
			Msg("error inserting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return product, nil
}

// FindProductByID returns the product with id or [ErrProductNotFound].
func (r *productRepository) FindProductByID(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectProducts().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	product, err := scanProduct(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		err = noRows(err, ErrProductNotFound)
		if err != ErrProductNotFound {
			log.Err(err).Str("func", "*productRepository.FindProductByID").Int64("product_id", id).Msg("error finding product")
		}
		return models.Product{}, err
	}

	return product, nil
}

// ListProducts returns products ordered by id. A zero page.Limit returns all
// of them.
func (r *productRepository) ListProducts(ctx context.Context, page models.Page) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	builder := r.db.selectProducts().OrderBy("id")
	if page.Limit > 0 {
		builder = builder.Limit(page.Limit)
	}
	if page.Offset > 0 {
		if page.Limit == 0 && r.db.dialect != migrations.Postgres {
			// sqlite only accepts OFFSET after a LIMIT clause
			builder = builder.Limit(1<<63 - 1)
		}
		builder = builder.Offset(page.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to execute query for listing products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 50)
	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*productRepository.ListProducts").Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		products = append(products, product)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*productRepository.ListProducts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return products, nil
}

// UpdateProduct overwrites every mutable column of product. The image and
// the owning business are left untouched.
func (r *productRepository) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update("products").
		SetMap(map[string]any{
			"name":                  product.Name,
			"category":              product.Category,
			"original_price":        product.OriginalPrice,
			"new_price":             product.NewPrice,
			"percentage_discount":   product.PercentageDiscount,
			"offer_expiration_date": product.OfferExpirationDate,
			"date_published":        product.DatePublished,
		}).
		Where(sq.Eq{"id": product.ID}).
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		if err != ErrProductNotFound {
			log.Err(err).Str("func", "*productRepository.UpdateProduct").Int64("product_id", product.ID).Msg("error updating product")
		}
		return models.Product{}, err
	}

	return r.FindProductByID(ctx, product.ID)
}

func (r *productRepository) UpdateProductImage(ctx context.Context, id int64, image string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update("products").
		Set("product_image", image).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		if err != ErrProductNotFound {
			log.Err(err).Str("func", "*productRepository.UpdateProductImage").Int64("product_id", id).Msg("error updating product image")
		}
		return err
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		if err != ErrProductNotFound {
			log.Err(err).Str("func", "*productRepository.DeleteProduct").Int64("product_id", id).Msg("error deleting product")
		}
		return err
	}

	return nil
}

func (r *productRepository) execAffectingOne(ctx context.Context, query string, args []any) error {
	result, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func scanProduct(row scanner) (models.Product, error) {
	var (
		product        models.Product
		offerExpiresAt sql.NullTime
	)
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.OriginalPrice,
		&product.NewPrice,
		&product.PercentageDiscount,
		&offerExpiresAt,
		&product.Image,
		&product.DatePublished,
		&product.BusinessID,
	)
	if offerExpiresAt.Valid {
		product.OfferExpirationDate = &offerExpiresAt.Time
	}
	return product, err
}
