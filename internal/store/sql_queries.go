package store

import (
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{
		"id",
		"username",
		"email",
		"password",
		"is_verified",
		"join_date",
	}

	businessColumns = []string{
		"id",
		"business_name",
		"city",
		"region",
		"business_description",
		"logo",
		"owner_id",
	}

	productColumns = []string{
		"id",
		"name",
		"category",
		"original_price",
		"new_price",
		"percentage_discount",
		"offer_expiration_date",
		"product_image",
		"date_published",
		"business_id",
	}
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (db *DB) selectUsers() sq.SelectBuilder {
	return db.builder().Select(userColumns...).From("users")
}

func (db *DB) selectBusinesses() sq.SelectBuilder {
	return db.builder().Select(businessColumns...).From("businesses")
}

func (db *DB) selectProducts() sq.SelectBuilder {
	return db.builder().Select(productColumns...).From("products")
}
