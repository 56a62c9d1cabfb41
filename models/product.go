// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultProductImage is the image file assigned to a new product until the
// owner uploads one.
const DefaultProductImage = "productDefault.jpg"

// Product is an item offered by a [Business].
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	OriginalPrice float64 `json:"original_price"`
	NewPrice      float64 `json:"new_price"`

	// PercentageDiscount is derived from OriginalPrice and NewPrice and is
	// recomputed by [Product.RecomputeDiscount] on every create and update.
	PercentageDiscount float64 `json:"percentage_discount"`

	OfferExpirationDate *time.Time `json:"offer_expiration_date,omitempty"`
	Image               string     `json:"product_image"`
	DatePublished       time.Time  `json:"date_published"`

	// BusinessID references the owning [Business].
	BusinessID int64 `json:"business_id"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// RecomputeDiscount sets PercentageDiscount to
// (OriginalPrice - NewPrice) / OriginalPrice * 100.
// The field is left untouched when OriginalPrice is not positive.
func (p *Product) RecomputeDiscount() {
	if p.OriginalPrice <= 0 {
		return
	}
	p.PercentageDiscount = (p.OriginalPrice - p.NewPrice) / p.OriginalPrice * 100
}

// ProductInput is the JSON body accepted when creating or updating a product.
type ProductInput struct {
	Name                string     `json:"name"`
	Category            string     `json:"category"`
	OriginalPrice       float64    `json:"original_price"`
	NewPrice            float64    `json:"new_price"`
	OfferExpirationDate *time.Time `json:"offer_expiration_date,omitempty"`
}

// Apply copies the input onto p and recomputes the discount.
func (in ProductInput) Apply(p Product) Product {
	p.Name = in.Name
	p.Category = in.Category
	p.OriginalPrice = in.OriginalPrice
	p.NewPrice = in.NewPrice
	p.OfferExpirationDate = in.OfferExpirationDate
	p.RecomputeDiscount()
	return p
}

// ProductWithBusiness is the single-product view: the product plus the public
// details of the business selling it.
type ProductWithBusiness struct {
	Product  Product         `json:"product_details"`
	Business BusinessDetails `json:"business_details"`
}

// Page restricts list queries. A zero Limit means "no limit".
type Page struct {
	Limit  uint64
	Offset uint64
}
