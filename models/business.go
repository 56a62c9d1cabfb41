// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultBusinessLogo is the logo file assigned to every new business until
// the owner uploads one.
const DefaultBusinessLogo = "default.jpg"

// DefaultBusinessLocation is the city and region of a business whose owner
// has not filled them in yet.
const DefaultBusinessLocation = "Unspecified"

// Business is the storefront owned by exactly one user. It is provisioned in
// the same transaction as its owner.
type Business struct {
	ID          int64  `json:"id"`
	Name        string `json:"business_name"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Description string `json:"business_description"`
	Logo        string `json:"logo"`

	// OwnerID references the owning [User]. It is immutable after creation.
	OwnerID int64 `json:"owner_id"`
}

// TableName returns the name of the database table
// associated with the Business model.
func (b Business) TableName() string {
	return "businesses"
}

// BusinessUpdate carries the owner-editable descriptive fields of a business.
// Logo and owner are deliberately absent: the logo changes only through the
// image upload flow and the owner never changes.
type BusinessUpdate struct {
	Name        string `json:"business_name"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Description string `json:"business_description"`
}

// Apply copies the editable fields onto b and returns the result.
func (u BusinessUpdate) Apply(b Business) Business {
	b.Name = u.Name
	b.City = u.City
	b.Region = u.Region
	b.Description = u.Description
	return b
}

// BusinessDetails is the business block embedded into a single-product
// response, enriched with public owner information.
type BusinessDetails struct {
	Name        string `json:"business_name"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	OwnerID     int64  `json:"owner_id"`
	OwnerEmail  string `json:"owner_email"`
	JoinedDate  string `json:"joined_date"`
}
