package models

import "time"

// MarketPrice is a reference price row keyed by product name and region.
// These rows are displayed verbatim and are not subject to catalog filtering.
type MarketPrice struct {
	ID          string    `db:"id" json:"id"`
	ProductName string    `db:"product_name" json:"productName"`
	Region      string    `db:"region" json:"region"`
	Price       float64   `db:"price" json:"price"`
	Unit        string    `db:"unit" json:"unit"`
	RecordedAt  time.Time `db:"recorded_at" json:"recordedAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
