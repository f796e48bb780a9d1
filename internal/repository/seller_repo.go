package repository

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/harvestlink/harvest_api/internal/models"
)

// SellerRepository handles read access to seller profiles. The discovery
// core treats the directory as an external collaborator; only profile
// management (out of scope here) writes to it.
type SellerRepository struct {
	db *sqlx.DB
}

// NewSellerRepository creates a new SellerRepository.
func NewSellerRepository(db *sqlx.DB) *SellerRepository {
	return &SellerRepository{db: db}
}

type sellerRow struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	BusinessName    string          `db:"business_name"`
	Lat             sql.NullFloat64 `db:"lat"`
	Lng             sql.NullFloat64 `db:"lng"`
	Address         string          `db:"address"`
	Email           string          `db:"email"`
	Phone           string          `db:"phone"`
	ProfileImageURL string          `db:"profile_image_url"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (r sellerRow) toModel() models.Seller {
	s := models.Seller{
		ID:              r.ID,
		Name:            r.Name,
		BusinessName:    r.BusinessName,
		Location:        models.Location{Address: r.Address},
		Email:           r.Email,
		Phone:           r.Phone,
		ProfileImageURL: r.ProfileImageURL,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Lat.Valid && r.Lng.Valid {
		lat, lng := r.Lat.Float64, r.Lng.Float64
		s.Location.Lat = &lat
		s.Location.Lng = &lng
	}
	return s
}

// GetAll returns every seller profile in creation order.
func (r *SellerRepository) GetAll() ([]models.Seller, error) {
	const q = `SELECT * FROM sellers ORDER BY created_at, id`

	var rows []sellerRow
	if err := r.db.Select(&rows, q); err != nil {
		return nil, err
	}
	sellers := make([]models.Seller, 0, len(rows))
	for _, row := range rows {
		sellers = append(sellers, row.toModel())
	}
	return sellers, nil
}

// GetByID returns a single seller by id.
func (r *SellerRepository) GetByID(id string) (*models.Seller, error) {
	const q = `SELECT * FROM sellers WHERE id = $1 LIMIT 1`

	var row sellerRow
	if err := r.db.Get(&row, q, id); err != nil {
		return nil, err
	}
	s := row.toModel()
	return &s, nil
}
