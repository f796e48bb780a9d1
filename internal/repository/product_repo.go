package repository

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/harvestlink/harvest_api/internal/models"
)

// ProductRepository handles data access for catalog products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// productRow mirrors the products table. Location columns are flattened
// here and folded back into the nested model shape on conversion.
type productRow struct {
	ID          string          `db:"id"`
	SellerID    string          `db:"seller_id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Variety     string          `db:"variety"`
	Description string          `db:"description"`
	Price       float64         `db:"price"`
	Unit        string          `db:"unit"`
	Stock       int             `db:"stock"`
	Images      pq.StringArray  `db:"images"`
	Lat         sql.NullFloat64 `db:"lat"`
	Lng         sql.NullFloat64 `db:"lng"`
	Address     string          `db:"address"`
	HarvestDate *time.Time      `db:"harvest_date"`
	Condition   string          `db:"condition"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r productRow) toModel() models.Product {
	p := models.Product{
		ID:          r.ID,
		SellerID:    r.SellerID,
		Name:        r.Name,
		Category:    r.Category,
		Variety:     r.Variety,
		Description: r.Description,
		Price:       r.Price,
		Unit:        r.Unit,
		Stock:       r.Stock,
		Images:      []string(r.Images),
		Location:    models.Location{Address: r.Address},
		HarvestDate: r.HarvestDate,
		Condition:   models.Condition(r.Condition),
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Lat.Valid && r.Lng.Valid {
		lat, lng := r.Lat.Float64, r.Lng.Float64
		p.Location.Lat = &lat
		p.Location.Lng = &lng
	}
	return p
}

func toRows(rows []productRow) []models.Product {
	products := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, r.toModel())
	}
	return products
}

// GetAll returns the whole catalog, including inactive listings, in
// creation order. The discovery snapshot filters activity itself so that
// admin views and buyer views share one load path.
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	const q = `SELECT * FROM products ORDER BY created_at, id`

	var rows []productRow
	if err := r.db.Select(&rows, q); err != nil {
		return nil, err
	}
	return toRows(rows), nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`

	var row productRow
	if err := r.db.Get(&row, q, id); err != nil {
		return nil, err
	}
	p := row.toModel()
	return &p, nil
}

// Create inserts a new product and fills in the generated timestamps.
func (r *ProductRepository) Create(p *models.Product) error {
	const q = `
        INSERT INTO products (id, seller_id, name, category, variety, description,
            price, unit, stock, images, lat, lng, address, harvest_date, condition, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING created_at, updated_at`

	return r.db.QueryRowx(q,
		p.ID,
		p.SellerID,
		p.Name,
		p.Category,
		p.Variety,
		p.Description,
		p.Price,
		p.Unit,
		p.Stock,
		pq.Array(p.Images),
		p.Location.Lat,
		p.Location.Lng,
		p.Location.Address,
		p.HarvestDate,
		string(p.Condition),
		p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Update replaces every mutable column of an existing product and bumps
// updated_at. Partial patches are not supported; callers send the whole
// record.
func (r *ProductRepository) Update(p *models.Product) error {
	const q = `
        UPDATE products
        SET seller_id = $2, name = $3, category = $4, variety = $5, description = $6,
            price = $7, unit = $8, stock = $9, images = $10, lat = $11, lng = $12,
            address = $13, harvest_date = $14, condition = $15, is_active = $16,
            updated_at = NOW()
        WHERE id = $1
        RETURNING created_at, updated_at`

	return r.db.QueryRowx(q,
		p.ID,
		p.SellerID,
		p.Name,
		p.Category,
		p.Variety,
		p.Description,
		p.Price,
		p.Unit,
		p.Stock,
		pq.Array(p.Images),
		p.Location.Lat,
		p.Location.Lng,
		p.Location.Address,
		p.HarvestDate,
		string(p.Condition),
		p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Delete removes a product by id.
func (r *ProductRepository) Delete(id string) error {
	const q = `DELETE FROM products WHERE id = $1`
	res, err := r.db.Exec(q, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetDistinctCategories returns all categories present in the catalog.
func (r *ProductRepository) GetDistinctCategories() ([]string, error) {
	const q = `SELECT DISTINCT category FROM products WHERE category != '' ORDER BY category`
	var categories []string
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}
