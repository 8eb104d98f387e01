package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/repository/common"
)

// ProductRepository работает с товарами и пакетами услуг.
type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query, args := productListQuery(filter)
	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, apperror.Database(err, "failed to load products")
	}
	return products, nil
}

func productListQuery(filter models.ProductFilter) (string, []any) {
	var where common.Where
	if filter.CreativeID > 0 {
		where.Add("creative_id = ?", filter.CreativeID)
	}
	where.Search(filter.Search, "name")

	return `SELECT id, creative_id, name, description, price, stock, image_path, created_at FROM products` +
		where.SQL() + ` ORDER BY created_at DESC, id DESC`, where.Args()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := common.GetByID[models.Product](ctx, r.db, "products", id, apperror.ErrProductNotFound)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, apperror.Database(err, "failed to load product")
	}
	return product, err
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (creative_id, name, description, price, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, image_path, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, p.CreativeID, p.Name, p.Description, p.Price, p.Stock).
		Scan(&p.ID, &p.ImagePath, &p.CreatedAt)
	if err != nil {
		return classifyWriteError(err, "creative does not exist", "failed to create product")
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `UPDATE products SET name = $2, description = $3, price = $4, stock = $5 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.Price, p.Stock)
	if err != nil {
		return classifyWriteError(err, "", "failed to update product")
	}
	return requireAffected(res, apperror.ErrProductNotFound)
}

func (r *ProductRepository) SetImage(ctx context.Context, id int64, path string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE products SET image_path = $2 WHERE id = $1`, id, path)
	if err != nil {
		return apperror.Database(err, "failed to update product image")
	}
	return requireAffected(res, apperror.ErrProductNotFound)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperror.Database(err, "failed to delete product")
	}
	return requireAffected(res, apperror.ErrProductNotFound)
}

func (r *ProductRepository) ListPackages(ctx context.Context, creativeID int64) ([]models.ServicePackage, error) {
	var where common.Where
	if creativeID > 0 {
		where.Add("creative_id = ?", creativeID)
	}

	packages := []models.ServicePackage{}
	query := `SELECT id, creative_id, name, description, price, delivery_days, created_at FROM service_packages` +
		where.SQL() + ` ORDER BY id`
	if err := r.db.SelectContext(ctx, &packages, query, where.Args()...); err != nil {
		return nil, apperror.Database(err, "failed to load service packages")
	}
	return packages, nil
}

func (r *ProductRepository) CreatePackage(ctx context.Context, p *models.ServicePackage) error {
	query := `
		INSERT INTO service_packages (creative_id, name, description, price, delivery_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, p.CreativeID, p.Name, p.Description, p.Price, p.DeliveryDays).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return classifyWriteError(err, "creative does not exist", "failed to create service package")
	}
	return nil
}
