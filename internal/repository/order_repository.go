package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/repository/common"
)

const orderSelect = `
	SELECT o.id, o.product_id, p.name AS product_name, o.client_id, o.quantity, o.total_price,
	       o.shipping_address, o.status, o.created_at
	FROM orders o
	JOIN products p ON p.id = o.product_id`

// OrderRepository хранит заказы товаров.
type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create считает total_price = price * quantity на стороне БД по текущей цене товара.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	query := `
		INSERT INTO orders (product_id, client_id, quantity, total_price, shipping_address, status)
		SELECT p.id, $2::bigint, $3::integer, p.price * $3::integer, $4::text, $5::text
		FROM products p WHERE p.id = $1
		RETURNING id
	`
	err := r.db.GetContext(ctx, &o.ID, query, o.ProductID, o.ClientID, o.Quantity, o.ShippingAddress, o.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrProductNotFound
		}
		return classifyWriteError(err, "client does not exist", "failed to create order")
	}
	stored, err := r.GetByID(ctx, o.ID)
	if err != nil {
		return err
	}
	*o = *stored
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	if err := r.db.GetContext(ctx, &o, orderSelect+` WHERE o.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrOrderNotFound
		}
		return nil, apperror.Database(err, "failed to load order")
	}
	return &o, nil
}

// List возвращает заказы от новых к старым.
func (r *OrderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	var where common.Where
	if filter.ClientID > 0 {
		where.Add("o.client_id = ?", filter.ClientID)
	}
	if filter.CreativeUserID > 0 {
		where.Add("p.creative_id IN (SELECT id FROM creative_profiles WHERE user_id = ?)", filter.CreativeUserID)
	}

	orders := []models.Order{}
	query := orderSelect + where.SQL() + ` ORDER BY o.created_at DESC, o.id DESC`
	if err := r.db.SelectContext(ctx, &orders, query, where.Args()...); err != nil {
		return nil, apperror.Database(err, "failed to load orders")
	}
	return orders, nil
}

// Update меняет только статус и адрес: total_price не пересчитывается.
func (r *OrderRepository) Update(ctx context.Context, o *models.Order) error {
	query := `UPDATE orders SET status = $2, shipping_address = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, o.ID, o.Status, o.ShippingAddress)
	if err != nil {
		return classifyWriteError(err, "", "failed to update order")
	}
	return requireAffected(res, apperror.ErrOrderNotFound)
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return apperror.Database(err, "failed to delete order")
	}
	return requireAffected(res, apperror.ErrOrderNotFound)
}
