package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vendormax/apiserver/types"
)

// ProductRepository handles persistence for products.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]types.Product, error) {
	const query = `
		SELECT id, name, description, vendor, category, quantity, price, serial_box, purchase_date, warranty_period, expiry_date
		FROM products
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]types.Product, 0)
	for rows.Next() {
		var product types.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Vendor,
			&product.Category,
			&product.Quantity,
			&product.Price,
			&product.SerialBox,
			&product.PurchaseDate,
			&product.WarrantyPeriod,
			&product.ExpiryDate,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id int) (types.Product, error) {
	const query = `
		SELECT id, name, description, vendor, category, quantity, price, serial_box, purchase_date, warranty_period, expiry_date
		FROM products
		WHERE id = $1`
	var product types.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Vendor,
		&product.Category,
		&product.Quantity,
		&product.Price,
		&product.SerialBox,
		&product.PurchaseDate,
		&product.WarrantyPeriod,
		&product.ExpiryDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Product{}, ErrNotFound
		}
		return types.Product{}, err
	}
	return product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product types.Product) (types.Product, error) {
	const query = `
		INSERT INTO products (name, description, vendor, category, quantity, price, serial_box, purchase_date, warranty_period, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Vendor,
		product.Category,
		product.Quantity,
		product.Price,
		product.SerialBox,
		product.PurchaseDate,
		product.WarrantyPeriod,
		product.ExpiryDate,
	).Scan(&product.ID); err != nil {
		return types.Product{}, err
	}
	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product types.Product) (types.Product, error) {
	const query = `
		UPDATE products
		SET name = $1,
			description = $2,
			vendor = $3,
			category = $4,
			quantity = $5,
			price = $6,
			serial_box = $7,
			purchase_date = $8,
			warranty_period = $9,
			expiry_date = $10
		WHERE id = $11`
	result, err := r.db.ExecContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Vendor,
		product.Category,
		product.Quantity,
		product.Price,
		product.SerialBox,
		product.PurchaseDate,
		product.WarrantyPeriod,
		product.ExpiryDate,
		product.ID,
	)
	if err != nil {
		return types.Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Product{}, err
	}
	if affected == 0 {
		return types.Product{}, ErrNotFound
	}
	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM products WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(1) FROM products`
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// ListPrices returns the raw price values of all products. Prices are kept
// as entered, so callers must filter out values that do not parse.
func (r *ProductRepository) ListPrices(ctx context.Context) ([]string, error) {
	const query = `SELECT price FROM products`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]string, 0)
	for rows.Next() {
		var price string
		if err := rows.Scan(&price); err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prices, nil
}
