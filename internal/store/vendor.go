package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vendormax/apiserver/types"
)

// VendorRepository handles persistence for vendors.
type VendorRepository struct {
	db *sql.DB
}

func NewVendorRepository(db *sql.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) List(ctx context.Context) ([]types.Vendor, error) {
	const query = `
		SELECT id, name, location, department, email, phone
		FROM vendors
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]types.Vendor, 0)
	for rows.Next() {
		var vendor types.Vendor
		if err := rows.Scan(
			&vendor.ID,
			&vendor.Name,
			&vendor.Location,
			&vendor.Department,
			&vendor.Email,
			&vendor.Phone,
		); err != nil {
			return nil, err
		}
		vendors = append(vendors, vendor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vendors, nil
}

func (r *VendorRepository) Get(ctx context.Context, id int) (types.Vendor, error) {
	const query = `
		SELECT id, name, location, department, email, phone
		FROM vendors
		WHERE id = $1`
	var vendor types.Vendor
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.Location,
		&vendor.Department,
		&vendor.Email,
		&vendor.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Vendor{}, ErrNotFound
		}
		return types.Vendor{}, err
	}
	return vendor, nil
}

func (r *VendorRepository) Create(ctx context.Context, vendor types.Vendor) (types.Vendor, error) {
	const query = `
		INSERT INTO vendors (name, location, department, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		vendor.Name,
		vendor.Location,
		vendor.Department,
		vendor.Email,
		vendor.Phone,
	).Scan(&vendor.ID); err != nil {
		if isUniqueViolation(err) {
			return types.Vendor{}, ErrConflict
		}
		return types.Vendor{}, err
	}
	return vendor, nil
}

func (r *VendorRepository) Update(ctx context.Context, vendor types.Vendor) (types.Vendor, error) {
	const query = `
		UPDATE vendors
		SET name = $1,
			location = $2,
			department = $3,
			email = $4,
			phone = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(
		ctx,
		query,
		vendor.Name,
		vendor.Location,
		vendor.Department,
		vendor.Email,
		vendor.Phone,
		vendor.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return types.Vendor{}, ErrConflict
		}
		return types.Vendor{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Vendor{}, err
	}
	if affected == 0 {
		return types.Vendor{}, ErrNotFound
	}
	return vendor, nil
}

func (r *VendorRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM vendors WHERE id = $1`
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

func (r *VendorRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(1) FROM vendors`
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
