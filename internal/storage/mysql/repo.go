package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"puntosabor/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// UpsertRestaurant writes the restaurant and replaces its dishes atomically.
func (r *Repo) UpsertRestaurant(ctx context.Context, rs domain.Restaurant, position int) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var priceMin, priceMax any
	if rs.PriceRange != nil {
		priceMin, priceMax = rs.PriceRange.Min, rs.PriceRange.Max
	}
	if _, err = tx.ExecContext(ctx, upsertRestaurantSQL,
		rs.ID,
		position,
		rs.Name,
		rs.Specialty,
		rs.Address,
		rs.Phone,
		rs.UpTime,
		priceMin,
		priceMax,
		valStr(rs.Website),
		rs.Services.Delivery,
		rs.Services.TakeOut,
		rs.Services.Booking,
		rs.Services.Parking,
	); err != nil {
		return fmt.Errorf("upsert restaurant: %w", err)
	}

	if _, err = tx.ExecContext(ctx, deleteDishesSQL, rs.ID); err != nil {
		return fmt.Errorf("delete dishes: %w", err)
	}

	if len(rs.Dishes) > 0 {
		values := make([]string, 0, len(rs.Dishes))
		args := make([]any, 0, len(rs.Dishes)*7) // 7 params per row
		for i, d := range rs.Dishes {
			values = append(values, "(?,?,?,?,?,?,?)")
			args = append(args, rs.ID, d.ID, i, d.Name, d.Description, d.Price, d.Category)
		}
		if _, err = tx.ExecContext(ctx, insertDishesPrefix+strings.Join(values, ","), args...); err != nil {
			return fmt.Errorf("insert dishes: %w", err)
		}
	}

	return tx.Commit()
}

// PruneRestaurants deletes every restaurant not listed in keep; dishes go
// with them through the foreign key.
func (r *Repo) PruneRestaurants(ctx context.Context, keep []string) (int64, error) {
	q := "DELETE FROM restaurants"
	args := make([]any, 0, len(keep))
	if len(keep) > 0 {
		q += " WHERE id NOT IN (" + strings.TrimSuffix(strings.Repeat("?,", len(keep)), ",") + ")"
		for _, id := range keep {
			args = append(args, id)
		}
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Repo) RecordSyncRun(ctx context.Context, run domain.SyncRun) error {
	_, err := r.db.ExecContext(ctx, insertSyncRunSQL,
		run.ID,
		run.StartedAt,
		run.FinishedAt,
		run.Restaurants,
		run.Dishes,
		run.Pruned,
		run.Status,
		valStr(run.Error),
	)
	return err
}

func (r *Repo) GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error) {
	rs, err := scanRestaurant(r.db.QueryRowContext(ctx, getRestaurantSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Restaurant{}, domain.ErrNotFound
		}
		return domain.Restaurant{}, err
	}
	rows, err := r.db.QueryContext(ctx, listDishesByRestaurantSQL, id)
	if err != nil {
		return domain.Restaurant{}, err
	}
	rs.Dishes, err = scanDishes(rows)
	if err != nil {
		return domain.Restaurant{}, err
	}
	return rs, nil
}

func (r *Repo) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, listRestaurantsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Restaurant
	index := make(map[string]int)
	for rows.Next() {
		rs, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		index[rs.ID] = len(out)
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dishes, err := r.ListDishes(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range dishes {
		if i, ok := index[d.RestaurantID]; ok {
			out[i].Dishes = append(out[i].Dishes, d)
		}
	}
	return out, nil
}

func (r *Repo) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	rows, err := r.db.QueryContext(ctx, listDishesSQL)
	if err != nil {
		return nil, err
	}
	return scanDishes(rows)
}

type scanner interface{ Scan(dest ...any) error }

func scanRestaurant(s scanner) (domain.Restaurant, error) {
	var rs domain.Restaurant
	var priceMin, priceMax sql.NullInt64
	var website sql.NullString
	if err := s.Scan(
		&rs.ID, &rs.Name, &rs.Specialty, &rs.Address, &rs.Phone, &rs.UpTime,
		&priceMin, &priceMax, &website,
		&rs.Services.Delivery, &rs.Services.TakeOut, &rs.Services.Booking, &rs.Services.Parking,
	); err != nil {
		return domain.Restaurant{}, err
	}
	if priceMin.Valid && priceMax.Valid {
		rs.PriceRange = &domain.PriceRange{Min: priceMin.Int64, Max: priceMax.Int64}
	}
	if website.Valid {
		ws := website.String
		rs.Website = &ws
	}
	return rs, nil
}

// scanDishes drains and closes rows.
func scanDishes(rows *sql.Rows) ([]domain.Dish, error) {
	defer rows.Close()

	var out []domain.Dish
	for rows.Next() {
		var d domain.Dish
		if err := rows.Scan(
			&d.ID, &d.RestaurantID, &d.Name, &d.Description, &d.Price, &d.Category,
			&d.Restaurant.Name, &d.Restaurant.Specialty,
		); err != nil {
			return nil, err
		}
		d.Restaurant.ID = d.RestaurantID
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
