package repository

import (
	"context"

	"autofin/internal/domain/car"
	"autofin/internal/infra"
	"autofin/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CarRepository struct {
	pool *pgxpool.Pool
}

func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

func (r *CarRepository) FindAll(ctx context.Context) ([]car.Car, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, brand, model, year, price, mileage
FROM cars
ORDER BY id
`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	var cars []car.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan car", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cars", err)
	}
	return cars, nil
}

func (r *CarRepository) FindByID(ctx context.Context, id int32) (*car.Car, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, brand, model, year, price, mileage
FROM cars
WHERE id = $1
`, id)

	c, err := scanCar(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by id", err)
	}
	return &c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// The catalog stores mileage in miles; distance leaves this layer in km.
func scanCar(row rowScanner) (car.Car, error) {
	var c car.Car
	var mileage float64
	if err := row.Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Price, &mileage); err != nil {
		return car.Car{}, err
	}
	c.Kms = car.MilesToKms(mileage)
	return c, nil
}
