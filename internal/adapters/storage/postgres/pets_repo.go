package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pawfam-api/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, owner_user_id, category, breed, name, age, created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.OwnerUserID,
		string(p.Category),
		p.Breed,
		p.Name,
		p.Age,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return mapErr(err)
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			category = $2,
			breed = $3,
			name = $4,
			age = $5,
			updated_at = $6
		WHERE id = $1
	`,
		p.ID,
		string(p.Category),
		p.Breed,
		p.Name,
		p.Age,
		p.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, mapErr(err)
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []pets.Pet{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var category string
	if err := s.Scan(
		&p.ID,
		&p.OwnerUserID,
		&category,
		&p.Breed,
		&p.Name,
		&p.Age,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Category = pets.Category(category)
	return p, nil
}
