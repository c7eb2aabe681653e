package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pawfam-api/internal/domain/profiles"
)

type UserProfilesRepo struct {
	db *sql.DB
}

func NewUserProfilesRepo(db *sql.DB) *UserProfilesRepo {
	return &UserProfilesRepo{db: db}
}

func (r *UserProfilesRepo) Create(ctx context.Context, p profiles.UserProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (
			id, user_id, name, gender, mobile_number, residential_address,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.UserID,
		p.Name,
		p.Gender,
		p.MobileNumber,
		p.ResidentialAddress,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return mapErr(err)
}

func (r *UserProfilesRepo) GetByUser(ctx context.Context, userID string) (profiles.UserProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profiles.UserProfile{}, ErrNotFound
	}

	var p profiles.UserProfile
	err := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id, name, gender, mobile_number, residential_address,
			created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Gender,
		&p.MobileNumber,
		&p.ResidentialAddress,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return profiles.UserProfile{}, mapErr(err)
	}
	return p, nil
}

func (r *UserProfilesRepo) Update(ctx context.Context, p profiles.UserProfile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE user_profiles
		SET
			name = $2,
			gender = $3,
			mobile_number = $4,
			residential_address = $5,
			updated_at = $6
		WHERE user_id = $1
	`,
		p.UserID,
		p.Name,
		p.Gender,
		p.MobileNumber,
		p.ResidentialAddress,
		p.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *UserProfilesRepo) DeleteByUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

type VendorProfilesRepo struct {
	db *sql.DB
}

func NewVendorProfilesRepo(db *sql.DB) *VendorProfilesRepo {
	return &VendorProfilesRepo{db: db}
}

func (r *VendorProfilesRepo) Create(ctx context.Context, p profiles.VendorProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vendor_profiles (
			id, user_id, vendor_code, name, gender, mobile_number, communication_address,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.UserID,
		p.VendorID,
		p.Name,
		p.Gender,
		p.MobileNumber,
		p.CommunicationAddress,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return mapErr(err)
}

func (r *VendorProfilesRepo) GetByUser(ctx context.Context, userID string) (profiles.VendorProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profiles.VendorProfile{}, ErrNotFound
	}

	var p profiles.VendorProfile
	err := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id, vendor_code, name, gender, mobile_number, communication_address,
			created_at, updated_at
		FROM vendor_profiles
		WHERE user_id = $1
	`, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.VendorID,
		&p.Name,
		&p.Gender,
		&p.MobileNumber,
		&p.CommunicationAddress,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return profiles.VendorProfile{}, mapErr(err)
	}
	return p, nil
}

// vendor_code no se actualiza: se asigna una sola vez al crear.
func (r *VendorProfilesRepo) Update(ctx context.Context, p profiles.VendorProfile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vendor_profiles
		SET
			name = $2,
			gender = $3,
			mobile_number = $4,
			communication_address = $5,
			updated_at = $6
		WHERE user_id = $1
	`,
		p.UserID,
		p.Name,
		p.Gender,
		p.MobileNumber,
		p.CommunicationAddress,
		p.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *VendorProfilesRepo) DeleteByUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vendor_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *VendorProfilesRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vendor_profiles`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
