package sqlite

import (
	"context"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
)

type verificationsRepo struct {
	db dbtx
}

func (r *verificationsRepo) CreateVerification(ctx context.Context, v domain.Verification) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO verifications (id, identifier, value, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		v.ID, v.Identifier, v.Value, v.ExpiresAt, now, now,
	)
	return err
}

func (r *verificationsRepo) GetVerification(
	ctx context.Context,
	identifier, value string,
) (domain.Verification, error) {
	var v domain.Verification
	err := r.db.QueryRowContext(ctx, `
		SELECT id, identifier, value, expires_at, created_at, updated_at
		FROM verifications WHERE identifier = ? AND value = ?`,
		identifier, value,
	).Scan(&v.ID, &v.Identifier, &v.Value, &v.ExpiresAt, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return domain.Verification{}, mapNotFound(err)
	}
	return v, nil
}

func (r *verificationsRepo) DeleteVerification(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM verifications WHERE id = ?`, id)
	return err
}

func (r *verificationsRepo) DeleteExpiredVerifications(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM verifications WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
