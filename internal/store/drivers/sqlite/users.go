package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, email_verified, image, role,
	banned, ban_reason, ban_expires,
	tokens, streak, last_active_date, charity_contribution,
	base_purse, reward_purse, charity_purse, remorse_purse, wallet_display_mode,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var banExpires sql.NullTime

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.EmailVerified, &u.Image, &u.Role,
		&u.Banned, &u.BanReason, &banExpires,
		&u.Tokens, &u.Streak, &u.LastActiveDate, &u.CharityContribution,
		&u.BasePurse, &u.RewardPurse, &u.CharityPurse, &u.RemorsePurse, &u.WalletDisplayMode,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.BanExpires = mapNullTimePtr(banExpires)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, name, email, email_verified, image, role,
			banned, ban_reason, ban_expires,
			tokens, streak, last_active_date, charity_contribution,
			base_purse, reward_purse, charity_purse, remorse_purse, wallet_display_mode,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.EmailVerified, u.Image, u.Role,
		u.Banned, u.BanReason, mapOptionalTime(u.BanExpires),
		u.Tokens, u.Streak, u.LastActiveDate, u.CharityContribution,
		u.BasePurse, u.RewardPurse, u.CharityPurse, u.RemorsePurse, u.WalletDisplayMode,
		now, now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateRole(ctx context.Context, userID, role string) error {
	return r.exec(ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`,
		role, time.Now().UTC(), userID)
}

func (r *usersRepo) SetBan(
	ctx context.Context,
	userID string,
	banned bool,
	reason string,
	expires *time.Time,
) error {
	return r.exec(ctx, `
		UPDATE users
		SET banned = ?, ban_reason = ?, ban_expires = ?, updated_at = ?
		WHERE id = ?`,
		banned, reason, mapOptionalTime(expires), time.Now().UTC(), userID)
}

func (r *usersRepo) UpdateWallet(
	ctx context.Context,
	userID string,
	w domain.Wallet,
	tokens int64,
) error {
	return r.exec(ctx, `
		UPDATE users
		SET base_purse = ?, reward_purse = ?, charity_purse = ?, remorse_purse = ?,
			charity_contribution = ?, tokens = ?, updated_at = ?
		WHERE id = ?`,
		w.Base, w.Reward, w.Charity, w.Remorse,
		w.CharityContribution, tokens, time.Now().UTC(), userID)
}

func (r *usersRepo) UpdateStreak(
	ctx context.Context,
	userID string,
	streak int64,
	lastActiveDate string,
) error {
	return r.exec(ctx, `
		UPDATE users
		SET streak = ?, last_active_date = ?, updated_at = ?
		WHERE id = ?`,
		streak, lastActiveDate, time.Now().UTC(), userID)
}

func (r *usersRepo) SetWalletDisplayMode(ctx context.Context, userID, mode string) error {
	return r.exec(ctx,
		`UPDATE users SET wallet_display_mode = ?, updated_at = ? WHERE id = ?`,
		mode, time.Now().UTC(), userID)
}

func (r *usersRepo) SetEmailVerified(ctx context.Context, userID string) error {
	return r.exec(ctx,
		`UPDATE users SET email_verified = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// exec runs an update that must touch exactly one row; zero rows means the
// user id does not exist.
func (r *usersRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
