package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"empleos-scraper/internal/domain"
)

// Migrate brings the schema up to the current version. Versioning goes
// through PRAGMA user_version so reruns are cheap no-ops.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  featured_image TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL DEFAULT '',
  featured INTEGER NOT NULL DEFAULT 0,
  filled INTEGER NOT NULL DEFAULT 0,
  urgent INTEGER NOT NULL DEFAULT 0,
  description TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  job_type TEXT NOT NULL DEFAULT '',
  tag TEXT NOT NULL DEFAULT '',
  expiry_date TEXT NOT NULL DEFAULT '',
  gender TEXT NOT NULL DEFAULT '',
  apply_type TEXT NOT NULL DEFAULT '',
  apply_url TEXT NOT NULL,
  apply_email TEXT NOT NULL DEFAULT '',
  salary_type TEXT NOT NULL DEFAULT '',
  salary TEXT NOT NULL DEFAULT '',
  max_salary TEXT NOT NULL DEFAULT '',
  experience TEXT NOT NULL DEFAULT '',
  career_level TEXT NOT NULL DEFAULT '',
  qualification TEXT NOT NULL DEFAULT '',
  video_url TEXT NOT NULL DEFAULT '',
  photos TEXT NOT NULL DEFAULT '',
  deadline_date TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  map_location TEXT NOT NULL DEFAULT '',
  fetched_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_jobs_apply_url
ON jobs(apply_url);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// InsertIfNew stores rec unless a record with the same apply URL already
// exists. Returns whether a row was added.
func InsertIfNew(ctx context.Context, db *sql.DB, rec domain.JobRecord) (bool, error) {
	if rec.ApplyURL == "" {
		return false, errors.New("missing apply url")
	}

	res, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs(
  featured_image, title, featured, filled, urgent,
  description, category, job_type, tag, expiry_date,
  gender, apply_type, apply_url, apply_email, salary_type,
  salary, max_salary, experience, career_level, qualification,
  video_url, photos, deadline_date, address, location, map_location,
  fetched_at
) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?);`,
		rec.FeaturedImage, rec.Title, rec.Featured, rec.Filled, rec.Urgent,
		rec.Description, rec.Category, rec.Type, rec.Tag, rec.ExpiryDate,
		rec.Gender, rec.ApplyType, rec.ApplyURL, rec.ApplyEmail, rec.SalaryType,
		rec.Salary, rec.MaxSalary, rec.Experience, rec.CareerLevel, rec.Qualification,
		rec.VideoURL, rec.Photos, rec.DeadlineDate, rec.Address, rec.Location, rec.MapLocation,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ListAll returns every stored record in insertion order, which keeps the
// exported files stable across incremental updates.
func ListAll(ctx context.Context, db *sql.DB) ([]domain.JobRecord, error) {
	rows, err := db.QueryContext(ctx, `
SELECT
  featured_image, title, featured, filled, urgent,
  description, category, job_type, tag, expiry_date,
  gender, apply_type, apply_url, apply_email, salary_type,
  salary, max_salary, experience, career_level, qualification,
  video_url, photos, deadline_date, address, location, map_location
FROM jobs
ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JobRecord
	for rows.Next() {
		var r domain.JobRecord
		if err := rows.Scan(
			&r.FeaturedImage, &r.Title, &r.Featured, &r.Filled, &r.Urgent,
			&r.Description, &r.Category, &r.Type, &r.Tag, &r.ExpiryDate,
			&r.Gender, &r.ApplyType, &r.ApplyURL, &r.ApplyEmail, &r.SalaryType,
			&r.Salary, &r.MaxSalary, &r.Experience, &r.CareerLevel, &r.Qualification,
			&r.VideoURL, &r.Photos, &r.DeadlineDate, &r.Address, &r.Location, &r.MapLocation,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of stored records.
func Count(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&n)
	return n, err
}
