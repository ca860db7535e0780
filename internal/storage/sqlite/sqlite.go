// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver. It is fast enough for most projects and trivial to set up.
//
// STORAGE ENCODING:
// courses_offered is a JSON array on the wire but a single TEXT column
// here, comma-joined. Splitting happens on the way out, so the rest of
// the application only ever sees []string.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/traini8/training-center-api/internal/config"
	"github.com/traini8/training-center-api/internal/storage"
	"github.com/traini8/training-center-api/internal/types"

	// Registers the "sqlite3" driver with database/sql. We also reference
	// the package directly below to classify constraint errors.
	"github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at the path specified in cfg.StoragePath,
// creates the training_centers table if it does not already exist, and
// returns a ready-to-use *SQLite.
//
// Naming convention: New() acts as a constructor. Go has no constructors,
// so the community convention is a package-level New() function that
// returns an initialised instance (and an error as the second value).
func New(cfg *config.Config) (*SQLite, error) {
	// sql.Open does NOT open a real connection yet — it just validates
	// the driver name and data source name (DSN).
	// The first actual connection happens on the first query.
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe to run on every
	// startup. center_code carries a UNIQUE constraint so duplicates are
	// rejected at the database level even if two requests race past the
	// pre-insert lookup in CreateTrainingCenter.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS training_centers (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			center_name      TEXT    NOT NULL,
			center_code      TEXT    NOT NULL UNIQUE,
			detailed_address TEXT    NOT NULL,
			city             TEXT    NOT NULL,
			state            TEXT    NOT NULL,
			pincode          TEXT    NOT NULL,
			student_capacity INTEGER,
			courses_offered  TEXT,
			created_on       INTEGER NOT NULL,
			contact_email    TEXT,
			contact_phone    TEXT    NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateTrainingCenter inserts a new row, stamping created_on with the
// current Unix time, and returns the record exactly as stored.
//
// Duplicate center_code values surface as storage.ErrCenterCodeExists,
// whether caught by the pre-insert lookup or by the UNIQUE constraint.
//
// Prepared statements use placeholders (?): the driver sends query and
// values separately, so user input is never interpreted as SQL syntax.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) CreateTrainingCenter(center types.TrainingCenter) (types.TrainingCenter, error) {
	// Cheap lookup first so the common duplicate case produces a clean
	// sentinel error instead of a driver-specific constraint failure.
	var existing int64
	err := s.Db.QueryRow(
		"SELECT id FROM training_centers WHERE center_code = ? LIMIT 1",
		center.CenterCode,
	).Scan(&existing)
	if err == nil {
		return types.TrainingCenter{}, storage.ErrCenterCodeExists
	}
	if err != sql.ErrNoRows {
		return types.TrainingCenter{}, fmt.Errorf("CreateTrainingCenter: lookup code: %w", err)
	}

	stmt, err := s.Db.Prepare(`
		INSERT INTO training_centers (
			center_name, center_code,
			detailed_address, city, state, pincode,
			student_capacity, courses_offered, created_on,
			contact_email, contact_phone
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return types.TrainingCenter{}, fmt.Errorf("CreateTrainingCenter: prepare: %w", err)
	}
	// defer ensures the statement is closed when this function returns,
	// even if we return early due to an error. Prevents resource leaks.
	defer stmt.Close()

	center.CreatedOn = time.Now().Unix()

	// Exec substitutes the ? placeholders in the same order the
	// arguments are listed here. Order matters!
	result, err := stmt.Exec(
		center.CenterName,
		center.CenterCode,
		center.Address.DetailedAddress,
		center.Address.City,
		center.Address.State,
		center.Address.Pincode,
		center.StudentCapacity,
		strings.Join(center.CoursesOffered, ","),
		center.CreatedOn,
		center.ContactEmail,
		center.ContactPhone,
	)
	if err != nil {
		// Two requests can race past the lookup above; the UNIQUE
		// constraint is the backstop. Map that case to the same sentinel.
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) &&
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return types.TrainingCenter{}, storage.ErrCenterCodeExists
		}
		return types.TrainingCenter{}, fmt.Errorf("CreateTrainingCenter: exec: %w", err)
	}

	// LastInsertId returns the auto-generated primary key of the new row.
	lastID, err := result.LastInsertId()
	if err != nil {
		return types.TrainingCenter{}, fmt.Errorf("CreateTrainingCenter: last insert id: %w", err)
	}

	center.ID = lastID
	if center.CoursesOffered == nil {
		center.CoursesOffered = make([]string, 0)
	}

	return center, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetTrainingCenters returns all rows matching the filter as a slice.
//
// The WHERE clause is assembled from the non-empty filter fields, each an
// exact match, combined with AND. Values always travel through ?
// placeholders — only the fixed column names are concatenated.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetTrainingCenters(filter storage.ListFilter) ([]types.TrainingCenter, error) {
	// Explicitly list columns — never use SELECT * in production code.
	// If a column is added later, SELECT * would break Scan's ordering.
	query := `SELECT id, center_name, center_code,
		detailed_address, city, state, pincode,
		student_capacity, courses_offered, created_on,
		contact_email, contact_phone
	FROM training_centers`

	var (
		clauses []string
		args    []any
	)
	if filter.City != "" {
		clauses = append(clauses, "city = ?")
		args = append(args, filter.City)
	}
	if filter.State != "" {
		clauses = append(clauses, "state = ?")
		args = append(args, filter.State)
	}
	if filter.Pincode != "" {
		clauses = append(clauses, "pincode = ?")
		args = append(args, filter.Pincode)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	stmt, err := s.Db.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("GetTrainingCenters: prepare: %w", err)
	}
	defer stmt.Close()

	// Query (unlike QueryRow) returns *sql.Rows — a cursor over multiple
	// rows. Always defer rows.Close() to release the database connection.
	rows, err := stmt.Query(args...)
	if err != nil {
		return nil, fmt.Errorf("GetTrainingCenters: query: %w", err)
	}
	defer rows.Close()

	// Pre-allocate an empty (non-nil) slice.
	// Returning [] instead of null in JSON is better API behaviour.
	centers := make([]types.TrainingCenter, 0)

	for rows.Next() { // advances cursor; returns false when exhausted
		var (
			center  types.TrainingCenter
			courses string
		)

		if err := rows.Scan(
			&center.ID,
			&center.CenterName,
			&center.CenterCode,
			&center.Address.DetailedAddress,
			&center.Address.City,
			&center.Address.State,
			&center.Address.Pincode,
			&center.StudentCapacity,
			&courses,
			&center.CreatedOn,
			&center.ContactEmail,
			&center.ContactPhone,
		); err != nil {
			return nil, fmt.Errorf("GetTrainingCenters: scan row: %w", err)
		}

		center.CoursesOffered = splitCourses(courses)
		centers = append(centers, center)
	}

	// rows.Err() captures any error that occurred during iteration.
	// This is separate from Scan errors.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetTrainingCenters: rows iteration: %w", err)
	}

	return centers, nil
}

// splitCourses reverses the comma-join storage encoding.
// strings.Split("") would yield [""], so the empty column is special-cased
// to keep "no courses" as an empty JSON array.
func splitCourses(stored string) []string {
	if stored == "" {
		return make([]string, 0)
	}
	return strings.Split(stored, ",")
}
