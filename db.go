package pngcap

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// CaptureDB is the catalog of exported captures, keyed by the SHA-1 of the
// encoded PNG with the CRC of the originating dump alongside for scan
// skipping.
type CaptureDB struct {
	db *sql.DB
}

// NewCaptureDB opens, creating if necessary, the catalog at file.
func NewCaptureDB(file string) (*CaptureDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS capture (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, crc TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, thumb BLOB)"); err != nil {
		return nil, err
	}

	return &CaptureDB{
		db: db,
	}, nil
}

// Close closes the catalog.
func (db *CaptureDB) Close() error {
	return db.db.Close()
}

// Add records an exported capture, returning the existing row id if the
// same encoded file has been seen before.
func (db *CaptureDB) Add(sha string, crc uint32, width, height int, thumb []byte) (int64, error) {
	var id int64
	switch err := db.db.QueryRow("SELECT id FROM capture WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO capture (sha1, crc, width, height, thumb) VALUES (?, ?, ?, ?, ?)", sha, crcString(crc), width, height, thumb)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// FindByCRC returns the dimensions and thumbnail of the capture exported
// from the dump with the given CRC, or ok false if none is catalogued.
func (db *CaptureDB) FindByCRC(crc uint32) (width, height int, thumb []byte, ok bool, err error) {
	switch err := db.db.QueryRow("SELECT width, height, thumb FROM capture WHERE crc = ?", crcString(crc)).Scan(&width, &height, &thumb); err {
	case sql.ErrNoRows:
		return 0, 0, nil, false, nil
	case nil:
		return width, height, thumb, true, nil
	default:
		return 0, 0, nil, false, err
	}
}

func crcString(crc uint32) string {
	return fmt.Sprintf("%08X", crc)
}
