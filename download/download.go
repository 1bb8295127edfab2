package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var outputDir string

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Save every uploaded playthrough in a folder per user",
	Long: "Connects to the database described by TETRIS1_DBUSER, " +
		"TETRIS1_DBPASSWORD, TETRIS1_DBADDR and TETRIS1_DBNAME and writes " +
		"each playthrough to <output>/<user>/<moment>.tetris1-<simulation>-<input>.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := ConnectToDbSql()
		if err != nil {
			return err
		}
		defer db.Close()
		n, err := DownloadRecordings(db, outputDir)
		if err != nil {
			return err
		}
		fmt.Printf("downloaded %s playthroughs\n", emph(n))
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&outputDir, "output", "o", ".",
		"folder which gets a subfolder for each user")
}

type dbRow struct {
	startMoment       time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

// recordingName is the path of a downloaded playthrough. The extension holds
// the simulation and input versions, which decide if the current code can
// still play it.
func recordingName(dir string, row dbRow) string {
	m := row.startMoment
	return filepath.Join(dir, row.user, fmt.Sprintf(
		"%d%02d%02d-%02d%02d%02d.tetris1-%d-%d", m.Year(), m.Month(),
		m.Day(), m.Hour(), m.Minute(), m.Second(), row.simulationVersion,
		row.inputVersion))
}

func DownloadRecordings(db *sql.DB, dir string) (int, error) {
	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM playthroughs")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var dbRows []dbRow
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.user, &row.releaseVersion,
			&row.simulationVersion, &row.inputVersion, &row.id, &row.data)
		if err != nil {
			return 0, err
		}
		dbRows = append(dbRows, row)
	}
	if err = rows.Err(); err != nil {
		return 0, err
	}

	for _, row := range dbRows {
		name := recordingName(dir, row)
		if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
			return 0, err
		}
		if err := os.WriteFile(name, row.data, 0644); err != nil {
			return 0, err
		}
	}
	return len(dbRows), nil
}

func ConnectToDbSql() (*sql.DB, error) {
	cfg := mysql.Config{
		User:                 os.Getenv("TETRIS1_DBUSER"),
		Passwd:               os.Getenv("TETRIS1_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("TETRIS1_DBADDR"),
		DBName:               os.Getenv("TETRIS1_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", cfg.Addr, err)
	}
	return db, nil
}
