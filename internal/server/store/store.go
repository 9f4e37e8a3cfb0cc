// Package store persists the settings document for the dev stub backend.
// A single document lives in a sqlite key/value table: scalar fields as
// text, mapping fields as JSON blobs.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"watchtune/internal/constants"
	"watchtune/internal/models"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}

	// Seed a default document if none is present yet
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to seed default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.FieldAbsenceThreshold:
			if _, err := fmt.Sscanf(value, "%d", &settings.AbsenceThreshold); err != nil {
				return models.Settings{}, fmt.Errorf("parsing absence_threshold: %w", err)
			}
		case constants.FieldSmartphoneThreshold:
			if _, err := fmt.Sscanf(value, "%d", &settings.SmartphoneThreshold); err != nil {
				return models.Settings{}, fmt.Errorf("parsing smartphone_threshold: %w", err)
			}
		case constants.FieldMessageExtensions:
			if err := json.Unmarshal([]byte(value), &settings.MessageExtensions); err != nil {
				return models.Settings{}, fmt.Errorf("parsing message_extensions: %w", err)
			}
		case constants.FieldLandmarkSettings:
			if err := json.Unmarshal([]byte(value), &settings.LandmarkSettings); err != nil {
				return models.Settings{}, fmt.Errorf("parsing landmark_settings: %w", err)
			}
		case constants.FieldDetectionObjects:
			if err := json.Unmarshal([]byte(value), &settings.DetectionObjects); err != nil {
				return models.Settings{}, fmt.Errorf("parsing detection_objects: %w", err)
			}
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(constants.FieldAbsenceThreshold, fmt.Sprintf("%d", settings.AbsenceThreshold)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.FieldSmartphoneThreshold, fmt.Sprintf("%d", settings.SmartphoneThreshold)); err != nil {
		return err
	}

	for _, field := range []struct {
		key   string
		value interface{}
	}{
		{constants.FieldMessageExtensions, settings.MessageExtensions},
		{constants.FieldLandmarkSettings, settings.LandmarkSettings},
		{constants.FieldDetectionObjects, settings.DetectionObjects},
	} {
		blob, err := json.Marshal(field.value)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", field.key, err)
		}
		if _, err := stmt.Exec(field.key, string(blob)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DefaultSettings is the document a fresh dev backend starts with. It
// mirrors the monitoring pipeline's shipped configuration.
func DefaultSettings() models.Settings {
	return models.Settings{
		AbsenceThreshold:    constants.DefaultAbsenceThresholdSec,
		SmartphoneThreshold: constants.DefaultSmartphoneThresholdSec,
		MessageExtensions: map[string]int{
			"休憩中":  300,
			"会議中":  600,
			"離席許可": 900,
		},
		LandmarkSettings: map[string]models.Landmark{
			"nose":      {Enabled: true, Name: "鼻"},
			"left_eye":  {Enabled: true, Name: "左目"},
			"right_eye": {Enabled: true, Name: "右目"},
			"mouth":     {Enabled: false, Name: "口"},
		},
		DetectionObjects: map[string]models.DetectionObject{
			"person": {
				Enabled:             true,
				Name:                "人物",
				ConfidenceThreshold: constants.DefaultConfidenceThreshold,
				AlertThreshold:      constants.DefaultAlertThresholdSec,
			},
			"cell_phone": {
				Enabled:             true,
				Name:                "スマートフォン",
				ConfidenceThreshold: 0.7,
				AlertThreshold:      5,
			},
		},
	}
}
