package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"

	log_model "github.com/telartis/picqer-ontime/models/log"
	"github.com/telartis/picqer-ontime/types"
)

// FileSink appends one JSON line per entry to a file per day.
type FileSink struct {
	dir  string
	day  time.Time
	file *os.File
}

func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not create audit directory: %w", err)
	}
	return &FileSink{dir: dir}, nil
}

// FileName is the audit file holding entries created at t.
func (s *FileSink) FileName(t time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("audit_%s.log", t.Format("02-01-2006")))
}

func (s *FileSink) Write(entry types.LogEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.rotate(entry.CreatedAt); err != nil {
		return err
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("could not encode audit entry: %w", err)
	}
	_, err = s.file.Write(append(line, '\n'))
	return err
}

func (s *FileSink) rotate(t time.Time) error {
	day := now.With(t).BeginningOfDay()
	if s.file != nil && day.Equal(s.day) {
		return nil
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			Error("Failed to close audit file", err)
		}
	}
	file, err := os.OpenFile(s.FileName(t), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return fmt.Errorf("could not open audit file: %w", err)
	}
	s.day, s.file = day, file
	return nil
}

func (s *FileSink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// DBSink stores entries in the logs table.
type DBSink struct {
	db *gorm.DB
}

func NewDBSink(db *gorm.DB) *DBSink {
	return &DBSink{db: db}
}

func (s *DBSink) Write(entry types.LogEntry) error {
	dbLog := log_model.Log{
		TraceID:         entry.TraceID,
		Operation:       entry.Operation,
		Method:          entry.Method,
		URL:             entry.URL,
		RequestBody:     entry.RequestBody,
		ResponseBody:    entry.ResponseBody,
		CarrierRequest:  entry.CarrierRequest,
		CarrierResponse: entry.CarrierResponse,
		StatusCode:      entry.StatusCode,
		CreatedAt:       entry.CreatedAt,
	}
	if err := s.db.Create(&dbLog).Error; err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

func (s *DBSink) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
