// Package storage keeps a history of scans in SQLite. Matched text is never
// written to disk: a finding is stored as its fingerprint, length and offset.
package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

const (
	StatusRunning   = "Running"
	StatusCompleted = "Completed"
	StatusFailed    = "Failed"

	FeedbackCorrect   = "Correct"
	FeedbackIncorrect = "Incorrect"
)

type ScanModel struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	RootPath      string         `json:"root_path"`
	Status        string         `json:"status"`
	StartTime     time.Time      `json:"start_time"`
	EndTime       time.Time      `json:"end_time"`
	Duration      time.Duration  `json:"duration"`
	TotalFiles    int64          `json:"total_files"`
	PIIFiles      int64          `json:"pii_files"`
	TotalFindings int64          `json:"total_findings"`
	Findings      []FindingModel `gorm:"foreignKey:ScanID" json:"findings,omitempty"`
}

type FindingModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ScanID      uint      `gorm:"index" json:"scan_id"`
	FilePath    string    `json:"file_path"`
	Field       string    `json:"field"`
	Type        string    `gorm:"index" json:"type"`
	Fingerprint string    `gorm:"index" json:"fingerprint"`
	Length      int       `json:"length"`
	Offset      int       `json:"offset"`
	Confidence  string    `json:"confidence"`
	Severity    string    `json:"severity"`
	Feedback    string    `json:"feedback"`
	CreatedAt   time.Time `json:"created_at"`
}

// Global DB instance
var DB *gorm.DB

func Init(path string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return DB.AutoMigrate(&ScanModel{}, &FindingModel{})
}

// Fingerprint hashes a match case-insensitively so the same name can be
// counted across documents without being stored.
func Fingerprint(match string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.ToLower(strings.TrimSpace(match))))
}

func CreateScan(rootPath string) (*ScanModel, error) {
	s := &ScanModel{
		RootPath:  rootPath,
		Status:    StatusRunning,
		StartTime: time.Now(),
	}
	res := DB.Create(s)
	return s, res.Error
}

func CompleteScan(s *ScanModel, totalFiles, piiFiles, totalFindings int64) error {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
	s.Status = StatusCompleted
	s.TotalFiles = totalFiles
	s.PIIFiles = piiFiles
	s.TotalFindings = totalFindings
	return DB.Model(s).Select("EndTime", "Duration", "Status", "TotalFiles", "PIIFiles", "TotalFindings").Updates(s).Error
}

func FailScan(s *ScanModel) error {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
	s.Status = StatusFailed
	return DB.Model(s).Select("EndTime", "Duration", "Status").Updates(s).Error
}

// SaveResult stores every finding of one document.
func SaveResult(scanID uint, doc models.DocumentResult) error {
	var rows []FindingModel
	now := time.Now()
	for field, res := range doc.Scan.Results {
		for _, f := range res.Warnings {
			rows = append(rows, FindingModel{
				ScanID:      scanID,
				FilePath:    doc.FilePath,
				Field:       field,
				Type:        string(f.Type),
				Fingerprint: Fingerprint(f.Match),
				Length:      len([]rune(f.Match)),
				Offset:      f.Offset,
				Confidence:  string(f.Confidence),
				Severity:    string(models.SeverityOf(f.Type)),
				CreatedAt:   now,
			})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return DB.CreateInBatches(rows, 100).Error
}

func GetAllScans() ([]ScanModel, error) {
	var scans []ScanModel
	err := DB.Order("start_time desc").Find(&scans).Error
	return scans, err
}

func GetScanByID(id uint) (*ScanModel, error) {
	var scan ScanModel
	err := DB.Preload("Findings").First(&scan, "id = ?", id).Error
	return &scan, err
}

// TypeCounts returns the number of stored findings per type for a scan.
func TypeCounts(scanID uint) (map[string]int64, error) {
	var rows []struct {
		Type  string
		Count int64
	}
	err := DB.Model(&FindingModel{}).
		Select("type, count(*) as count").
		Where("scan_id = ?", scanID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Type] = r.Count
	}
	return out, nil
}

// Recurring returns fingerprints seen in more than one file, most frequent
// first. A recurring name across many reports is worth a manual look.
func Recurring(scanID uint, limit int) ([]RecurringFinding, error) {
	var rows []RecurringFinding
	err := DB.Model(&FindingModel{}).
		Select("fingerprint, type, count(distinct file_path) as files").
		Where("scan_id = ?", scanID).
		Group("fingerprint, type").
		Having("count(distinct file_path) > 1").
		Order("files desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

type RecurringFinding struct {
	Fingerprint string `json:"fingerprint"`
	Type        string `json:"type"`
	Files       int64  `json:"files"`
}

var ErrInvalidFeedback = errors.New("feedback must be Correct or Incorrect")

func UpdateFeedback(id uint, feedback string) error {
	if feedback != FeedbackCorrect && feedback != FeedbackIncorrect {
		return ErrInvalidFeedback
	}
	res := DB.Model(&FindingModel{}).Where("id = ?", id).Update("feedback", feedback)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
