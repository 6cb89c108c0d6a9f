package reporting

import (
	"encoding/json"
	"html/template"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/templates"
)

type Summary struct {
	TotalFilesScanned int64                        `json:"total_files_scanned"`
	TotalFilesWithPII int64                        `json:"total_files_with_pii"`
	TotalPIIFound     int64                        `json:"total_pii_found"`
	FailedFiles       int64                        `json:"failed_files"`
	CountsByType      map[models.FindingType]int64 `json:"counts_by_type"`
	ScanDuration      time.Duration                `json:"scan_duration"`
	StartTime         time.Time                    `json:"start_time"`
	EndTime           time.Time                    `json:"end_time"`
	RootPath          string                       `json:"root_path"`
	MinConfidence     models.Confidence            `json:"min_confidence,omitempty"`
}

// Report collects document results. Only documents with findings or errors
// are kept; the rest are counted.
type Report struct {
	Summary   Summary                 `json:"summary"`
	Documents []models.DocumentResult `json:"documents"`
	mu        sync.Mutex
}

func NewReport() *Report {
	return &Report{
		Summary: Summary{
			StartTime:    time.Now(),
			CountsByType: make(map[models.FindingType]int64),
		},
		Documents: make([]models.DocumentResult, 0),
	}
}

func (r *Report) AddResult(res models.DocumentResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Summary.TotalFilesScanned++
	if res.Error != nil {
		r.Summary.FailedFiles++
		r.Documents = append(r.Documents, res)
		return
	}
	if !res.Scan.HasPII {
		return
	}
	r.Summary.TotalFilesWithPII++
	r.Summary.TotalPIIFound += int64(res.Scan.TotalWarnings)
	for _, field := range res.Scan.Results {
		for t, n := range field.Counts {
			r.Summary.CountsByType[t] += int64(n)
		}
	}
	r.Documents = append(r.Documents, res)
}

func (r *Report) Finalize() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Summary.EndTime = time.Now()
	r.Summary.ScanDuration = r.Summary.EndTime.Sub(r.Summary.StartTime)
	sort.SliceStable(r.Documents, func(i, j int) bool {
		return r.Documents[i].FilePath < r.Documents[j].FilePath
	})
}

// Row is one finding flattened for tables.
type Row struct {
	FilePath string
	Field    string
	Finding  models.Finding
	Severity models.Severity
}

// Rows flattens the report: by file, then field, then high confidence first.
func (r *Report) Rows() []Row {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rows []Row
	for _, doc := range r.Documents {
		fields := make([]string, 0, len(doc.Scan.Results))
		for name := range doc.Scan.Results {
			fields = append(fields, name)
		}
		sort.Strings(fields)

		for _, name := range fields {
			warnings := append([]models.Finding(nil), doc.Scan.Results[name].Warnings...)
			models.SortByConfidence(warnings)
			for _, f := range warnings {
				rows = append(rows, Row{
					FilePath: doc.FilePath,
					Field:    name,
					Finding:  f,
					Severity: models.SeverityOf(f.Type),
				})
			}
		}
	}
	return rows
}

// Failures returns the documents that could not be read.
func (r *Report) Failures() []models.DocumentResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.DocumentResult
	for _, doc := range r.Documents {
		if doc.Error != nil || doc.ErrorMsg != "" {
			out = append(out, doc)
		}
	}
	return out
}

func (r *Report) SaveJSON(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return r.WriteJSON(file)
}

func (r *Report) WriteJSON(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func (r *Report) SaveHTML(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return r.RenderHTML(file)
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"typeLabel":       models.TypeLabel,
	"confidenceLabel": models.ConfidenceLabel,
	"duration": func(d time.Duration) string {
		return d.Round(time.Millisecond).String()
	},
}).Parse(templates.ReportHTML))

type htmlView struct {
	Summary  Summary
	Types    []typeCount
	Rows     []Row
	Failures []models.DocumentResult
}

type typeCount struct {
	Type  models.FindingType
	Count int64
}

func (r *Report) RenderHTML(w io.Writer) error {
	view := htmlView{
		Rows:     r.Rows(),
		Failures: r.Failures(),
	}
	r.mu.Lock()
	view.Summary = r.Summary
	for _, t := range models.AllTypes {
		if n := r.Summary.CountsByType[t]; n > 0 {
			view.Types = append(view.Types, typeCount{Type: t, Count: n})
		}
	}
	r.mu.Unlock()
	return reportTemplate.Execute(w, view)
}
