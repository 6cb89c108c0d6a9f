// Package server exposes the scanner over HTTP for the case-report editor
// and serves the review UI for batch reports.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/config"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/pii"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/reporting"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/scanner"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/storage"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/whitelist"
)

// maxBodyBytes bounds request bodies; report fields are short.
const maxBodyBytes = 1 << 20

type Server struct {
	report    *reporting.Report
	whitelist *whitelist.Whitelist
	engine    *pii.Scanner
}

func NewServer(cfg *config.Config, report *reporting.Report, wl *whitelist.Whitelist) *Server {
	if report == nil {
		report = reporting.NewReport()
		report.Finalize()
	}
	return &Server{
		report:    report,
		whitelist: wl,
		engine:    scanner.Engine(cfg),
	}
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleReport)
	mux.HandleFunc("POST /whitelist", s.handleWhitelist)
	mux.HandleFunc("POST /api/scan", s.handleScan)
	mux.HandleFunc("POST /api/scan/fields", s.handleScanFields)
	mux.HandleFunc("GET /api/scans", s.handleScans)
	mux.HandleFunc("POST /api/findings/{id}/feedback", s.handleFeedback)
	return mux
}

func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("[SERVER] listening on http://%s", addr)
	return srv.ListenAndServe()
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.report.RenderHTML(w); err != nil {
		log.Printf("[ERROR] failed to render report: %v", err)
		http.Error(w, "failed to render report", http.StatusInternalServerError)
	}
}

func (s *Server) handleWhitelist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Value == "" {
		http.Error(w, "Value cannot be empty", http.StatusBadRequest)
		return
	}

	if err := s.whitelist.Add(req.Value); err != nil {
		log.Printf("[ERROR] failed to add to whitelist: %v", err)
		http.Error(w, "Failed to save to whitelist", http.StatusInternalServerError)
		return
	}

	// the value is approved as non-personal, so it is safe to log
	log.Printf("[WHITELIST] Added via web UI: %s", req.Value)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, s.whitelist.Filter(s.engine.Scan(req.Text)))
}

func (s *Server) handleScanFields(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fields map[string]string `json:"fields"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Fields == nil {
		req.Fields = map[string]string{}
	}
	writeJSON(w, s.whitelist.FilterFields(s.engine.ScanFields(req.Fields)))
}

func (s *Server) handleScans(w http.ResponseWriter, r *http.Request) {
	if storage.DB == nil {
		writeJSON(w, []storage.ScanModel{})
		return
	}
	scans, err := storage.GetAllScans()
	if err != nil {
		log.Printf("[ERROR] failed to list scans: %v", err)
		http.Error(w, "failed to list scans", http.StatusInternalServerError)
		return
	}
	writeJSON(w, scans)
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	if storage.DB == nil {
		http.Error(w, "history is disabled", http.StatusNotFound)
		return
	}
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req struct {
		Feedback string `json:"feedback"`
	}
	if !decode(w, r, &req) {
		return
	}

	switch err := storage.UpdateFeedback(uint(id), req.Feedback); {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, storage.ErrInvalidFeedback):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "finding not found", http.StatusNotFound)
	default:
		log.Printf("[ERROR] failed to store feedback: %v", err)
		http.Error(w, "failed to store feedback", http.StatusInternalServerError)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] failed to encode response: %v", err)
	}
}
