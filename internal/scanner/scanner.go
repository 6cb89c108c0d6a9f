// Package scanner walks a directory of exported case reports and scans every
// readable document with a pool of workers.
package scanner

import (
	"context"
	"log"
	"sync"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/config"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/extractor"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/lexicon"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/pii"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/reporting"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/storage"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/whitelist"
)

// Scanner handles the orchestration of file scanning
type Scanner struct {
	cfg           *config.Config
	jobs          chan models.Job
	results       chan models.DocumentResult
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
	done          chan struct{}
	engine        *pii.Scanner
	minConfidence models.Confidence
	Report        *reporting.Report
	factory       *extractor.Factory
	Whitelist     *whitelist.Whitelist
	scanRecord    *storage.ScanModel // nil when history is disabled
}

func NewScanner(cfg *config.Config) *Scanner {
	ctx, cancel := context.WithCancel(context.Background())

	wl, err := whitelist.NewWhitelist(cfg.WhitelistPath)
	if err != nil {
		log.Printf("[WHITELIST] %v, continuing with an empty whitelist", err)
		wl, _ = whitelist.NewWhitelist("")
	}

	s := &Scanner{
		cfg:           cfg,
		jobs:          make(chan models.Job, cfg.Workers*4), // Buffer relative to workers
		results:       make(chan models.DocumentResult, cfg.Workers*4),
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
		engine:        Engine(cfg),
		minConfidence: cfg.MinConfidenceLevel(),
		Report:        reporting.NewReport(),
		factory:       extractor.NewFactory(),
		Whitelist:     wl,
	}
	s.Report.Summary.RootPath = cfg.RootPath
	s.Report.Summary.MinConfidence = s.minConfidence
	return s
}

// Engine returns the PII scanner for cfg: the shared default unless the
// config extends the name lists.
func Engine(cfg *config.Config) *pii.Scanner {
	if !cfg.HasLexiconExtras() {
		return pii.Default()
	}
	return pii.New(lexicon.New(cfg.LexiconOptions()), nil)
}

// Start initializes the worker pool and starts the scan
func (s *Scanner) Start() {
	if storage.DB != nil {
		rec, err := storage.CreateScan(s.cfg.RootPath)
		if err != nil {
			log.Printf("[ERROR] failed to create scan record: %v", err)
		} else {
			s.scanRecord = rec
		}
	}

	for i := 0; i < s.cfg.Workers; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	go s.processResults()
	go s.walkFiles()
}

// Stop cancels a running scan. Wait still has to be called.
func (s *Scanner) Stop() {
	s.cancel()
}

// Wait blocks until scanning is complete
func (s *Scanner) Wait() {
	s.wg.Wait()
	close(s.results)
	<-s.done

	if s.scanRecord == nil {
		return
	}
	sum := s.Report.Summary
	var err error
	if s.ctx.Err() != nil {
		err = storage.FailScan(s.scanRecord)
	} else {
		err = storage.CompleteScan(s.scanRecord, sum.TotalFilesScanned, sum.TotalFilesWithPII, sum.TotalPIIFound)
	}
	if err != nil {
		log.Printf("[ERROR] failed to update scan record: %v", err)
	}
}

// ScanID returns the history record of this scan, or 0 without history.
func (s *Scanner) ScanID() uint {
	if s.scanRecord == nil {
		return 0
	}
	return s.scanRecord.ID
}
