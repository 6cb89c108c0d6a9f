package scanner

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/storage"
)

func (s *Scanner) processResults() {
	count := 0
	start := time.Now()

	for res := range s.results {
		if errors.Is(res.Error, errUnsupported) {
			continue
		}
		count++

		s.Report.AddResult(res)

		if res.Error != nil {
			log.Printf("[ERROR] %s: %v", res.FilePath, res.Error)
			continue
		}

		if res.Scan.HasPII {
			// matched text stays out of the console; the report has it
			fmt.Printf("[FOUND] %s: %d possible personal data findings\n", res.FilePath, res.Scan.TotalWarnings)
			if s.scanRecord != nil {
				if err := storage.SaveResult(s.scanRecord.ID, res); err != nil {
					log.Printf("[ERROR] failed to store findings for %s: %v", res.FilePath, err)
				}
			}
		}

		if count%1000 == 0 {
			fmt.Printf("Processed %d files... (Rate: %.2f files/sec)\n", count, float64(count)/time.Since(start).Seconds())
		}
	}
	s.Report.Finalize()
	close(s.done)
}
