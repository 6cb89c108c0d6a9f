package detectors

import (
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

// EmailRegex: Standard email pattern
var emailPattern = Bounded("email", `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

type EmailDetector struct {
	BaseRegexDetector
}

func NewEmailDetector() *EmailDetector {
	return &EmailDetector{
		BaseRegexDetector: BaseRegexDetector{
			Patterns: []*Pattern{emailPattern},
			Label:    models.TypeEmail,
		},
	}
}
