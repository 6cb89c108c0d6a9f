package detectors

import "sync"

// Bank holds one detector per pattern group, in scan order.
type Bank struct {
	Triggers      Detector
	FullNames     Detector
	Relationships Detector
	Locations     Detector
	Dates         Detector
	Addresses     Detector
	Phones        Detector
	Emails        Detector
	SSNs          Detector
}

// NewBank compiles a fresh pattern bank.
func NewBank() *Bank {
	return &Bank{
		Triggers:      NewTriggerDetector(),
		FullNames:     NewFullNameDetector(),
		Relationships: NewRelationshipDetector(),
		Locations:     NewLocationDetector(),
		Dates:         NewDateDetector(),
		Addresses:     NewAddressDetector(),
		Phones:        NewPhoneDetector(),
		Emails:        NewEmailDetector(),
		SSNs:          NewSSNDetector(),
	}
}

var (
	defaultBank     *Bank
	defaultBankOnce sync.Once
)

// DefaultBank returns the shared read-only bank.
func DefaultBank() *Bank {
	defaultBankOnce.Do(func() {
		defaultBank = NewBank()
	})
	return defaultBank
}
