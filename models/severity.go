package models

// SeverityLevel represents the severity of a finding
//
//go:generate go run github.com/dmarkham/enumer@latest -type=SeverityLevel -trimprefix=SeverityLevel
type SeverityLevel uint8

const (
	SeverityLevelLow    SeverityLevel = iota // 🟢 Low priority findings
	SeverityLevelMedium                      // 🟡 Medium priority findings
	SeverityLevelHigh                        // 🔴 High priority findings
)
