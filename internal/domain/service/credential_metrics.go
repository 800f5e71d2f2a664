package service

import "time"

// CredentialMetrics records credential service outcomes. Outcome labels are
// the domain error kinds, or "success".
type CredentialMetrics interface {
	ObserveAuthentication(outcome string)
	ObserveUserCreation(outcome string)
	ObserveHashDuration(elapsed time.Duration)
}

// NopCredentialMetrics discards every observation.
type NopCredentialMetrics struct{}

func (NopCredentialMetrics) ObserveAuthentication(string)      {}
func (NopCredentialMetrics) ObserveUserCreation(string)        {}
func (NopCredentialMetrics) ObserveHashDuration(time.Duration) {}
