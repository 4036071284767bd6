package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Voting.validate(); err != nil {
		return fmt.Errorf("voting: %w", err)
	}
	return nil
}

func (v *VotingConfig) validate() error {
	// A v4 UUID yields 32 hex characters; the token is a prefix of one.
	if v.TokenLength < 8 || v.TokenLength > 32 {
		return fmt.Errorf("token_length must be between 8 and 32 (got %d)", v.TokenLength)
	}
	if v.StorageTimeout <= 0 {
		return fmt.Errorf("storage_timeout must be positive (got %v)", v.StorageTimeout)
	}
	if v.MaxVoters <= 0 {
		return fmt.Errorf("max_voters must be positive (got %d)", v.MaxVoters)
	}
	if v.SubmitRatePerMinute <= 0 {
		return fmt.Errorf("submit_rate_per_minute must be positive (got %d)", v.SubmitRatePerMinute)
	}
	return nil
}
