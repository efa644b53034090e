package generator

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Config drives the synthetic network generator.
type Config struct {
	Companies          int
	Banks              int
	MinBanksPerCompany int
	MaxBanksPerCompany int
	// InterbankChance is the probability that any two banks are connected.
	InterbankChance float64
	Weighted        bool
	MinWeight       int
	MaxWeight       int
	// Seed makes generation reproducible. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns a network roughly ten times the builtin one.
func DefaultConfig() Config {
	return Config{
		Companies:          50,
		Banks:              50,
		MinBanksPerCompany: 1,
		MaxBanksPerCompany: 3,
		InterbankChance:    0.05,
		MinWeight:          1,
		MaxWeight:          10,
		Seed:               42,
	}
}

// Validate reports every inconsistent setting.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Companies < 0 {
		result = multierror.Append(result, fmt.Errorf("companies must not be negative, got %d", c.Companies))
	}
	if c.Banks < 0 {
		result = multierror.Append(result, fmt.Errorf("banks must not be negative, got %d", c.Banks))
	}
	if c.Companies+c.Banks == 0 {
		result = multierror.Append(result, fmt.Errorf("network needs at least one vertex"))
	}
	if c.MinBanksPerCompany < 0 || c.MaxBanksPerCompany < c.MinBanksPerCompany {
		result = multierror.Append(result, fmt.Errorf("banks per company range [%d, %d] is invalid", c.MinBanksPerCompany, c.MaxBanksPerCompany))
	}
	if c.Companies > 0 && c.MinBanksPerCompany > c.Banks {
		result = multierror.Append(result, fmt.Errorf("each company needs %d banks but only %d exist", c.MinBanksPerCompany, c.Banks))
	}
	if c.InterbankChance < 0 || c.InterbankChance > 1 {
		result = multierror.Append(result, fmt.Errorf("interbank chance %.2f is outside [0, 1]", c.InterbankChance))
	}
	if c.Weighted && (c.MinWeight <= 0 || c.MaxWeight < c.MinWeight) {
		result = multierror.Append(result, fmt.Errorf("weight range [%d, %d] is invalid", c.MinWeight, c.MaxWeight))
	}
	return result.ErrorOrNil()
}
