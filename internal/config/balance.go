package config

// Balance holds gameplay balance knobs for the daily simulation.
type Balance struct {
	// StartingBalance is the cash a fresh game begins with.
	StartingBalance float64 `yaml:"starting_balance" json:"starting_balance"`

	// BaseWant is the per-item base demand before the weather factor
	// and jitter apply.
	BaseWant int `yaml:"base_want" json:"base_want"`

	// JitterBound is the exclusive upper bound of the per-item daily
	// demand noise, drawn uniformly from [0, JitterBound).
	JitterBound int `yaml:"jitter_bound" json:"jitter_bound"`

	// Annualized interest rates; accrual is daily-proportional (/365).
	SavingsRateAnnual float64 `yaml:"savings_rate_annual" json:"savings_rate_annual"`
	LoanRateAnnual    float64 `yaml:"loan_rate_annual" json:"loan_rate_annual"`
}

func defaultBalance() Balance {
	return Balance{
		StartingBalance:   100,
		BaseWant:          8,
		JitterBound:       6,
		SavingsRateAnnual: 0.05,
		LoanRateAnnual:    0.12,
	}
}

func (b *Balance) applyDefaults() {
	def := defaultBalance()
	if b.StartingBalance <= 0 {
		b.StartingBalance = def.StartingBalance
	}
	if b.BaseWant <= 0 {
		b.BaseWant = def.BaseWant
	}
	if b.JitterBound <= 0 {
		b.JitterBound = def.JitterBound
	}
	if b.SavingsRateAnnual < 0 {
		b.SavingsRateAnnual = def.SavingsRateAnnual
	}
	if b.LoanRateAnnual < 0 {
		b.LoanRateAnnual = def.LoanRateAnnual
	}
}
