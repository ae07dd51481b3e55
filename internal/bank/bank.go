// Package bank keeps all money arithmetic for the game state in one
// place. Predictable business failures (insufficient funds, capped
// repayments) are bool results; only nonsensical amounts are errors.
package bank

import (
	"errors"

	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
)

// ErrInvalidAmount rejects zero or negative amounts on operations that
// cannot meaningfully fail otherwise.
var ErrInvalidAmount = errors.New("amount must be positive")

const daysPerYear = 365

// Deposit adds cash to the balance.
func Deposit(state *model.GameState, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	state.Balance = model.Round2(state.Balance + model.Round2(amount))
	return nil
}

// TryWithdraw removes cash from the balance. Returns false without
// mutation when funds are insufficient or the amount is not positive.
func TryWithdraw(state *model.GameState, amount float64) bool {
	if amount <= 0 {
		return false
	}
	amount = model.Round2(amount)
	if state.Balance < amount {
		return false
	}
	state.Balance = model.Round2(state.Balance - amount)
	return true
}

// TransferToSavings moves cash into the savings account. Fails like
// TryWithdraw when the balance does not cover the amount.
func TransferToSavings(state *model.GameState, amount float64) bool {
	if !TryWithdraw(state, amount) {
		return false
	}
	state.SavingsBalance = model.Round2(state.SavingsBalance + model.Round2(amount))
	return true
}

// TransferFromSavings moves savings back into the cash balance.
func TransferFromSavings(state *model.GameState, amount float64) bool {
	if amount <= 0 {
		return false
	}
	amount = model.Round2(amount)
	if state.SavingsBalance < amount {
		return false
	}
	state.SavingsBalance = model.Round2(state.SavingsBalance - amount)
	state.Balance = model.Round2(state.Balance + amount)
	return true
}

// TakeLoan credits both the loan balance and the cash balance. Loans
// are always granted; there is no creditworthiness check.
func TakeLoan(state *model.GameState, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	amount = model.Round2(amount)
	state.LoanBalance = model.Round2(state.LoanBalance + amount)
	state.Balance = model.Round2(state.Balance + amount)
	return nil
}

// RepayLoan pays min(amount, loanBalance) from the cash balance.
// Returns false when nothing is owed, the amount is not positive, or
// the balance cannot cover the capped payment.
func RepayLoan(state *model.GameState, amount float64) bool {
	if amount <= 0 {
		return false
	}
	amount = model.Round2(amount)
	pay := amount
	if state.LoanBalance < pay {
		pay = state.LoanBalance
	}
	if pay <= 0 {
		return false
	}
	if !TryWithdraw(state, pay) {
		return false
	}
	state.LoanBalance = model.Round2(state.LoanBalance - pay)
	return true
}

// ApplyDailyInterest accrues one day of simple interest on both the
// savings and the loan balance. Daily-proportional, not compounding
// within a day.
func ApplyDailyInterest(state *model.GameState) {
	if state.SavingsBalance > 0 && state.SavingsRateAnnual > 0 {
		interest := state.SavingsBalance * state.SavingsRateAnnual / daysPerYear
		state.SavingsBalance = model.Round2(state.SavingsBalance + interest)
	}
	if state.LoanBalance > 0 && state.LoanRateAnnual > 0 {
		interest := state.LoanBalance * state.LoanRateAnnual / daysPerYear
		state.LoanBalance = model.Round2(state.LoanBalance + interest)
	}
}
