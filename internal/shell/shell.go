// Package shell is the interactive terminal front end. It renders
// state and day summaries and forwards every mutation to the engine;
// it never touches the aggregate directly.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Zobiii/WurstelbudenSimulator/internal/bank"
	"github.com/Zobiii/WurstelbudenSimulator/internal/game"
	"github.com/Zobiii/WurstelbudenSimulator/internal/history"
	"github.com/Zobiii/WurstelbudenSimulator/internal/inventory"
	"github.com/Zobiii/WurstelbudenSimulator/internal/market"
	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
	"github.com/Zobiii/WurstelbudenSimulator/internal/save"
	"github.com/Zobiii/WurstelbudenSimulator/internal/weather"
)

// Shell runs the menu loop over one game session.
type Shell struct {
	eng   game.Engine
	store *save.Store
	rec   history.Recorder
	state *model.GameState
	in    *bufio.Scanner
	out   io.Writer
}

func New(eng game.Engine, store *save.Store, rec history.Recorder, state *model.GameState, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		eng:   eng,
		store: store,
		rec:   rec,
		state: state,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops until the player quits or input ends. Engine errors are
// fatal: they mean the state is corrupt.
func (s *Shell) Run() error {
	for {
		s.printf("\n%s\n", s.statusLine())
		s.printf("  1) Bank\n  2) Market\n  3) Stock\n  4) Forecast\n  5) End day\n  6) Save game\n  7) Load game\n  8) Delete save\n  9) Quit\n")

		choice, ok := s.prompt("> ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.bankMenu()
		case "2":
			s.marketMenu()
		case "3":
			s.showStock()
		case "4":
			s.showForecast()
		case "5":
			if err := s.endDay(); err != nil {
				return err
			}
		case "6":
			s.saveGame()
		case "7":
			s.loadGame()
		case "8":
			s.deleteSave()
		case "9", "q", "quit":
			s.printf("Bye!\n")
			return nil
		default:
			s.printf("Unknown choice.\n")
		}
	}
}

func (s *Shell) statusLine() string {
	return fmt.Sprintf("Day %d | Cash %.2f € | Savings %.2f € | Loan %.2f €",
		s.state.Day, s.state.Balance, s.state.SavingsBalance, s.state.LoanBalance)
}

func (s *Shell) bankMenu() {
	s.printf("\nBANK — %s\n", s.statusLine())
	s.printf("  1) Deposit\n  2) Withdraw\n  3) To savings\n  4) From savings\n  5) Take loan\n  6) Repay loan\n  0) Back\n")

	choice, ok := s.prompt("> ")
	if !ok {
		return
	}

	ask := func(verb string) (float64, bool) {
		return s.promptAmount(fmt.Sprintf("Amount to %s: ", verb))
	}

	switch strings.TrimSpace(choice) {
	case "1":
		if amount, ok := ask("deposit"); ok {
			if err := bank.Deposit(s.state, amount); err != nil {
				s.printf("Deposit failed: %v\n", err)
				return
			}
			s.printf("New balance: %.2f €\n", s.state.Balance)
		}
	case "2":
		if amount, ok := ask("withdraw"); ok {
			if !bank.TryWithdraw(s.state, amount) {
				s.printf("Withdrawal failed (insufficient funds?).\n")
				return
			}
			s.printf("New balance: %.2f €\n", s.state.Balance)
		}
	case "3":
		if amount, ok := ask("move to savings"); ok {
			if !bank.TransferToSavings(s.state, amount) {
				s.printf("Transfer failed (insufficient funds?).\n")
				return
			}
			s.printf("Savings: %.2f €\n", s.state.SavingsBalance)
		}
	case "4":
		if amount, ok := ask("move from savings"); ok {
			if !bank.TransferFromSavings(s.state, amount) {
				s.printf("Transfer failed (insufficient savings?).\n")
				return
			}
			s.printf("New balance: %.2f €\n", s.state.Balance)
		}
	case "5":
		if amount, ok := ask("borrow"); ok {
			if err := bank.TakeLoan(s.state, amount); err != nil {
				s.printf("Loan failed: %v\n", err)
				return
			}
			s.printf("Loan balance: %.2f €, cash %.2f €\n", s.state.LoanBalance, s.state.Balance)
		}
	case "6":
		if amount, ok := ask("repay"); ok {
			if !bank.RepayLoan(s.state, amount) {
				s.printf("Repayment failed (nothing owed or insufficient cash?).\n")
				return
			}
			s.printf("Loan balance: %.2f €, cash %.2f €\n", s.state.LoanBalance, s.state.Balance)
		}
	}
}

func (s *Shell) marketMenu() {
	prices := market.PriceList(s.state)
	names := make([]string, 0, len(prices))
	for name := range prices {
		names = append(names, name)
	}
	sort.Strings(names)

	s.printf("\nMARKET — buy prices\n")
	for i, name := range names {
		s.printf("  %d) %-12s %6.2f €\n", i+1, name, prices[name])
	}

	choice, ok := s.prompt("Item number: ")
	if !ok {
		return
	}
	idx, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || idx < 1 || idx > len(names) {
		s.printf("No such item.\n")
		return
	}
	name := names[idx-1]

	qtyStr, ok := s.prompt("Quantity: ")
	if !ok {
		return
	}
	qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
	if err != nil || qty <= 0 {
		s.printf("Quantity must be a positive number.\n")
		return
	}

	if !market.TryBuy(s.state, name, qty) {
		s.printf("Purchase failed (insufficient funds?).\n")
		return
	}
	s.printf("Bought %d × %s. New balance: %.2f €\n", qty, name, s.state.Balance)
}

func (s *Shell) showStock() {
	s.printf("\nSTOCK (with expiry)\n")
	if len(s.state.InventoryBatches) == 0 {
		s.printf("  (empty)\n")
		return
	}

	byItem := map[string][]model.InventoryBatch{}
	for _, b := range s.state.InventoryBatches {
		byItem[b.ItemName] = append(byItem[b.ItemName], b)
	}
	names := make([]string, 0, len(byItem))
	for name := range byItem {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		batches := byItem[name]
		sort.Slice(batches, func(i, j int) bool { return batches[i].ExpiryDay < batches[j].ExpiryDay })

		parts := make([]string, 0, len(batches))
		for _, b := range batches {
			if b.ExpiryDay == model.NeverExpires {
				parts = append(parts, fmt.Sprintf("%d (no expiry)", b.Quantity))
				continue
			}
			parts = append(parts, fmt.Sprintf("%d (until day %d)", b.Quantity, b.ExpiryDay))
		}
		s.printf("  %-12s : %4d | %s\n", name, inventory.Quantity(s.state, name), strings.Join(parts, ", "))
	}
}

func (s *Shell) showForecast() {
	s.printf("\nFORECAST (today + 4 days)\n")
	for i, w := range s.state.Forecast {
		label := "today"
		if i > 0 {
			label = fmt.Sprintf("+%d days", i)
		}
		s.printf("  %-8s : %s\n", label, w)
	}

	if len(s.state.Forecast) > 0 {
		s.printf("Demand factors today:\n")
		factors := weather.DemandFactors(s.state.Forecast[0])
		for _, name := range sortedFactorKeys(factors) {
			s.printf("  %-12s : ×%.1f\n", name, factors[name])
		}
	}
}

func sortedFactorKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Shell) endDay() error {
	if slot, err := s.store.AutoSave(s.state); err != nil {
		s.printf("Autosave failed: %v\n", err)
	} else {
		s.printf("Autosaved to %s.\n", slot)
	}

	sum, err := s.eng.CloseDay(s.state)
	if err != nil {
		return fmt.Errorf("close day: %w", err)
	}

	if err := s.rec.RecordDay(sum, s.state); err != nil {
		s.printf("History recording failed: %v\n", err)
	}

	s.printf("\nWeather today: %s\n", sum.Weather)
	s.printf("Sales:\n")
	for _, name := range sortedKeys(sum.Sold) {
		s.printf("  %-12s : %4d\n", name, sum.Sold[name])
	}
	s.printf("Revenue: %.2f €\n", sum.Revenue)
	if len(sum.Expired) > 0 {
		s.printf("Spoiled and discarded:\n")
		for _, name := range sortedKeys(sum.Expired) {
			s.printf("  %-12s : %4d\n", name, sum.Expired[name])
		}
	}
	s.printf("%s\n", s.statusLine())
	return nil
}

func (s *Shell) saveGame() {
	name, ok := s.prompt("Save name: ")
	if !ok || strings.TrimSpace(name) == "" {
		s.printf("Cancelled — no name given.\n")
		return
	}
	if err := s.store.Save(s.state, name); err != nil {
		s.printf("Save failed: %v\n", err)
		return
	}
	s.printf("Game saved as %q.\n", strings.TrimSpace(name))
}

func (s *Shell) loadGame() {
	names := s.listSaves()
	if names == nil {
		return
	}

	choice, ok := s.prompt("Load which? ")
	if !ok {
		return
	}
	name := strings.TrimSpace(choice)

	st, err := s.store.Load(name)
	if err != nil {
		s.printf("Load failed: %v\n", err)
		return
	}
	if err := s.eng.Prepare(st); err != nil {
		s.printf("Save %q is not playable: %v\n", name, err)
		return
	}
	s.state = st
	s.printf("Loaded %q. %s\n", name, s.statusLine())
}

func (s *Shell) deleteSave() {
	names := s.listSaves()
	if names == nil {
		return
	}

	choice, ok := s.prompt("Delete which? ")
	if !ok {
		return
	}
	name := strings.TrimSpace(choice)

	deleted, err := s.store.Delete(name)
	if err != nil {
		s.printf("Delete failed: %v\n", err)
		return
	}
	if !deleted {
		s.printf("No save named %q.\n", name)
		return
	}
	s.printf("Deleted %q.\n", name)
}

// listSaves prints available save names, returning nil when there are
// none.
func (s *Shell) listSaves() []string {
	names, err := s.store.List()
	if err != nil {
		s.printf("Listing saves failed: %v\n", err)
		return nil
	}
	if len(names) == 0 {
		s.printf("No saves found.\n")
		return nil
	}
	s.printf("\nSAVES\n")
	for _, name := range names {
		marker := ""
		if strings.HasPrefix(name, "autosave_") {
			marker = "  (auto)"
		}
		s.printf("  %s%s\n", name, marker)
	}
	return names
}

func (s *Shell) prompt(label string) (string, bool) {
	s.printf("%s", label)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) promptAmount(label string) (float64, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || amount <= 0 {
		s.printf("Amount must be a positive number.\n")
		return 0, false
	}
	return amount, true
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
