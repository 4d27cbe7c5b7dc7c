package account

import (
	"context"
	"sync"
	"time"
)

// Time layouts matching the frontend's expectations: a human-readable
// local timestamp and an ISO 8601 UTC one.
const (
	localeDateLayout = "1/2/2006, 3:04:05 PM"
	isoLayout        = "2006-01-02T15:04:05.000Z"
)

// Service implements the account ledger rules: registration,
// authentication, lookup, and transfer. Every operation is a single
// read-validate-mutate-respond cycle over the full collection. Mutating
// operations are serialized through a mutex so the load-mutate-save
// cycle cannot interleave and lose an update within this process.
type Service struct {
	mu   sync.Mutex
	repo *Repository
	now  func() time.Time
}

// NewService builds the ledger service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// RegisterInput carries the fields required to open an account.
type RegisterInput struct {
	FullName string
	Phone    string
	PIN      string
}

// Register opens an account credited with the registration bonus. The
// phone number must not already be registered.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	if in.FullName == "" || in.Phone == "" || in.PIN == "" {
		return User{}, ValidationError{Message: "All fields are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repo.Load(ctx)
	if err != nil {
		return User{}, err
	}

	for _, u := range users {
		if u.Phone == in.Phone {
			return User{}, ConflictError{Message: "Phone number already registered"}
		}
	}

	user := User{
		FullName:     in.FullName,
		Phone:        in.Phone,
		PIN:          in.PIN,
		Balance:      RegistrationBonus,
		Transactions: []Transaction{},
	}

	users = append(users, user)
	if err := s.repo.Save(ctx, users); err != nil {
		return User{}, err
	}

	return user, nil
}

// Authenticate verifies a phone and PIN pair by exact match. Wrong PIN
// and unknown phone produce the same error.
func (s *Service) Authenticate(ctx context.Context, phone, pin string) (User, error) {
	if phone == "" || pin == "" {
		return User{}, ValidationError{Message: "Phone and PIN are required"}
	}

	users, err := s.repo.Load(ctx)
	if err != nil {
		return User{}, err
	}

	for _, u := range users {
		if u.Phone == phone && u.PIN == pin {
			return u, nil
		}
	}
	return User{}, AuthError{Message: "Invalid phone or PIN"}
}

// Lookup fetches the record for a session's phone. It backs the
// dashboard, balance, history, and session-check reads.
func (s *Service) Lookup(ctx context.Context, phone string) (User, error) {
	users, err := s.repo.Load(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return User{}, NotFoundError{Message: "User not found"}
}

// TransferInput carries the destination description and the amount for
// an outgoing transfer. The destination fields are free-form.
type TransferInput struct {
	ReceiverName    string
	ReceiverAccount string
	Bank            string
	Amount          AmountField
}

// Transfer debits the sender and appends a transaction record. The
// checks run in a fixed order and the first failure short-circuits:
// missing fields, then amount parse, then the first-transfer minimum,
// then sufficient funds. Nothing is mutated or persisted unless every
// check passes.
func (s *Service) Transfer(ctx context.Context, phone string, in TransferInput) (User, Transaction, error) {
	if in.ReceiverName == "" || in.ReceiverAccount == "" || in.Bank == "" || in.Amount.Missing() {
		return User{}, Transaction{}, ValidationError{Message: "All fields are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repo.Load(ctx)
	if err != nil {
		return User{}, Transaction{}, err
	}

	var sender *User
	for i := range users {
		if users[i].Phone == phone {
			sender = &users[i]
			break
		}
	}
	if sender == nil {
		return User{}, Transaction{}, NotFoundError{Message: "User not found"}
	}

	amount, ok := in.Amount.Value()
	if !ok || amount <= 0 {
		return User{}, Transaction{}, ValidationError{Message: "Invalid amount"}
	}

	if len(sender.Transactions) == 0 && amount < FirstTransferMinimum {
		return User{}, Transaction{}, PolicyError{
			Message:        "First transfer must be at least ₦100,000",
			RequiredAmount: FirstTransferMinimum,
		}
	}

	if amount > sender.Balance {
		return User{}, Transaction{}, InsufficientFundsError{
			CurrentBalance: sender.Balance,
			RequiredAmount: amount,
		}
	}

	sender.Balance -= amount

	now := s.now()
	tx := Transaction{
		Type:         transactionTypeDebit,
		Amount:       amount,
		Receiver:     in.ReceiverName,
		Bank:         in.Bank,
		Account:      in.ReceiverAccount,
		Date:         now.Format(localeDateLayout),
		Timestamp:    now.UTC().Format(isoLayout),
		BalanceAfter: sender.Balance,
	}
	sender.Transactions = append(sender.Transactions, tx)

	if err := s.repo.Save(ctx, users); err != nil {
		return User{}, Transaction{}, err
	}

	return *sender, tx, nil
}
