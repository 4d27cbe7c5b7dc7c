package account

// User is one registered account. The phone number is the primary key of
// the collection; no two records may share one. The PIN is stored and
// compared in plaintext — a known weakness of this demo, carried forward
// deliberately.
type User struct {
	FullName     string        `json:"fullName"`
	Phone        string        `json:"phone"`
	PIN          string        `json:"pin"`
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

// Transaction records one completed outgoing transfer. Only the sender
// holds a record; receivers are free-form destinations, not users.
// BalanceAfter snapshots the sender's balance immediately after the debit
// and must always equal the running balance at that point in the sequence.
type Transaction struct {
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Receiver     string  `json:"receiver"`
	Bank         string  `json:"bank"`
	Account      string  `json:"account"`
	Date         string  `json:"date"`
	Timestamp    string  `json:"timestamp"`
	BalanceAfter float64 `json:"balanceAfter"`
}

const (
	// RegistrationBonus is credited to every new account.
	RegistrationBonus = 90000

	// FirstTransferMinimum is the smallest amount accepted for an
	// account's first-ever transfer. Note it exceeds RegistrationBonus,
	// so a first transfer cannot pass both this rule and the funds
	// check without an external deposit; see DESIGN.md.
	FirstTransferMinimum = 100000

	transactionTypeDebit = "debit"
)
