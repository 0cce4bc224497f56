package model

import "time"

// Transaction is a recharge/bill-payment transaction row.
type Transaction struct {
	CreatedAt     Timestamp `json:"created_at"`
	ID            string    `json:"transaction_id"`
	OrderID       string    `json:"order_id"`
	Service       string    `json:"service"`
	Operator      string    `json:"operator"`
	Account       string    `json:"account"`
	Status        Status    `json:"status"`
	Amount        Amount    `json:"amount"`
	Commission    Amount    `json:"commission"`
	TDS           Amount    `json:"tds"`
	BalanceBefore Amount    `json:"balance_before"`
	BalanceAfter  Amount    `json:"balance_after"`
}

// RowID identifies the row for caching and receipts.
func (t Transaction) RowID() string { return t.ID }

// RowTime orders the row.
func (t Transaction) RowTime() time.Time { return t.CreatedAt.Time }

// RowStatus filters the row.
func (t Transaction) RowStatus() string { return string(t.Status) }

// SearchFields returns the stringified fields free-text search matches
// against.
func (t Transaction) SearchFields() []string {
	return []string{
		t.ID,
		t.OrderID,
		t.Operator,
		t.Account,
		string(t.Status),
		t.Amount.String(),
		t.CreatedAt.DisplayDate(),
	}
}

// LedgerEntry is one wallet ledger row with running balances.
type LedgerEntry struct {
	CreatedAt     Timestamp `json:"created_at"`
	ID            string    `json:"ledger_id"`
	TransactionID string    `json:"transaction_id"`
	Narration     string    `json:"narration"`
	Type          string    `json:"type"` // CREDIT or DEBIT
	Status        Status    `json:"status"`
	Amount        Amount    `json:"amount"`
	BalanceBefore Amount    `json:"balance_before"`
	BalanceAfter  Amount    `json:"balance_after"`
}

func (l LedgerEntry) RowID() string { return l.ID }
func (l LedgerEntry) RowTime() time.Time { return l.CreatedAt.Time }
func (l LedgerEntry) RowStatus() string { return string(l.Status) }
func (l LedgerEntry) SearchFields() []string {
	return []string{
		l.ID,
		l.TransactionID,
		l.Narration,
		l.Type,
		string(l.Status),
		l.Amount.String(),
		l.CreatedAt.DisplayDate(),
	}
}

// CommissionRecord is one row of the commission/TDS report.
type CommissionRecord struct {
	CreatedAt     Timestamp `json:"created_at"`
	ID            string    `json:"record_id"`
	TransactionID string    `json:"transaction_id"`
	Service       string    `json:"service"`
	Operator      string    `json:"operator"`
	Status        Status    `json:"status"`
	Amount        Amount    `json:"amount"`
	Commission    Amount    `json:"commission"`
	TDS           Amount    `json:"tds"`
	NetCommission Amount    `json:"net_commission"`
}

func (c CommissionRecord) RowID() string { return c.ID }
func (c CommissionRecord) RowTime() time.Time { return c.CreatedAt.Time }
func (c CommissionRecord) RowStatus() string { return string(c.Status) }
func (c CommissionRecord) SearchFields() []string {
	return []string{
		c.ID,
		c.TransactionID,
		c.Service,
		c.Operator,
		string(c.Status),
		c.Commission.String(),
		c.CreatedAt.DisplayDate(),
	}
}

// WalletEntry is one row of the wallet top-up/settlement history.
type WalletEntry struct {
	CreatedAt Timestamp `json:"created_at"`
	ID        string    `json:"entry_id"`
	Mode      string    `json:"mode"` // IMPS, NEFT, CASH...
	Reference string    `json:"reference"`
	Remark    string    `json:"remark"`
	Status    Status    `json:"status"`
	Amount    Amount    `json:"amount"`
}

func (w WalletEntry) RowID() string { return w.ID }
func (w WalletEntry) RowTime() time.Time { return w.CreatedAt.Time }
func (w WalletEntry) RowStatus() string { return string(w.Status) }
func (w WalletEntry) SearchFields() []string {
	return []string{
		w.ID,
		w.Mode,
		w.Reference,
		w.Remark,
		string(w.Status),
		w.Amount.String(),
		w.CreatedAt.DisplayDate(),
	}
}

// FundRequest is a retailer request to load wallet balance.
type FundRequest struct {
	CreatedAt Timestamp `json:"created_at"`
	ID        string    `json:"request_id"`
	Bank      string    `json:"bank"`
	Mode      string    `json:"mode"`
	UTR       string    `json:"utr"`
	Remark    string    `json:"remark"`
	Status    Status    `json:"status"`
	Amount    Amount    `json:"amount"`
}

func (f FundRequest) RowID() string { return f.ID }
func (f FundRequest) RowTime() time.Time { return f.CreatedAt.Time }
func (f FundRequest) RowStatus() string { return string(f.Status) }
func (f FundRequest) SearchFields() []string {
	return []string{
		f.ID,
		f.Bank,
		f.Mode,
		f.UTR,
		string(f.Status),
		f.Amount.String(),
		f.CreatedAt.DisplayDate(),
	}
}

// Beneficiary is a saved money-transfer recipient.
type Beneficiary struct {
	CreatedAt Timestamp `json:"created_at"`
	ID        string    `json:"beneficiary_id"`
	Name      string    `json:"name"`
	Bank      string    `json:"bank"`
	Account   string    `json:"account_number"`
	IFSC      string    `json:"ifsc"`
	Mobile    string    `json:"mobile"`
	Status    Status    `json:"status"`
}

func (b Beneficiary) RowID() string { return b.ID }
func (b Beneficiary) RowTime() time.Time { return b.CreatedAt.Time }
func (b Beneficiary) RowStatus() string { return string(b.Status) }
func (b Beneficiary) SearchFields() []string {
	return []string{
		b.ID,
		b.Name,
		b.Bank,
		b.Account,
		b.IFSC,
		b.Mobile,
		string(b.Status),
	}
}

// Operator is a recharge operator offered for a service.
type Operator struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Service string `json:"service"`
}

// Circle is a telecom circle used when placing recharges.
type Circle struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// WalletBalance is the polled wallet snapshot.
type WalletBalance struct {
	FetchedAt time.Time `json:"-"`
	Balance   Amount    `json:"balance"`
	AEPS      Amount    `json:"aeps_balance"`
}
