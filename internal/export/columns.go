package export

import (
	"fmt"

	"github.com/paydesk/paydesk/internal/model"
)

// Per-resource column mappings shared by spreadsheet export and the
// table renderers.

// TransactionColumns covers recharge, bill payment, and AEPS history.
func TransactionColumns() []Column[model.Transaction] {
	return []Column[model.Transaction]{
		{Header: "Transaction ID", Value: func(t model.Transaction) any { return t.ID }},
		{Header: "Order ID", Value: func(t model.Transaction) any { return t.OrderID }},
		{Header: "Date", Value: func(t model.Transaction) any { return t.CreatedAt.DisplayDate() }},
		{Header: "Service", Value: func(t model.Transaction) any { return t.Service }},
		{Header: "Operator", Value: func(t model.Transaction) any { return t.Operator }},
		{Header: "Account", Value: func(t model.Transaction) any { return t.Account }},
		{Header: "Amount", Value: func(t model.Transaction) any { return t.Amount }},
		{Header: "Commission", Value: func(t model.Transaction) any { return t.Commission }},
		{Header: "TDS", Value: func(t model.Transaction) any { return t.TDS }},
		{Header: "Status", Value: func(t model.Transaction) any { return string(t.Status) }},
	}
}

// LedgerColumns covers the wallet ledger.
func LedgerColumns() []Column[model.LedgerEntry] {
	return []Column[model.LedgerEntry]{
		{Header: "Ledger ID", Value: func(e model.LedgerEntry) any { return e.ID }},
		{Header: "Transaction ID", Value: func(e model.LedgerEntry) any { return e.TransactionID }},
		{Header: "Date", Value: func(e model.LedgerEntry) any { return e.CreatedAt.DisplayDate() }},
		{Header: "Narration", Value: func(e model.LedgerEntry) any { return e.Narration }},
		{Header: "Type", Value: func(e model.LedgerEntry) any { return e.Type }},
		{Header: "Amount", Value: func(e model.LedgerEntry) any { return e.Amount }},
		{Header: "Balance Before", Value: func(e model.LedgerEntry) any { return e.BalanceBefore }},
		{Header: "Balance After", Value: func(e model.LedgerEntry) any { return e.BalanceAfter }},
		{Header: "Status", Value: func(e model.LedgerEntry) any { return string(e.Status) }},
	}
}

// CommissionColumns covers the commission/TDS report.
func CommissionColumns() []Column[model.CommissionRecord] {
	return []Column[model.CommissionRecord]{
		{Header: "Record ID", Value: func(c model.CommissionRecord) any { return c.ID }},
		{Header: "Transaction ID", Value: func(c model.CommissionRecord) any { return c.TransactionID }},
		{Header: "Date", Value: func(c model.CommissionRecord) any { return c.CreatedAt.DisplayDate() }},
		{Header: "Service", Value: func(c model.CommissionRecord) any { return c.Service }},
		{Header: "Operator", Value: func(c model.CommissionRecord) any { return c.Operator }},
		{Header: "Amount", Value: func(c model.CommissionRecord) any { return c.Amount }},
		{Header: "Commission", Value: func(c model.CommissionRecord) any { return c.Commission }},
		{Header: "TDS", Value: func(c model.CommissionRecord) any { return c.TDS }},
		{Header: "Net Commission", Value: func(c model.CommissionRecord) any { return c.NetCommission }},
		{Header: "Status", Value: func(c model.CommissionRecord) any { return string(c.Status) }},
	}
}

// WalletColumns covers the wallet top-up/settlement history.
func WalletColumns() []Column[model.WalletEntry] {
	return []Column[model.WalletEntry]{
		{Header: "Entry ID", Value: func(w model.WalletEntry) any { return w.ID }},
		{Header: "Date", Value: func(w model.WalletEntry) any { return w.CreatedAt.DisplayDate() }},
		{Header: "Mode", Value: func(w model.WalletEntry) any { return w.Mode }},
		{Header: "Reference", Value: func(w model.WalletEntry) any { return w.Reference }},
		{Header: "Remark", Value: func(w model.WalletEntry) any { return w.Remark }},
		{Header: "Amount", Value: func(w model.WalletEntry) any { return w.Amount }},
		{Header: "Status", Value: func(w model.WalletEntry) any { return string(w.Status) }},
	}
}

// FundRequestColumns covers the fund request history.
func FundRequestColumns() []Column[model.FundRequest] {
	return []Column[model.FundRequest]{
		{Header: "Request ID", Value: func(f model.FundRequest) any { return f.ID }},
		{Header: "Date", Value: func(f model.FundRequest) any { return f.CreatedAt.DisplayDate() }},
		{Header: "Bank", Value: func(f model.FundRequest) any { return f.Bank }},
		{Header: "Mode", Value: func(f model.FundRequest) any { return f.Mode }},
		{Header: "UTR", Value: func(f model.FundRequest) any { return f.UTR }},
		{Header: "Amount", Value: func(f model.FundRequest) any { return f.Amount }},
		{Header: "Status", Value: func(f model.FundRequest) any { return string(f.Status) }},
	}
}

// BeneficiaryColumns covers the saved beneficiaries.
func BeneficiaryColumns() []Column[model.Beneficiary] {
	return []Column[model.Beneficiary]{
		{Header: "Beneficiary ID", Value: func(b model.Beneficiary) any { return b.ID }},
		{Header: "Name", Value: func(b model.Beneficiary) any { return b.Name }},
		{Header: "Bank", Value: func(b model.Beneficiary) any { return b.Bank }},
		{Header: "Account", Value: func(b model.Beneficiary) any { return b.Account }},
		{Header: "IFSC", Value: func(b model.Beneficiary) any { return b.IFSC }},
		{Header: "Mobile", Value: func(b model.Beneficiary) any { return b.Mobile }},
		{Header: "Status", Value: func(b model.Beneficiary) any { return string(b.Status) }},
	}
}

// CellStrings renders one row through the mapping for plain-table
// display.
func CellStrings[R any](row R, columns []Column[R]) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		value := col.Value(row)
		if amount, ok := value.(model.Amount); ok {
			cells[i] = amount.String()
			continue
		}
		cells[i] = toString(value)
	}
	return cells
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
