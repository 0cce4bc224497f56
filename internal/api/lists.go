package api

import (
	"context"
	"errors"

	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/model"
)

// Transactions fetches the recharge/bill-payment history.
func (c *Client) Transactions(ctx context.Context, userID string, q listview.Query) ([]model.Transaction, error) {
	var data struct {
		Transactions []model.Transaction `json:"transactions"`
	}
	if err := c.getList(ctx, "/transactions", userID, q, &data); err != nil {
		return nil, err
	}
	return data.Transactions, nil
}

// Ledger fetches the wallet ledger.
func (c *Client) Ledger(ctx context.Context, userID string, q listview.Query) ([]model.LedgerEntry, error) {
	var data struct {
		Entries []model.LedgerEntry `json:"ledger"`
	}
	if err := c.getList(ctx, "/ledger", userID, q, &data); err != nil {
		return nil, err
	}
	return data.Entries, nil
}

// AEPSTransactions fetches the AEPS history.
func (c *Client) AEPSTransactions(ctx context.Context, userID string, q listview.Query) ([]model.Transaction, error) {
	var data struct {
		Transactions []model.Transaction `json:"transactions"`
	}
	if err := c.getList(ctx, "/aeps/transactions", userID, q, &data); err != nil {
		return nil, err
	}
	return data.Transactions, nil
}

// Commissions fetches the commission/TDS report.
func (c *Client) Commissions(ctx context.Context, userID string, q listview.Query) ([]model.CommissionRecord, error) {
	var data struct {
		Records []model.CommissionRecord `json:"commissions"`
	}
	if err := c.getList(ctx, "/reports/commissions", userID, q, &data); err != nil {
		return nil, err
	}
	return data.Records, nil
}

// WalletHistory fetches top-up/settlement entries.
func (c *Client) WalletHistory(ctx context.Context, userID string, q listview.Query) ([]model.WalletEntry, error) {
	var data struct {
		Entries []model.WalletEntry `json:"entries"`
	}
	if err := c.getList(ctx, "/wallet/history", userID, q, &data); err != nil {
		return nil, err
	}
	return data.Entries, nil
}

// FundRequests fetches the fund request history.
func (c *Client) FundRequests(ctx context.Context, userID string, q listview.Query) ([]model.FundRequest, error) {
	var data struct {
		Requests []model.FundRequest `json:"fund_requests"`
	}
	if err := c.getList(ctx, "/fund-requests", userID, q, &data); err != nil {
		return nil, err
	}
	return data.Requests, nil
}

// Beneficiaries fetches the saved beneficiaries.
func (c *Client) Beneficiaries(ctx context.Context, userID string, q listview.Query) ([]model.Beneficiary, error) {
	var data struct {
		Beneficiaries []model.Beneficiary `json:"beneficiaries"`
	}
	if err := c.getList(ctx, "/beneficiaries", userID, q, &data); err != nil {
		return nil, err
	}
	return data.Beneficiaries, nil
}

// Operators fetches the operator list for a service.
func (c *Client) Operators(ctx context.Context, svc string) ([]model.Operator, error) {
	var data struct {
		Operators []model.Operator `json:"operators"`
	}
	q := listview.Query{}
	values := listValues("", q)
	values.Del("user_id")
	values.Set("service", svc)
	if err := c.get(ctx, "/operators", values, &data); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return data.Operators, nil
}

// Circles fetches the telecom circle list.
func (c *Client) Circles(ctx context.Context) ([]model.Circle, error) {
	var data struct {
		Circles []model.Circle `json:"circles"`
	}
	if err := c.get(ctx, "/circles", nil, &data); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return data.Circles, nil
}

// getList wraps get with the list conventions: query parameters from
// the filter state and 404 treated as an empty result.
func (c *Client) getList(ctx context.Context, path, userID string, q listview.Query, out any) error {
	err := c.get(ctx, path, listValues(userID, q), out)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	return err
}

// fetchAllPageSize is the limit used when exhausting an endpoint for a
// full export.
const fetchAllPageSize = 200

// FetchAll exhausts a paginated source with a limit/offset loop,
// ignoring the display pagination. The progress callback, if set,
// receives the running row count after each page.
func FetchAll[R listview.Row](ctx context.Context, source listview.Source[R], q listview.Query, progress func(fetched int)) ([]R, error) {
	var all []R
	q.Limit = fetchAllPageSize
	q.Offset = 0

	for {
		page, err := source(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if progress != nil {
			progress(len(all))
		}
		if len(page) < q.Limit {
			return all, nil
		}
		q.Offset += q.Limit
	}
}
