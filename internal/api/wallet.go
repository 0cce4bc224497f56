package api

import (
	"context"
	"time"

	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/model"
)

// Balance fetches the current wallet snapshot.
func (c *Client) Balance(ctx context.Context, userID string) (*model.WalletBalance, error) {
	var data model.WalletBalance
	values := listValues(userID, listview.Query{})
	if err := c.get(ctx, "/wallet/balance", values, &data); err != nil {
		return nil, err
	}
	data.FetchedAt = time.Now()
	return &data, nil
}

// PollBalance fetches the balance immediately and then on every tick
// until the context is cancelled. Fetch errors are reported through the
// callback and do not stop the poll; cancellation does.
func (c *Client) PollBalance(ctx context.Context, userID string, interval time.Duration, fn func(*model.WalletBalance, error)) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	fetch := func() {
		balance, err := c.Balance(ctx, userID)
		fn(balance, err)
	}
	fetch()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fetch()
		}
	}
}
