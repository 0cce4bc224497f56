package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/paydesk/paydesk/internal/model"
)

// RechargeRequest is the validated payload for placing a recharge.
type RechargeRequest struct {
	Operator string `json:"operator"`
	Circle   string `json:"circle"`
	Account  string `json:"account"`
	Amount   string `json:"amount"`
}

// Recharge places a mobile recharge / bill payment and returns the
// resulting transaction row. A client-generated idempotency key makes a
// retried POST safe against double charging.
func (c *Client) Recharge(ctx context.Context, userID string, req RechargeRequest) (*model.Transaction, error) {
	var data struct {
		Transaction model.Transaction `json:"transaction"`
	}

	body := struct {
		RechargeRequest
		UserID         string `json:"user_id"`
		IdempotencyKey string `json:"idempotency_key"`
	}{
		RechargeRequest: req,
		UserID:          userID,
		IdempotencyKey:  uuid.NewString(),
	}
	if err := c.post(ctx, "/recharge", body, &data); err != nil {
		return nil, err
	}
	return &data.Transaction, nil
}

// FundRequestInput is the validated payload for a fund request.
type FundRequestInput struct {
	Bank   string `json:"bank"`
	Mode   string `json:"mode"`
	UTR    string `json:"utr"`
	Amount string `json:"amount"`
	Remark string `json:"remark"`
}

// CreateFundRequest submits a wallet load request.
func (c *Client) CreateFundRequest(ctx context.Context, userID string, input FundRequestInput) (*model.FundRequest, error) {
	var data struct {
		Request model.FundRequest `json:"fund_request"`
	}

	body := struct {
		FundRequestInput
		UserID         string `json:"user_id"`
		IdempotencyKey string `json:"idempotency_key"`
	}{
		FundRequestInput: input,
		UserID:           userID,
		IdempotencyKey:   uuid.NewString(),
	}
	if err := c.post(ctx, "/fund-requests", body, &data); err != nil {
		return nil, err
	}
	return &data.Request, nil
}

// BeneficiaryInput is the validated payload for adding a beneficiary.
type BeneficiaryInput struct {
	Name    string `json:"name"`
	Bank    string `json:"bank"`
	Account string `json:"account_number"`
	IFSC    string `json:"ifsc"`
	Mobile  string `json:"mobile"`
}

// AddBeneficiary registers a new money-transfer recipient.
func (c *Client) AddBeneficiary(ctx context.Context, userID string, input BeneficiaryInput) (*model.Beneficiary, error) {
	var data struct {
		Beneficiary model.Beneficiary `json:"beneficiary"`
	}

	body := struct {
		BeneficiaryInput
		UserID string `json:"user_id"`
	}{
		BeneficiaryInput: input,
		UserID:           userID,
	}
	if err := c.post(ctx, "/beneficiaries", body, &data); err != nil {
		return nil, err
	}
	return &data.Beneficiary, nil
}

// DeleteBeneficiary removes a saved beneficiary.
func (c *Client) DeleteBeneficiary(ctx context.Context, userID, beneficiaryID string) error {
	body := map[string]string{
		"user_id":        userID,
		"beneficiary_id": beneficiaryID,
	}
	return c.post(ctx, "/beneficiaries/delete", body, nil)
}
