package withdrawals

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"ludoadmin/helpers"
	"ludoadmin/stores"
)

func Pending(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := reg.Transactions
		_ = store.FetchPendingWithdrawals(c.UserContext())

		pending := store.PendingWithdrawals()
		total := decimal.Zero
		for _, w := range pending {
			total = total.Add(w.Amount)
		}

		return helpers.JSONSuccess(c, "Pending withdrawals retrieved successfully", fiber.Map{
			"pendingWithdrawals": pending,
			"count":              len(pending),
			"totalAmount":        helpers.Birr(total),
			"loading":            store.LoadingAll(),
			"errors":             store.Errors(),
		})
	}
}

func Approve(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := reg.Transactions.ApproveWithdrawal(c.UserContext(), c.Params("id")); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Withdrawal approved", fiber.Map{
			"pendingWithdrawals": reg.Transactions.PendingWithdrawals(),
		})
	}
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func Reject(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RejectRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return helpers.JSONError(c, "INVALID_JSON")
			}
		}
		if err := reg.Transactions.RejectWithdrawal(c.UserContext(), c.Params("id"), req.Reason); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Withdrawal rejected", fiber.Map{
			"pendingWithdrawals": reg.Transactions.PendingWithdrawals(),
		})
	}
}
