package transactions

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/helpers"
	"ludoadmin/metrics"
	"ludoadmin/stores"
)

const dateLayout = "2006-01-02"

// List loads the transaction listing and filters it by ?type, ?originalType,
// ?status, ?userId, ?search, ?from and ?to (YYYY-MM-DD, inclusive).
func List(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := metrics.TransactionFilter{
			Type:         c.Query("type"),
			OriginalType: c.Query("originalType"),
			Status:       c.Query("status"),
			UserID:       c.Query("userId"),
			Search:       c.Query("search"),
		}
		if v := c.Query("from"); v != "" {
			from, err := time.Parse(dateLayout, v)
			if err != nil {
				return helpers.JSONError(c, "INVALID_FROM_DATE")
			}
			filter.From = from
		}
		if v := c.Query("to"); v != "" {
			to, err := time.Parse(dateLayout, v)
			if err != nil {
				return helpers.JSONError(c, "INVALID_TO_DATE")
			}
			filter.To = to.Add(24*time.Hour - time.Nanosecond)
		}

		store := reg.Transactions
		_ = store.FetchTransactions(c.UserContext())

		filtered := store.Filter(filter)
		page, pagination := metrics.Paginate(filtered, c.QueryInt("page", 1), c.QueryInt("pageSize", 20))

		return helpers.JSONSuccess(c, "Transactions retrieved successfully", fiber.Map{
			"transactions": page,
			"pagination":   pagination,
			"stats":        store.Stats(),
			"loading":      store.LoadingAll(),
			"errors":       store.Errors(),
		})
	}
}

type StatusRequest struct {
	Status string `json:"status"`
}

func SetStatus(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req StatusRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if err := reg.Transactions.UpdateTransactionStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Transaction status updated", reg.Transactions.Stats())
	}
}
