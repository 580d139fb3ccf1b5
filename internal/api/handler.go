package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *service.Service
	logger *zap.Logger
}

func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// executeTransaction handles POST /api/executeTransaction.
func (h *Handler) executeTransaction(c *fiber.Ctx) error {
	batch, err := DecodeBatch(c.Body())
	if err != nil {
		h.logger.Debug("undecodable transfer batch", zap.Error(err))
		return badRequest(c, ErrInvalidFormat.Error())
	}

	if _, err := h.svc.Executor.ExecuteBatch(batch); err != nil {
		var te *service.TransferError
		if errors.As(err, &te) && te.CallerError() {
			return transferRejected(c, te)
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) listAccounts(c *fiber.Ctx) error {
	accounts, err := h.svc.Account.GetAllAccounts()
	if err != nil {
		h.logger.Error("failed to list accounts", zap.Error(err))
		return internalError(c)
	}

	out := make([]AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, toAccountResponse(acc))
	}
	return c.JSON(out)
}

func (h *Handler) getAccount(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	acc, err := h.svc.Account.GetAccount(id)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return notFound(c, "account not found")
		}
		h.logger.Error("failed to get account", zap.Int64("account_id", id), zap.Error(err))
		return internalError(c)
	}
	return c.JSON(toAccountResponse(acc))
}

// listTransactions handles GET /api/transactions?limit=&account=.
func (h *Handler) listTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", constants.DefaultListLimit)

	var (
		details []*service.TransactionDetail
		err     error
	)
	if raw := c.Query("account"); raw != "" {
		accountID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return badRequest(c, "invalid account id")
		}
		details, err = h.svc.Transaction.GetTransactionHistory(accountID, limit)
	} else {
		details, err = h.svc.Transaction.GetRecentTransactions(limit)
	}
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return notFound(c, "account not found")
		}
		h.logger.Error("failed to list transactions", zap.Error(err))
		return internalError(c)
	}

	out := make([]TransactionResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toTransactionResponse(d))
	}
	return c.JSON(out)
}
