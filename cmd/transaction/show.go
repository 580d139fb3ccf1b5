package transaction

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/store"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc *service.Service
}

func NewShowCmd(svc func() *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show one transfer with both accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc: svc(),
			}
			return runner.Run(args)
		},
	}
}

func (r *ShowCommandRunner) Run(args []string) error {
	txID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || txID <= 0 {
		return fmt.Errorf("invalid transaction ID: %s", args[0])
	}

	detail, err := r.svc.Transaction.GetTransactionByID(txID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return fmt.Errorf("transaction #%d not found", txID)
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	return views.RenderTransactionDetail(detail)
}
