package approval

import (
	"errors"
	"strings"

	approvalerrors "go-invmis/internal/approval/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return approvalerrors.ErrApprovalNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_approval_request":
			return approvalerrors.ErrApprovalExists
		case "uq_approval_history_step":
			// A concurrent transition took the step number first.
			return approvalerrors.ErrNotCurrentApprover
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "uq_approval_request") {
		return approvalerrors.ErrApprovalExists
	}
	return err
}
