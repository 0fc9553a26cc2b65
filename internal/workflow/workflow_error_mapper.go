package workflow

import (
	"errors"
	"strings"

	workflowerrors "go-invmis/internal/workflow/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return workflowerrors.ErrWorkflowNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_workflow_name":
			return workflowerrors.ErrWorkflowNameExists
		case "uq_workflow_approver":
			return workflowerrors.ErrApproverExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_workflow_name") {
		return workflowerrors.ErrWorkflowNameExists
	}

	return err
}
