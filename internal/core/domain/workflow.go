package domain

import (
	"fmt"
	"slices"

	"github.com/SscSPs/investment_club/internal/apperrors"
)

// Workflow is a one-shot status machine: items start in Open and move once
// to one of the Terminal statuses. There is no way back to Open.
type Workflow[S ~string] struct {
	Open     S
	Terminal []S
}

// IsOpen reports whether s is the workflow's open status.
func (w Workflow[S]) IsOpen(s S) bool {
	return s == w.Open
}

// IsTerminal reports whether s is one of the workflow's terminal statuses.
func (w Workflow[S]) IsTerminal(s S) bool {
	return slices.Contains(w.Terminal, s)
}

// Transition validates a move from current to next.
func (w Workflow[S]) Transition(current, next S) error {
	if !w.IsTerminal(next) {
		return fmt.Errorf("%w: %q is not a valid target status", apperrors.ErrValidation, next)
	}
	if !w.IsOpen(current) {
		return fmt.Errorf("%w: item is already %s", apperrors.ErrStateConflict, current)
	}
	return nil
}

var (
	ProposalWorkflow = Workflow[ProposalStatus]{
		Open:     ProposalOpen,
		Terminal: []ProposalStatus{ProposalPassed, ProposalFailed},
	}
	AssistanceWorkflow = Workflow[ApprovalStatus]{
		Open:     StatusPending,
		Terminal: []ApprovalStatus{StatusApproved, StatusRejected},
	}
	ListingWorkflow = Workflow[ApprovalStatus]{
		Open:     StatusPending,
		Terminal: []ApprovalStatus{StatusApproved, StatusRejected},
	}
	EventWorkflow = Workflow[ApprovalStatus]{
		Open:     StatusPending,
		Terminal: []ApprovalStatus{StatusApproved, StatusRejected},
	}
	WithdrawalWorkflow = Workflow[WithdrawalStatus]{
		Open:     WithdrawalPending,
		Terminal: []WithdrawalStatus{WithdrawalCompleted, WithdrawalRejected},
	}
)
