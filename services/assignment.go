package services

import (
	"fmt"

	"go.uber.org/zap"

	"lms/models"
	"lms/store"
)

// AssignmentService drives the assignment workflow. Grading is not exposed
// here: feedback and grades arrive as seeded or externally authored data,
// the learner-side operation is Submit.
type AssignmentService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewAssignmentService(st *store.Store, log *zap.SugaredLogger) *AssignmentService {
	return &AssignmentService{store: st, log: log}
}

type submitInput struct {
	Submission string `validate:"required"`
}

// Submit moves an assignment to submitted and records the submission URL.
// Legal only from pending, or from rejected when the learner resubmits
// after a "needs revision" verdict. Earlier feedback and grade are kept.
func (as *AssignmentService) Submit(assignmentID, submissionURL string) error {
	if err := validate.Struct(submitInput{Submission: submissionURL}); err != nil {
		return fmt.Errorf("%w: submission url must not be empty", ErrValidation)
	}
	return as.store.Transaction(func(tx *store.Store) error {
		assignment, err := tx.GetAssignment(assignmentID)
		if err != nil {
			return err
		}
		switch assignment.Status {
		case models.StatusPending, models.StatusRejected:
			// legal submit sources
		case models.StatusSubmitted, models.StatusReviewed, models.StatusApproved:
			return fmt.Errorf("%w: assignment %q is already %s",
				ErrInvalidTransition, assignmentID, assignment.Status)
		default:
			return fmt.Errorf("%w: assignment %q has unknown status %q",
				ErrInvalidTransition, assignmentID, assignment.Status)
		}
		assignment.Status = models.StatusSubmitted
		assignment.Submission = submissionURL
		if err := tx.PutAssignment(assignment); err != nil {
			return err
		}
		as.log.Infow("assignment submitted", "assignment", assignmentID)
		return nil
	})
}
