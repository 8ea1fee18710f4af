package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hfaria/ventura/internal/user"
)

// Creator is the slice of the user service the importer needs.
type Creator interface {
	Create(ctx context.Context, params user.CreateParams) (*user.User, error)
}

// RowError reports why a single CSV line was skipped.
type RowError struct {
	Line  int    `json:"line"`
	Email string `json:"email"`
	Cause string `json:"cause"`
}

// Report summarizes one bulk import run.
type Report struct {
	Created []*user.User `json:"created"`
	Skipped []RowError   `json:"skipped"`
}

type Service struct {
	users Creator
}

func NewService(users Creator) *Service {
	return &Service{users: users}
}

// Import parses the CSV and creates each account. Bad rows, including
// duplicate emails, are reported in the result rather than aborting
// the run.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Report, error) {
	rows, err := Parse(r)
	if err != nil {
		return nil, err
	}

	report := &Report{}

	for _, row := range rows {
		u, err := s.users.Create(ctx, row.Params)
		if err != nil {
			if errors.Is(err, user.ErrEmailTaken) || errors.Is(err, user.ErrValidation) {
				report.Skipped = append(report.Skipped, RowError{
					Line:  row.Line,
					Email: row.Params.Email,
					Cause: err.Error(),
				})

				continue
			}

			return nil, fmt.Errorf("creating user from line %d: %w", row.Line, err)
		}

		report.Created = append(report.Created, u)
	}

	return report, nil
}
