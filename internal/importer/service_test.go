package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfaria/ventura/internal/importer"
	"github.com/hfaria/ventura/internal/user"
)

// fakeCreator records created accounts and fails the emails it is told
// to fail.
type fakeCreator struct {
	failWith map[string]error
	created  []string
}

func (f *fakeCreator) Create(_ context.Context, params user.CreateParams) (*user.User, error) {
	if err, ok := f.failWith[params.Email]; ok {
		return nil, err
	}

	f.created = append(f.created, params.Email)

	return &user.User{
		ID:        uuid.New(),
		Name:      params.Name,
		Email:     params.Email,
		Role:      params.Role,
		IsActive:  true,
		CreatedAt: time.Now(),
	}, nil
}

func TestService_Import(t *testing.T) {
	input := "name,email,password,role\n" +
		"Maria Silva,maria@example.com,secret123,investor\n" +
		"Rui Costa,rui@example.com,secret456,investor\n" +
		"Ana Sousa,ana@example.com,secret789,investor\n"

	creator := &fakeCreator{
		failWith: map[string]error{
			"rui@example.com": user.ErrEmailTaken,
		},
	}

	svc := importer.NewService(creator)
	report, err := svc.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, report.Created, 2)
	assert.Equal(t, []string{"maria@example.com", "ana@example.com"}, creator.created)

	require.Len(t, report.Skipped, 1)
	assert.Equal(t, 3, report.Skipped[0].Line)
	assert.Equal(t, "rui@example.com", report.Skipped[0].Email)
}

func TestService_Import_ValidationFailuresAreSkipped(t *testing.T) {
	input := "name,email,password,role\n" +
		"Maria Silva,maria@example.com,abc,investor\n" +
		"Rui Costa,rui@example.com,secret456,investor\n"

	creator := &fakeCreator{
		failWith: map[string]error{
			"maria@example.com": user.ErrValidation,
		},
	}

	svc := importer.NewService(creator)
	report, err := svc.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, report.Created, 1)
	assert.Len(t, report.Skipped, 1)
}

func TestService_Import_InfrastructureErrorAborts(t *testing.T) {
	input := "name,email,password,role\n" +
		"Maria Silva,maria@example.com,secret123,investor\n"

	creator := &fakeCreator{
		failWith: map[string]error{
			"maria@example.com": errors.New("db connection lost"),
		},
	}

	svc := importer.NewService(creator)
	_, err := svc.Import(context.Background(), strings.NewReader(input))
	assert.Error(t, err)
}

func TestService_Import_BadCsv(t *testing.T) {
	svc := importer.NewService(&fakeCreator{})

	_, err := svc.Import(context.Background(), strings.NewReader("no header here\n"))
	assert.Error(t, err)
}
