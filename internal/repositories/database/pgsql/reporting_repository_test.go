package pgsql

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var _ pgx.Rows = (*fakeRows)(nil)

// fakeRows yields n rows and fails on Scan or at the end of iteration.
type fakeRows struct {
	n       int
	scanErr error
	iterErr error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.iterErr }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeRows) Scan(...any) error                            { return r.scanErr }

func (r *fakeRows) Next() bool {
	if r.n == 0 {
		return false
	}
	r.n--
	return true
}

func TestReporting_GetFishTypeTotalsErrors(t *testing.T) {
	tests := []struct {
		name    string
		rows    *fakeRows
		wantMsg string
	}{
		{"scan", &fakeRows{n: 1, scanErr: errors.New("cannot scan NULL into *string")}, "failed to scan fish type totals"},
		{"iterate", &fakeRows{iterErr: errors.New("unexpected EOF")}, "failed to iterate fish type totals"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(mockQuerier)
			q.On("Query", mock.Anything, sqlContains("GROUP BY fish_type"), mock.Anything).Return(tt.rows, nil).Once()
			repo := &reportingRepository{db: q}

			_, err := repo.GetFishTypeTotals(context.Background(), "c1", domain.SaleFilter{})

			require.Error(t, err)
			assert.Equal(t, http.StatusInternalServerError, apperrors.HTTPStatus(err))
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.True(t, tt.rows.closed)
			q.AssertExpectations(t)
		})
	}
}

func TestReporting_GetClientBoard(t *testing.T) {
	t.Run("scan error", func(t *testing.T) {
		q := new(mockQuerier)
		q.On("Query", mock.Anything, sqlContains("balance > 0"), []any{"c1"}).
			Return(&fakeRows{n: 1, scanErr: errors.New("numeric overflow")}, nil).Once()
		repo := &reportingRepository{db: q}

		_, err := repo.GetClientBoard(context.Background(), "c1", domain.BalanceDebt)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "failed to scan client board", appErr.Message)
		q.AssertExpectations(t)
	})

	t.Run("unknown board", func(t *testing.T) {
		q := new(mockQuerier)
		repo := &reportingRepository{db: q}

		_, err := repo.GetClientBoard(context.Background(), "c1", domain.BalanceKind("owed"))

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		q.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
	})
}
