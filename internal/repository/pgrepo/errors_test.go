package pgrepo

import (
	"errors"
	"testing"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "unique", err: &pgconn.PgError{Code: uniqueViolationCode}, want: domain.ErrDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: foreignKeyViolationCode}, want: domain.ErrRecordNotFound},
		{name: "other pg", err: &pgconn.PgError{Code: "42P01"}, want: domain.ErrUnknown},
		{name: "plain", err: errors.New("boom"), want: domain.ErrUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := convertErr(tc.err, "finding user %d", 1)
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "[repository/finding user 1]")
		})
	}

	assert.NoError(t, convertErr(nil, "noop"))
}

func TestAffectedOne(t *testing.T) {
	require.ErrorIs(t, affectedOne(pgconn.NewCommandTag("UPDATE 0"), "updating"), domain.ErrRecordNotFound)
	require.NoError(t, affectedOne(pgconn.NewCommandTag("UPDATE 1"), "updating"))
}
