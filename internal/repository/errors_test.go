package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umyrahbh/healthassist/internal/domain"
)

func TestStoreErr_MapsConnectionFaults(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{
			name: "dial refused",
			err: &net.OpError{
				Op:  "dial",
				Net: "tcp",
				Err: errors.New("connect: connection refused"),
			},
		},
		{
			name: "bad conn",
			err:  driver.ErrBadConn,
		},
		{
			name: "pg connection exception",
			err:  &pq.Error{Code: "08006", Message: "connection failure"},
		},
		{
			name: "wrapped dial error",
			err: fmt.Errorf("slot availability: %w", &net.OpError{
				Op:  "dial",
				Net: "tcp",
				Err: errors.New("connect: connection refused"),
			}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, storeErr(tc.err), domain.ErrUnavailable)
		})
	}
}

func TestStoreErr_PassesThroughOtherErrors(t *testing.T) {
	uniqueViolation := &pq.Error{Code: "23505", Constraint: "users_username_key"}
	assert.NotErrorIs(t, storeErr(uniqueViolation), domain.ErrUnavailable)

	plain := errors.New("scan appointment: unexpected column")
	assert.Equal(t, plain, storeErr(plain))
}
