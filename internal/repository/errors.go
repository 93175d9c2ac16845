package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
	"github.com/umyrahbh/healthassist/internal/domain"
)

// pq class 08, connection exception.
const pgConnExceptionClass = "08"

// storeErr folds connection-level driver faults into domain.ErrUnavailable
// so callers can distinguish a retryable outage from a real failure. All
// other errors pass through unchanged.
func storeErr(err error) error {
	if isConnErr(err) {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return err
}

func isConnErr(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code.Class() == pgConnExceptionClass
}
