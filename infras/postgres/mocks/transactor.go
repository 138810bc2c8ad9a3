package mocks

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/mock/gomock"
)

// PassThroughTx makes every WithinTx call run its callback with a nil transaction
// and return whatever the callback returns.
func PassThroughTx(m *MockTransactor) {
	m.EXPECT().
		WithinTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sql.TxOptions, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()
}
