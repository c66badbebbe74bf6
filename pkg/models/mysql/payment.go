package mysql

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/autocredits/brokerd/pkg/ledger"
	"github.com/autocredits/brokerd/pkg/models"
	"github.com/autocredits/brokerd/pkg/sql/queries"
	"github.com/ssrdive/mysequel"
)

// PaymentModel struct holds database instance
type PaymentModel struct {
	DB *sql.DB
}

// Get returns the stored payment record for a loan
func (m *PaymentModel) Get(lid int) (ledger.PaymentRecord, error) {
	var id, loanID int
	var raw []byte
	var updated string

	err := m.DB.QueryRow(queries.PAYMENT_RECORD_BY_LOAN, lid).Scan(&id, &loanID, &raw, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.PaymentRecord{}, models.ErrNoRecord
		}
		return ledger.PaymentRecord{}, err
	}

	var rec ledger.PaymentRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return ledger.PaymentRecord{}, err
	}

	return rec, nil
}

// Upsert replaces the stored payment record for a loan whole
func (m *PaymentModel) Upsert(lid int, rec ledger.PaymentRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	tx, err := m.DB.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		_ = tx.Commit()
	}()

	_, err = tx.Exec(queries.DELETE_PAYMENT_RECORD, lid)
	if err != nil {
		return err
	}

	_, err = mysequel.Insert(mysequel.Table{
		TableName: "payment_record",
		Columns:   []string{"loan_id", "record", "updated"},
		Vals:      []interface{}{lid, raw, time.Now().Format("2006-01-02 15:04:05")},
		Tx:        tx,
	})
	if err != nil {
		return err
	}

	return nil
}
