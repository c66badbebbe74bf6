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

// DeliveryOrderModel struct holds database instance
type DeliveryOrderModel struct {
	DB *sql.DB
}

// Get returns the stored delivery order facts for a loan
func (m *DeliveryOrderModel) Get(lid int) (ledger.Facts, error) {
	var id, loanID int
	var raw []byte
	var updated string

	err := m.DB.QueryRow(queries.DELIVERY_ORDER_BY_LOAN, lid).Scan(&id, &loanID, &raw, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.Facts{}, models.ErrNoRecord
		}
		return ledger.Facts{}, err
	}

	var f ledger.Facts
	if err := json.Unmarshal(raw, &f); err != nil {
		return ledger.Facts{}, err
	}

	return f, nil
}

// Upsert replaces the stored facts for a loan whole
func (m *DeliveryOrderModel) Upsert(lid int, f ledger.Facts) error {
	raw, err := json.Marshal(f)
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

	_, err = tx.Exec(queries.DELETE_DELIVERY_ORDER, lid)
	if err != nil {
		return err
	}

	_, err = mysequel.Insert(mysequel.Table{
		TableName: "delivery_order",
		Columns:   []string{"loan_id", "facts", "updated"},
		Vals:      []interface{}{lid, raw, time.Now().Format("2006-01-02 15:04:05")},
		Tx:        tx,
	})
	if err != nil {
		return err
	}

	return nil
}
