package mysql

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/autocredits/brokerd/pkg/models"
	"github.com/autocredits/brokerd/pkg/sql/queries"
	"github.com/ssrdive/mysequel"
)

// LoanModel struct holds database instance
type LoanModel struct {
	DB *sql.DB
}

// Insert creates a new loan
func (m *LoanModel) Insert(userID int, customerName, customerNIC, customerAddress, customerContact string, modelID int, chassisNumber string, financed bool, bankID int) (int64, error) {
	tx, err := m.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		_ = tx.Commit()
	}()

	var bank interface{}
	if bankID != 0 {
		bank = bankID
	}

	lid, err := mysequel.Insert(mysequel.Table{
		TableName: "loan",
		Columns:   []string{"user_id", "customer_name", "customer_nic", "customer_address", "customer_contact", "model_id", "chassis_number", "financed", "bank_id", "created"},
		Vals:      []interface{}{userID, customerName, customerNIC, customerAddress, customerContact, modelID, chassisNumber, financed, bank, time.Now().Format("2006-01-02 15:04:05")},
		Tx:        tx,
	})
	if err != nil {
		return 0, err
	}

	return lid, nil
}

// Get returns loan details
func (m *LoanModel) Get(lid int) (*models.Loan, error) {
	l := &models.Loan{}

	err := m.DB.QueryRow(queries.LOAN_DETAILS, lid).Scan(&l.ID, &l.CustomerName, &l.CustomerNIC, &l.CustomerAddress, &l.CustomerContact, &l.VehicleModel, &l.ChassisNumber, &l.Financed, &l.Bank, &l.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNoRecord
		}
		return nil, err
	}

	return l, nil
}

// Latest returns the most recently created loans
func (m *LoanModel) Latest() ([]models.LoanSearchResult, error) {
	var res []models.LoanSearchResult
	err := mysequel.QueryToStructs(&res, m.DB, queries.LATEST_LOANS)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Search returns loans matching the given search key and financed filter
func (m *LoanModel) Search(search, financed string) ([]models.LoanSearchResult, error) {
	q := sq.
		Select("L.id", "L.customer_name", "M.name AS vehicle_model", "L.chassis_number", "L.financed", "COALESCE(B.name, '') AS bank", "L.created").
		From("loan L").
		LeftJoin("model M ON M.id = L.model_id").
		LeftJoin("bank B ON B.id = L.bank_id").
		OrderBy("L.created DESC")

	if search != "" {
		q = q.Where("CONCAT(L.id, L.customer_name, L.chassis_number, L.customer_nic, L.customer_contact) LIKE ?", fmt.Sprintf("%%%s%%", search))
	}
	if financed != "" {
		q = q.Where(sq.Eq{"L.financed": financed})
	}

	stmt, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var res []models.LoanSearchResult
	err = mysequel.QueryToStructs(&res, m.DB, stmt, args...)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Documents returns the documents uploaded against a loan
func (m *LoanModel) Documents(lid int) ([]models.LoanDocument, error) {
	var res []models.LoanDocument
	err := mysequel.QueryToStructs(&res, m.DB, queries.LOAN_DOCUMENTS, lid)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// AddDocument stores an uploaded document reference against a loan
func (m *LoanModel) AddDocument(loanID, documentID, userID int, s3bucket, s3region, source string) (int64, error) {
	tx, err := m.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		_ = tx.Commit()
	}()

	did, err := mysequel.Insert(mysequel.Table{
		TableName: "loan_document",
		Columns:   []string{"loan_id", "document_id", "user_id", "s3bucket", "s3region", "source", "created"},
		Vals:      []interface{}{loanID, documentID, userID, s3bucket, s3region, source, time.Now().Format("2006-01-02 15:04:05")},
		Tx:        tx,
	})
	if err != nil {
		return 0, err
	}

	return did, nil
}
