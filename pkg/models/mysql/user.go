package mysql

import (
	"database/sql"
	"errors"

	"github.com/autocredits/brokerd/pkg/models"
	"github.com/autocredits/brokerd/pkg/sql/queries"
	"golang.org/x/crypto/bcrypt"
)

// UserModel struct holds methods to query user table
type UserModel struct {
	DB *sql.DB
}

// Get returns the user after validating the given credentials
func (m *UserModel) Get(username, password string) (*models.User, error) {
	u := &models.User{}

	err := m.DB.QueryRow(queries.USER_BY_USERNAME, username).Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNoRecord
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return nil, err
	}

	return u, nil
}
