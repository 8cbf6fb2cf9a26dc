package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/anchorhq/anchor/internal/model"
)

var (
	ErrContactNotFound = errors.New("contact not found")
)

type ContactRepository interface {
	Create(contact *model.Contact) error
	ByID(userID, contactID string) (*model.Contact, error)
	Contacts(userID string) ([]*model.Contact, error)
	Update(contact *model.Contact) error
	Delete(userID, contactID string) error
}

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(contact *model.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	now := time.Now()
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = now
	}
	contact.UpdatedAt = now

	query := `INSERT INTO contacts (id, user_id, name, relationship, phone, notes, is_sponsor, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		contact.ID,
		contact.UserID,
		contact.Name,
		contact.Relationship,
		contact.Phone,
		contact.Notes,
		contact.IsSponsor,
		contact.CreatedAt,
		contact.UpdatedAt,
	)

	return err
}

func (r *contactRepository) ByID(userID, contactID string) (*model.Contact, error) {
	contact := &model.Contact{}
	query := `SELECT * FROM contacts WHERE id = $1 AND user_id = $2`

	err := r.db.Get(contact, query, contactID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrContactNotFound
	}

	return contact, err
}

func (r *contactRepository) Contacts(userID string) ([]*model.Contact, error) {
	var contacts []*model.Contact
	query := `SELECT * FROM contacts WHERE user_id = $1 ORDER BY is_sponsor DESC, name ASC`

	err := r.db.Select(&contacts, query, userID)
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

func (r *contactRepository) Update(contact *model.Contact) error {
	query := `UPDATE contacts
	          SET name = $1, relationship = $2, phone = $3, notes = $4, is_sponsor = $5, updated_at = $6
	          WHERE id = $7 AND user_id = $8`

	result, err := r.db.Exec(query,
		contact.Name,
		contact.Relationship,
		contact.Phone,
		contact.Notes,
		contact.IsSponsor,
		time.Now(),
		contact.ID,
		contact.UserID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrContactNotFound
	}

	return nil
}

func (r *contactRepository) Delete(userID, contactID string) error {
	query := `DELETE FROM contacts WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, contactID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrContactNotFound
	}

	return nil
}
