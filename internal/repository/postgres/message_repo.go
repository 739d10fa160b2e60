package postgres

import (
	"context"
	"errors"

	"go-gladiator-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (sender_id, recipient_id, subject, message, read, created_at)
              VALUES ($1, $2, $3, $4, false, NOW())
              RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		msg.SenderID, msg.RecipientID, msg.Subject, msg.Body,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *messageRepo) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	query := `SELECT id, sender_id, recipient_id, subject, message, read, created_at
              FROM messages WHERE id = $1`
	var msg domain.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&msg.ID, &msg.SenderID, &msg.RecipientID, &msg.Subject, &msg.Body, &msg.Read, &msg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepo) FetchByUser(ctx context.Context, userID string) ([]domain.MessageWithParties, error) {
	query := `
		SELECT
			m.id, m.sender_id, m.recipient_id, m.subject, m.message, m.read, m.created_at,
			s.full_name, s.avatar_url, s.user_type,
			rc.full_name, rc.avatar_url, rc.user_type
		FROM messages m
		JOIN profiles s ON s.id = m.sender_id
		JOIN profiles rc ON rc.id = m.recipient_id
		WHERE m.sender_id = $1 OR m.recipient_id = $1
		ORDER BY m.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.MessageWithParties
	for rows.Next() {
		var m domain.MessageWithParties
		if err := rows.Scan(
			&m.ID, &m.SenderID, &m.RecipientID, &m.Subject, &m.Body, &m.Read, &m.CreatedAt,
			&m.SenderName, &m.SenderAvatarURL, &m.SenderUserType,
			&m.RecipientName, &m.RecipientAvatarURL, &m.RecipientUserType,
		); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *messageRepo) MarkRead(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE messages SET read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
