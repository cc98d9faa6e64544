package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutorboard/internal/model"
)

type ChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

// GetByStudent получает чат студента, если он существует
func (r *ChatRepository) GetByStudent(ctx context.Context, ownerID, studentID uuid.UUID) (*model.StudentChat, error) {
	query := `
		SELECT id, owner_id, student_id, created_at
		FROM student_ai_chats
		WHERE owner_id = $1 AND student_id = $2
	`

	var chat model.StudentChat
	err := r.pool.QueryRow(ctx, query, ownerID, studentID).Scan(
		&chat.ID,
		&chat.OwnerID,
		&chat.StudentID,
		&chat.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get chat by student: %w", err)
	}

	return &chat, nil
}

// Create создаёт чат для студента (один чат на студента)
func (r *ChatRepository) Create(ctx context.Context, chat *model.StudentChat) error {
	query := `
		INSERT INTO student_ai_chats (owner_id, student_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, chat.OwnerID, chat.StudentID).
		Scan(&chat.ID, &chat.CreatedAt)
	if err != nil {
		return fmt.Errorf("create chat: %w", err)
	}

	return nil
}

// ListMessages получает сообщения чата в хронологическом порядке
func (r *ChatRepository) ListMessages(ctx context.Context, chatID uuid.UUID) ([]*model.ChatMessage, error) {
	query := `
		SELECT id, chat_id, role, content, created_at
		FROM student_ai_messages
		WHERE chat_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []*model.ChatMessage
	for rows.Next() {
		var message model.ChatMessage
		err := rows.Scan(
			&message.ID,
			&message.ChatID,
			&message.Role,
			&message.Content,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat messages: %w", err)
	}

	return messages, nil
}

// CreateMessage сохраняет сообщение в чате
func (r *ChatRepository) CreateMessage(ctx context.Context, message *model.ChatMessage) error {
	query := `
		INSERT INTO student_ai_messages (chat_id, role, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, message.ChatID, message.Role, message.Content).
		Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return fmt.Errorf("create chat message: %w", err)
	}

	return nil
}
