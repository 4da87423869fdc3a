package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const (
	conversationsTable = "chat_conversations"
	messagesTable      = "chat_messages"
)

var conversationColumns = []string{
	"cv.id", "cv.manager_id", "TRIM(mu.name || ' ' || mu.lastname)",
	"cv.client_user_id", "TRIM(cu.name || ' ' || cu.lastname)", "cv.created_at", "cv.updated_at",
}

var messageColumns = []string{"id", "conversation_id", "sender_id", "content", "read", "read_at", "created_at"}

type ChatRepository interface {
	GetOrCreateConversation(ctx context.Context, managerID, clientUserID int) (*domain.Conversation, error)
	GetConversation(ctx context.Context, id int64) (*domain.Conversation, error)
	ListConversations(ctx context.Context, participantID *int, viewerID int) ([]*domain.Conversation, error)
	ListMessages(ctx context.Context, conversationID int64, filters domain.MessageFilters) ([]*domain.Message, error)
	CreateMessage(ctx context.Context, message *domain.Message) error
	MarkRead(ctx context.Context, conversationID int64, readerID int) (int64, error)
}

type chatRepository struct {
	conn postgres.Queryer
}

func NewChatRepository(conn postgres.Queryer) ChatRepository {
	return &chatRepository{conn: conn}
}

// GetOrCreateConversation garante uma única conversa por par gestor/cliente
func (r *chatRepository) GetOrCreateConversation(ctx context.Context, managerID, clientUserID int) (*domain.Conversation, error) {
	query, args, err := psql.
		Insert(conversationsTable).
		Columns("manager_id", "client_user_id").
		Values(managerID, clientUserID).
		Suffix("ON CONFLICT (manager_id, client_user_id) DO UPDATE SET updated_at = chat_conversations.updated_at RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("erro ao criar conversa: %w", err)
	}

	return r.GetConversation(ctx, id)
}

func (r *chatRepository) GetConversation(ctx context.Context, id int64) (*domain.Conversation, error) {
	query, args, err := psql.
		Select(conversationColumns...).
		From("chat_conversations cv").
		Join("users mu ON mu.id = cv.manager_id").
		Join("users cu ON cu.id = cv.client_user_id").
		Where(squirrel.Eq{"cv.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var c domain.Conversation
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.ManagerID, &c.ManagerName, &c.ClientUserID, &c.ClientName, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear conversa: %w", err)
	}

	return &c, nil
}

// ListConversations traz a última mensagem e o total de não lidas do ponto de
// vista de viewerID. participantID nil lista todas as conversas.
func (r *chatRepository) ListConversations(ctx context.Context, participantID *int, viewerID int) ([]*domain.Conversation, error) {
	builder := psql.
		Select(conversationColumns...).
		Columns("lm.id", "lm.sender_id", "lm.content", "lm.read", "lm.read_at", "lm.created_at").
		Column(squirrel.Expr(
			"(SELECT COUNT(*) FROM chat_messages um WHERE um.conversation_id = cv.id AND um.read = FALSE AND um.sender_id <> ?)",
			viewerID,
		)).
		From("chat_conversations cv").
		Join("users mu ON mu.id = cv.manager_id").
		Join("users cu ON cu.id = cv.client_user_id").
		LeftJoin(`LATERAL (
			SELECT id, sender_id, content, read, read_at, created_at
			FROM chat_messages
			WHERE conversation_id = cv.id
			ORDER BY id DESC
			LIMIT 1
		) lm ON TRUE`).
		OrderBy("COALESCE(lm.created_at, cv.updated_at) DESC")

	if participantID != nil {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"cv.manager_id": *participantID},
			squirrel.Eq{"cv.client_user_id": *participantID},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	conversations := make([]*domain.Conversation, 0)
	for rows.Next() {
		var (
			c         domain.Conversation
			msgID     sql.NullInt64
			senderID  sql.NullInt64
			content   sql.NullString
			read      sql.NullBool
			readAt    *time.Time
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&c.ID, &c.ManagerID, &c.ManagerName, &c.ClientUserID, &c.ClientName, &c.CreatedAt, &c.UpdatedAt,
			&msgID, &senderID, &content, &read, &readAt, &createdAt,
			&c.UnreadCount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conversa: %w", err)
		}

		if msgID.Valid {
			c.LastMessage = &domain.Message{
				ID:             msgID.Int64,
				ConversationID: c.ID,
				SenderID:       int(senderID.Int64),
				Content:        content.String,
				Read:           read.Bool,
				ReadAt:         readAt,
				CreatedAt:      createdAt.Time,
			}
		}

		conversations = append(conversations, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return conversations, nil
}

// ListMessages pagina de trás para frente e devolve em ordem de inserção
func (r *chatRepository) ListMessages(ctx context.Context, conversationID int64, filters domain.MessageFilters) ([]*domain.Message, error) {
	builder := psql.
		Select(messageColumns...).
		From(messagesTable).
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("id DESC").
		Limit(uint64(filters.Limit))

	if filters.BeforeID != nil {
		builder = builder.Where(squirrel.Lt{"id": *filters.BeforeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0, filters.Limit)
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear mensagem: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

const insertMessageQuery = `
WITH touched AS (
	UPDATE chat_conversations SET updated_at = NOW() WHERE id = $1
)
INSERT INTO chat_messages (conversation_id, sender_id, content)
VALUES ($1, $2, $3)
RETURNING id, read, created_at`

func (r *chatRepository) CreateMessage(ctx context.Context, message *domain.Message) error {
	err := r.conn.QueryRowContext(ctx, insertMessageQuery, message.ConversationID, message.SenderID, message.Content).
		Scan(&message.ID, &message.Read, &message.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar mensagem: %w", err)
	}

	return nil
}

// MarkRead marca como lidas as mensagens enviadas pelo outro participante
func (r *chatRepository) MarkRead(ctx context.Context, conversationID int64, readerID int) (int64, error) {
	query, args, err := psql.
		Update(messagesTable).
		Set("read", true).
		Set("read_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"conversation_id": conversationID, "read": false}).
		Where(squirrel.NotEq{"sender_id": readerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao marcar mensagens como lidas: %w", err)
	}

	return result.RowsAffected()
}

func scanMessage(row rowScanner) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.Read, &m.ReadAt, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
