package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"wakatimer/internal/database"
	"wakatimer/internal/model"
)

const defaultHistoryLimit = 20

// InsertAuthEvent 寫入一筆登入紀錄，ID 為空時自動產生
func InsertAuthEvent(ctx context.Context, db database.DB, e *model.AuthEvent) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	row := db.QueryRow(ctx,
		`INSERT INTO auth_events (id, user_id, email, method, success, ip, user_agent, message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		e.ID,
		e.UserID,
		e.Email,
		e.Method,
		e.Success,
		e.IP,
		e.UserAgent,
		e.Message,
	)
	if err := row.Scan(&e.CreatedAt); err != nil {
		return fmt.Errorf("InsertAuthEvent: %w", err)
	}
	return nil
}

// ListAuthEvents 依時間新到舊列出使用者最近的登入紀錄
// 失敗的登入沒有 user_id，以 email 對應；email 為空時不比對
func ListAuthEvents(ctx context.Context, db database.DB, userID, email string, limit int) ([]model.AuthEvent, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	rows, err := db.Query(ctx,
		`SELECT id, user_id, email, method, success, ip, user_agent, message, created_at
		 FROM auth_events
		 WHERE user_id = $1
		    OR ($2 <> '' AND user_id = '' AND email = $2)
		 ORDER BY created_at DESC
		 LIMIT $3`,
		userID,
		email,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAuthEvents: %w", err)
	}
	defer rows.Close()

	var list []model.AuthEvent
	for rows.Next() {
		var e model.AuthEvent
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Email,
			&e.Method,
			&e.Success,
			&e.IP,
			&e.UserAgent,
			&e.Message,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListAuthEvents: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAuthEvents: %w", err)
	}
	return list, nil
}
