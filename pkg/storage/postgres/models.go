package postgres

import (
	"time"

	"github.com/google/uuid"

	"newsletter/pkg/domain"
)

// PgSubscriber is the row shape of the subscriptions table.
type PgSubscriber struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Status       string    `db:"status"`
	SubscribedAt time.Time `db:"subscribed_at" goqu:"skipinsert"`
}

func (p *PgSubscriber) ToDomain() *domain.Subscriber {
	return &domain.Subscriber{
		ID:           domain.SubscriberID(p.ID),
		Email:        domain.SubscriberEmail(p.Email),
		Name:         domain.SubscriberName(p.Name),
		Status:       domain.SubscriberStatus(p.Status),
		SubscribedAt: p.SubscribedAt,
	}
}

// PgUser is the row shape of the users table holding operator credentials.
type PgUser struct {
	UserID       uuid.UUID `db:"user_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
}

func (p *PgUser) ToDomain() *domain.OperatorCredentials {
	return &domain.OperatorCredentials{
		UserID:       domain.UserID(p.UserID),
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
	}
}
