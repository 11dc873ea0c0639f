package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glowdesk/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ProgressStore persists in-flight booking sessions across page reloads.
// Records are keyed by salon and session id, expire on their own when a
// customer abandons the flow, and are cleared exactly once on successful
// commit.
type ProgressStore interface {
	// Load returns the stored session, or (nil, nil) when the record is
	// absent, expired or structurally invalid.
	Load(ctx context.Context, salonID, sessionID string) (*models.BookingSession, error)
	Save(ctx context.Context, session *models.BookingSession) error
	Clear(ctx context.Context, salonID, sessionID string) error
}

// RedisProgressStore implements ProgressStore on Redis with a TTL refreshed
// on every save.
type RedisProgressStore struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func NewRedisProgressStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisProgressStore {
	return &RedisProgressStore{Client: client, TTL: ttl, Logger: logger}
}

func progressKey(salonID, sessionID string) string {
	return fmt.Sprintf("progress:%s:%s", salonID, sessionID)
}

func (s *RedisProgressStore) Load(ctx context.Context, salonID, sessionID string) (*models.BookingSession, error) {
	data, err := s.Client.Get(ctx, progressKey(salonID, sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking progress: %w", err)
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		// Malformed progress is treated as absent, never as a hard failure.
		s.Logger.Warn("discarding malformed booking progress",
			zap.String("salonID", salonID), zap.String("sessionID", sessionID), zap.Error(err))
		return nil, nil
	}
	if !restorable(&session, salonID, sessionID) {
		s.Logger.Warn("discarding unrestorable booking progress",
			zap.String("salonID", salonID), zap.String("sessionID", sessionID), zap.String("step", session.Step))
		return nil, nil
	}
	return &session, nil
}

// restorable rejects records that would crash or corrupt the workflow:
// unknown steps, terminal sessions, mismatched keys and unparseable dates.
func restorable(session *models.BookingSession, salonID, sessionID string) bool {
	if session.SalonID != salonID || session.SessionID != sessionID {
		return false
	}
	if !ValidStep(session.Step) || session.Step == StepSuccess {
		return false
	}
	if session.Draft.SelectedDate != "" {
		if _, err := time.Parse("2006-01-02", session.Draft.SelectedDate); err != nil {
			return false
		}
	}
	return true
}

func (s *RedisProgressStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking progress: %w", err)
	}
	key := progressKey(session.SalonID, session.SessionID)
	if err := s.Client.Set(ctx, key, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking progress: %w", err)
	}
	return nil
}

func (s *RedisProgressStore) Clear(ctx context.Context, salonID, sessionID string) error {
	if err := s.Client.Del(ctx, progressKey(salonID, sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear booking progress: %w", err)
	}
	return nil
}
