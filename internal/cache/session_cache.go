package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"bizmatch/internal/model"
)

// SessionCache stores in-flight quiz sessions and their accumulated answers
type SessionCache interface {
	SetSession(ctx context.Context, session *model.QuizSession) error
	GetSession(ctx context.Context, id string) (*model.QuizSession, error)
	SetAnswer(ctx context.Context, sessionID string, answer *model.Answer) error
	GetAnswers(ctx context.Context, sessionID string) ([]model.Answer, error)
	Delete(ctx context.Context, sessionID string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a Redis-backed session cache. Sessions and their
// answers expire together after ttl of inactivity.
func NewSessionCache(client *redis.Client, ttl time.Duration) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string { return "quiz:" + id }
func answersKey(id string) string { return "quiz:" + id + ":answers" }

func (c *sessionCache) SetSession(ctx context.Context, session *model.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKey(session.ID), data, c.ttl).Err()
}

func (c *sessionCache) GetSession(ctx context.Context, id string) (*model.QuizSession, error) {
	data, err := c.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.QuizSession
	err = json.Unmarshal([]byte(data), &session)
	return &session, err
}

// SetAnswer stores one answer in the session's answer hash keyed by question
// id, so re-answering a question replaces the previous entry
func (c *sessionCache) SetAnswer(ctx context.Context, sessionID string, answer *model.Answer) error {
	data, err := json.Marshal(answer)
	if err != nil {
		return err
	}
	if err := c.client.HSet(ctx, answersKey(sessionID), answer.QuestionID, data).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, answersKey(sessionID), c.ttl).Err()
}

func (c *sessionCache) GetAnswers(ctx context.Context, sessionID string) ([]model.Answer, error) {
	entries, err := c.client.HGetAll(ctx, answersKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	answers := make([]model.Answer, 0, len(entries))
	for _, data := range entries {
		var a model.Answer
		if err := json.Unmarshal([]byte(data), &a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func (c *sessionCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, sessionKey(sessionID), answersKey(sessionID)).Err()
}
