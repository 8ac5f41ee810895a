package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Kariqs/storefront/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DatabaseStore keeps session data in the sessions table; the cookie carries
// only the row token.
type DatabaseStore struct {
	db     *gorm.DB
	maxAge time.Duration
	secure bool
}

func NewDatabaseStore(db *gorm.DB, maxAge time.Duration, secure bool) *DatabaseStore {
	return &DatabaseStore{db: db, maxAge: maxAge, secure: secure}
}

func (d *DatabaseStore) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return New(), nil
	}

	var record models.SessionRecord
	err = d.db.WithContext(r.Context()).
		Where("token = ? AND expires_at > ?", cookie.Value, time.Now()).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}

	s := &Session{ID: record.Token}
	if len(record.Data) > 0 {
		if err := json.Unmarshal(record.Data, &s.data); err != nil {
			return New(), nil
		}
	}
	return s, nil
}

// Save writes the session row and refreshes the cookie. After a login or
// logout the old row is dropped and the session moves to a new token.
func (d *DatabaseStore) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	token := s.ID
	if token == "" || s.rotate {
		token = uuid.NewString()
	}

	payload, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}

	db := d.db.WithContext(r.Context())
	if s.ID != "" && token != s.ID {
		if err := db.Where("token = ?", s.ID).Delete(&models.SessionRecord{}).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
		}
	}

	record := models.SessionRecord{
		Token:     token,
		Data:      datatypes.JSON(payload),
		ExpiresAt: time.Now().Add(d.maxAge),
	}
	err = db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}
	s.ID = token
	s.rotate = false

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(d.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   d.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// DeleteExpired removes sessions past their expiry and returns how many went.
func (d *DatabaseStore) DeleteExpired(ctx context.Context) (int64, error) {
	result := d.db.WithContext(ctx).Where("expires_at <= ?", time.Now()).Delete(&models.SessionRecord{})
	return result.RowsAffected, result.Error
}

// RunCleanup deletes expired sessions now and then every interval until ctx
// is done.
func (d *DatabaseStore) RunCleanup(ctx context.Context, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		removed, err := d.DeleteExpired(ctx)
		if err != nil {
			log.Warn("expired session cleanup failed", zap.Error(err))
		} else if removed > 0 {
			log.Info("expired sessions removed", zap.Int64("count", removed))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
