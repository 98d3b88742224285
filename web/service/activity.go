package service

import (
	"time"

	"edupanel/database/model"
	"edupanel/logger"
	"edupanel/storage"
)

// ActivityLogService appends to and reads the audit trail.
type ActivityLogService struct {
	store storage.Store
}

func NewActivityLogService(store storage.Store) *ActivityLogService {
	return &ActivityLogService{store: store}
}

// Log appends an audit entry. Failures are logged and swallowed: auditing
// never blocks the action it describes.
func (s *ActivityLogService) Log(userId int, action, description string) {
	_, err := s.store.CreateActivityLog(&model.ActivityLog{
		UserId:      userId,
		Action:      action,
		Description: description,
	})
	if err != nil {
		logger.Warningf("Failed to create activity log: user=%d, action=%s, error=%v", userId, action, err)
	}
}

// GetRecent returns up to limit entries, newest first.
func (s *ActivityLogService) GetRecent(limit int) ([]model.ActivityLog, error) {
	return s.store.GetRecentActivityLogs(limit)
}

// CleanOldLogs removes activity logs older than the given number of days.
func (s *ActivityLogService) CleanOldLogs(days int) error {
	if days <= 0 {
		return nil
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	removed, err := s.store.DeleteActivityLogsBefore(cutoff)
	if err != nil {
		return err
	}
	if removed > 0 {
		logger.Infof("Cleaned %d old activity logs (older than %d days)", removed, days)
	}
	return nil
}
