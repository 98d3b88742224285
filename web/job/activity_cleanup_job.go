// Package job contains the scheduled background jobs run by the web server.
package job

import (
	"edupanel/config"
	"edupanel/logger"
	"edupanel/web/service"
)

// ActivityCleanupJob prunes old activity log entries.
type ActivityCleanupJob struct {
	activityService *service.ActivityLogService
}

func NewActivityCleanupJob(activityService *service.ActivityLogService) *ActivityCleanupJob {
	return &ActivityCleanupJob{activityService: activityService}
}

// Run removes activity logs past the configured retention.
func (j *ActivityCleanupJob) Run() {
	logger.Debug("Activity cleanup job started")

	retentionDays := config.GetLogRetentionDays()
	if err := j.activityService.CleanOldLogs(retentionDays); err != nil {
		logger.Warning("Failed to clean old activity logs:", err)
	} else {
		logger.Debugf("Activity cleanup completed (retention: %d days)", retentionDays)
	}
}
