package workers

import (
	"context"
	"time"

	"jobboard_backend/internal/logger"
)

const (
	cancelledApplicationTTL = 7 * 24 * time.Hour
	deletedAccountTTL       = 30 * 24 * time.Hour
)

// VerificationPurger removes expired verification and recovery codes.
type VerificationPurger interface {
	DeleteExpiredVerifications(now time.Time) (int64, error)
	DeleteExpiredRecoveries(now time.Time) (int64, error)
}

// ApplicationPurger removes aged Cancelled applications.
type ApplicationPurger interface {
	DeleteCancelledBefore(cutoff time.Time) (int64, error)
}

// UserPurger hard-deletes accounts past the recovery window.
type UserPurger interface {
	PurgeDeletedBefore(cutoff time.Time) (int64, error)
}

// RetentionWorker schedules the bulk purges. Every sweep is keyed on
// absolute timestamps, so running twice (or on two instances at once)
// deletes nothing extra.
type RetentionWorker struct {
	verifications VerificationPurger
	applications  ApplicationPurger
	users         UserPurger
	now           func() time.Time
}

func NewRetentionWorker(verifications VerificationPurger, applications ApplicationPurger, users UserPurger) *RetentionWorker {
	return &RetentionWorker{
		verifications: verifications,
		applications:  applications,
		users:         users,
		now:           time.Now,
	}
}

func (w *RetentionWorker) Start(ctx context.Context) {
	go w.sweep(ctx, 24*time.Hour, "purge_expired_verifications", w.purgeExpiredVerifications)
	go w.sweep(ctx, 24*time.Hour, "purge_expired_recoveries", w.purgeExpiredRecoveries)
	go w.sweep(ctx, 7*24*time.Hour, "purge_cancelled_applications", w.purgeCancelledApplications)
	go w.sweep(ctx, 24*time.Hour, "purge_deleted_accounts", w.purgeDeletedAccounts)
}

func (w *RetentionWorker) sweep(ctx context.Context, interval time.Duration, operation string, fn func() (int64, error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("retention worker stopped", "operation", operation)
			return
		case <-ticker.C:
			affected, err := fn()
			logger.WorkerLog("retention", operation, affected, err)
		}
	}
}

func (w *RetentionWorker) purgeExpiredVerifications() (int64, error) {
	return w.verifications.DeleteExpiredVerifications(w.now())
}

func (w *RetentionWorker) purgeExpiredRecoveries() (int64, error) {
	return w.verifications.DeleteExpiredRecoveries(w.now())
}

func (w *RetentionWorker) purgeCancelledApplications() (int64, error) {
	return w.applications.DeleteCancelledBefore(w.now().Add(-cancelledApplicationTTL))
}

func (w *RetentionWorker) purgeDeletedAccounts() (int64, error) {
	return w.users.PurgeDeletedBefore(w.now().Add(-deletedAccountTTL))
}
