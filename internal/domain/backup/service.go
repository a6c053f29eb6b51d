package backup

import "context"

// BackupService exports and restores the full data set.
type BackupService interface {
	// Export captures employees, attendance and settings as one snapshot
	Export(ctx context.Context) (Snapshot, error)

	// Import clears the store and rebuilds it from a snapshot. Attendance
	// references are remapped to the fresh employee IDs the store assigns.
	Import(ctx context.Context, snap Snapshot) error
}
