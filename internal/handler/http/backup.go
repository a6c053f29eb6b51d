package http

import (
	"encoding/json"
	"net/http"

	"github.com/asistapp/attendance-backend-go/internal/domain/backup"
	"github.com/asistapp/attendance-backend-go/internal/handler/http/response"
)

type BackupHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type backupHandlerImpl struct {
	backupService backup.BackupService
}

func NewBackupHandler(backupService backup.BackupService) BackupHandler {
	return &backupHandlerImpl{
		backupService: backupService,
	}
}

// Export implements BackupHandler.
func (h *backupHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.backupService.Export(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Import implements BackupHandler. The snapshot replaces everything, so a
// malformed body must be rejected before any write happens.
func (h *backupHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var snap backup.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		response.BadRequest(w, "Invalid snapshot format", nil)
		return
	}

	if err := h.backupService.Import(r.Context(), snap); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Backup imported", nil)
}
