package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/pkg/apiErrors"
)

// RunPipelineSync dispara manualmente a sincronização agendada do pipeline
func RunPipelineSync(service SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunPipelineSync")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do pipeline não disponível", nil)
			return
		}

		if !service.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Sincronização do pipeline já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Sincronização do pipeline iniciada com sucesso",
		})
	}
}

func GetCronStatus(service SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do pipeline não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"pipeline": service.GetStatus(),
		})
	}
}
