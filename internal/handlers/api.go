package handlers

import (
	"net/http"

	"github.com/ternarybob/respondo/internal/common"
)

// HandleVersion handles GET /api/version
func HandleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"app":     "respondo",
		"version": common.GetVersion(),
		"build":   common.Build,
	})
}
