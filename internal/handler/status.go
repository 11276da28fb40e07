// internal/handler/status.go
package handler

import (
	"net/http"

	"github.com/sirecovip/backend/internal/model"
)

// ListStatuses serves the shared status catalog so every presentation
// surface renders labels and colors from one table.
func ListStatuses(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, model.StatusCatalog)
}
