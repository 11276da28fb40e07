// internal/model/status.go
package model

// MerchantStatus is the closed set of compliance classifications a merchant
// can carry. The first three are produced by the backend; the rest are legacy
// inspection-workflow values still present in historical rows.
type MerchantStatus string

const (
	StatusSinFoco       MerchantStatus = "sin-foco"
	StatusEnObservacion MerchantStatus = "en-observacion"
	StatusPrioritario   MerchantStatus = "prioritario"

	// Legacy inspection-workflow statuses.
	StatusEnRevision MerchantStatus = "en-revision"
	StatusAprobado   MerchantStatus = "aprobado"
	StatusRechazado  MerchantStatus = "rechazado"
)

// InitialStatus is the status assigned to every newly registered merchant.
// Registration intentionally does not start merchants at sin-foco: a fresh
// registration has not been reviewed yet.
const InitialStatus = StatusEnObservacion

func (s MerchantStatus) IsValid() bool {
	switch s {
	case StatusSinFoco, StatusEnObservacion, StatusPrioritario,
		StatusEnRevision, StatusAprobado, StatusRechazado:
		return true
	}
	return false
}

// StatusInfo describes how a status is presented: display label, badge CSS
// classes and the chart color. Every surface (tables, badges, pie charts)
// must read from this table instead of carrying its own copy.
type StatusInfo struct {
	Value      MerchantStatus `json:"value"`
	Label      string         `json:"label"`
	BadgeClass string         `json:"badge_class"`
	ChartColor string         `json:"chart_color"`
}

// StatusCatalog is the single source of truth for status presentation.
var StatusCatalog = []StatusInfo{
	{StatusSinFoco, "Sin Foco", "bg-green-100 text-green-800 border border-green-300", "#10B981"},
	{StatusEnObservacion, "En Observación", "bg-amber-100 text-amber-800 border border-amber-300", "#F59E0B"},
	{StatusPrioritario, "Prioritario", "bg-red-100 text-red-800 border border-red-300", "#EF4444"},
	{StatusEnRevision, "En Revisión", "bg-blue-100 text-blue-800 border border-blue-300", "#3B82F6"},
	{StatusAprobado, "Aprobado", "bg-green-100 text-green-800 border border-green-300", "#10B981"},
	{StatusRechazado, "Foco Detectado", "bg-red-100 text-red-800 border border-red-300", "#EF4444"},
}

// StatusLabel returns the display label for a status, falling back to the
// raw value for anything outside the catalog.
func StatusLabel(s MerchantStatus) string {
	for _, info := range StatusCatalog {
		if info.Value == s {
			return info.Label
		}
	}
	return string(s)
}
