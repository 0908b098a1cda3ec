package mailer

// StatusHealthy is the status a healthy gateway reports.
const StatusHealthy = "healthy"

// Health is the gateway's self-reported state from a pre-flight check.
type Health struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Services string `json:"services"`
}

// Healthy reports whether the gateway declared itself operational.
func (h *Health) Healthy() bool {
	return h != nil && h.Status == StatusHealthy
}
