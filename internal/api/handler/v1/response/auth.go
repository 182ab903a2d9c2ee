package response

import "github.com/sit-project/sit-api/internal/domain"

type LoginResponse struct {
	Token  string        `json:"token"`
	Claims domain.Claims `json:"claims"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Connections int64  `json:"websocket_connections"`
}

type WeatherSyncResponse struct {
	Rows int64 `json:"rows"`
}
