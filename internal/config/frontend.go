package config

import (
	"strings"

	"github.com/spf13/viper"
)

// FrontendConfig is the deployment description handed to browser clients.
// It is assembled once at startup and treated as read-only afterwards.
type FrontendConfig struct {
	APIBaseURL    string            `json:"api_base_url"`
	BackupAPIURL  string            `json:"backup_api_url"`
	Endpoints     map[string]string `json:"endpoints"`
	AppName       string            `json:"app_name"`
	AppVersion    string            `json:"app_version"`
	Environment   string            `json:"environment"`
	Theme         string            `json:"theme"`
	ItemsPerPage  int               `json:"items_per_page"`
	ToastMillis   int               `json:"toast_duration_ms"`
	LoadingMillis int               `json:"loading_timeout_ms"`
}

var defaultEndpoints = map[string]string{
	"jobs":           "/api/jobs",
	"candidates":     "/api/candidates",
	"clients":        "/clients",
	"applications":   "/applications",
	"placements":     "/placements",
	"unified_api":    "/unified_api",
	"ai_suggestions": "/functions/v1/ai-matching",
	"sync_status":    "/functions/v1/sync-status",
	"workable_sync":  "/functions/v1/workable-sync",
	"match_events":   "/ws/matches",
}

func setFrontendDefaults(v *viper.Viper) {
	v.SetDefault("FRONTEND_API_BASE_URL", "https://staff-match-pro-bart83.replit.app")
	v.SetDefault("FRONTEND_BACKUP_API_URL", "https://webapp.growthaccelerator.nl")
	v.SetDefault("FRONTEND_APP_NAME", "Growth Accelerator")
	v.SetDefault("FRONTEND_APP_VERSION", "1.0.0")
	v.SetDefault("FRONTEND_ENVIRONMENT", "production")
	v.SetDefault("FRONTEND_THEME", "dark")
	v.SetDefault("FRONTEND_ITEMS_PER_PAGE", 10)
	v.SetDefault("FRONTEND_TOAST_DURATION_MS", 5000)
	v.SetDefault("FRONTEND_LOADING_TIMEOUT_MS", 30000)
}

func loadFrontend(v *viper.Viper) FrontendConfig {
	endpoints := make(map[string]string, len(defaultEndpoints))
	for k, path := range defaultEndpoints {
		endpoints[k] = path
	}
	// FRONTEND_ENDPOINTS_<NAME> overrides a single path.
	for k := range defaultEndpoints {
		if p := strings.TrimSpace(v.GetString("FRONTEND_ENDPOINTS_" + strings.ToUpper(k))); p != "" {
			endpoints[k] = p
		}
	}

	return FrontendConfig{
		APIBaseURL:    strings.TrimRight(strings.TrimSpace(v.GetString("FRONTEND_API_BASE_URL")), "/"),
		BackupAPIURL:  strings.TrimRight(strings.TrimSpace(v.GetString("FRONTEND_BACKUP_API_URL")), "/"),
		Endpoints:     endpoints,
		AppName:       v.GetString("FRONTEND_APP_NAME"),
		AppVersion:    v.GetString("FRONTEND_APP_VERSION"),
		Environment:   v.GetString("FRONTEND_ENVIRONMENT"),
		Theme:         v.GetString("FRONTEND_THEME"),
		ItemsPerPage:  v.GetInt("FRONTEND_ITEMS_PER_PAGE"),
		ToastMillis:   v.GetInt("FRONTEND_TOAST_DURATION_MS"),
		LoadingMillis: v.GetInt("FRONTEND_LOADING_TIMEOUT_MS"),
	}
}

// URL joins an endpoint name onto the primary base URL; unknown names yield "".
func (f FrontendConfig) URL(name string) string {
	p, ok := f.Endpoints[name]
	if !ok {
		return ""
	}
	return f.APIBaseURL + p
}
