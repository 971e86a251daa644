package config

import "strings"

// CorsConfig controls which browser origins may call the API: the configured
// frontend origin, local dev servers, and any subdomain of the frontend's
// hosting provider.
type CorsConfig struct {
	FrontendURL     string   `yaml:"frontend_url"`
	ExtraOrigins    []string `yaml:"extra_origins"`
	AllowedSuffixes []string `yaml:"allowed_suffixes"`
}

var defaultDevOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// OriginAllowed reports whether a request origin may receive CORS headers.
func (c CorsConfig) OriginAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	for _, suffix := range c.suffixes() {
		if strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	for _, allowed := range c.origins() {
		if origin == allowed {
			return true
		}
	}
	return false
}

func (c CorsConfig) origins() []string {
	origins := append([]string{}, defaultDevOrigins...)
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return append(origins, c.ExtraOrigins...)
}

func (c CorsConfig) suffixes() []string {
	if len(c.AllowedSuffixes) > 0 {
		return c.AllowedSuffixes
	}
	return []string{".vercel.app"}
}
