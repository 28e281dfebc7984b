package config

import (
	"os"
	"strings"
)

// PublicBIEnabled gates the unauthenticated /bi/public CSV feed used by the
// Power BI demo integration. Absent or false means the route returns 403.
//
// Set via env:
// - PUBLIC_BI_ENABLED=true
func PublicBIEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PUBLIC_BI_ENABLED")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}
