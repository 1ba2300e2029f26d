// Package mapfit embeds the prebuilt web frontend served by the mapfit
// binary.
package mapfit

import "embed"

//go:embed web/dist
var WebFS embed.FS
