package appfs

import "embed"

// FS embeds the DB migrations and the sample content set used when no
// content directory is configured.
//
//go:embed migrations content
var FS embed.FS
