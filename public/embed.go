package public

import "embed"

// FS chứa trang check-in, script và template trang QR
//
//go:embed index.html script.js style.css templates/*.html
var FS embed.FS
