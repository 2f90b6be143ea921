package api

// Request limits and defaults.
const (
	// MaxUploadSize is the maximum accepted editor form body, image included (10 MB).
	MaxUploadSize = 10 << 20

	// DefaultSubmitPerMinute and DefaultSubmitBurst bound form writes per client.
	DefaultSubmitPerMinute = 20
	DefaultSubmitBurst     = 5
)

// Cache-Control header values.
const (
	CacheOneDay  = "public, max-age=86400"
	CacheNoStore = "no-store"
)

// Query and form parameters read by the handlers.
const (
	paramPartial    = "partial"
	paramContext    = "context"
	paramGeneration = "gen"
	paramConfirm    = "confirm"
	paramTitle      = "title"
	paramImageFile  = "imageFile"

	contextCreate = "create"
	contextSearch = "search"
	confirmYes    = "yes"
)

// GenerationHeader echoes the client's query generation on fragment responses.
const GenerationHeader = "X-Query-Generation"
