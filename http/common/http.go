package common

const (
	ContentTypeJson = "application/json"

	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	Scheme = "https" // Both REST APIs are only served via TLS.
)
