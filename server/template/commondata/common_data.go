package commondata

import (
	"net/http"

	"github.com/pypeclub/openpype-website/server/utils"
)

// PageCommonData holds request-derived values shared by handlers and views.
//
// It is automatically populated for each request and attached to the
// request_context.RequestContext.
//
// Usage:
//
//	rc := request_context.FromRequest(r)
//	cd := rc.CommonData
//	// cd.Origin, cd.CurrentPath, ...
type PageCommonData struct {
	// Origin is the origin URL (scheme + host) of the current request.
	Origin string

	// CurrentPath is the URL path from request (e.g., "/features").
	CurrentPath string

	// CurrentPathWithParams is the full request URI including query parameters.
	CurrentPathWithParams string

	// FullURL is the complete URL (scheme + host + path) of the request, not including query parameters.
	FullURL string

	// IsSecure reports whether the client reached us over TLS, directly or through a trusted proxy.
	IsSecure bool
}

// PopulatePageCommonData fills the PageCommonData struct from the request.
func PopulatePageCommonData(r *http.Request, data *PageCommonData) {
	data.Origin = utils.GetOriginFromRequest(r)
	data.CurrentPath = r.URL.Path
	data.CurrentPathWithParams = r.URL.RequestURI()
	data.FullURL = data.Origin + r.URL.Path
	data.IsSecure = utils.IsConnectionSecure(r)
}
