package model

// ImageResolver resolves a stored image key to a public URL. Implemented by
// internal/storage; models never depend on the storage backend directly.
type ImageResolver interface {
	URL(key string) (string, error)
}

// resolveImageURL returns the public URL for key, or "" when the key is empty
// or the resolver fails. Resolution failures are swallowed on purpose: a
// missing backing file degrades to an empty URL rather than an error.
func resolveImageURL(r ImageResolver, key string) string {
	if r == nil || key == "" {
		return ""
	}
	url, err := r.URL(key)
	if err != nil {
		return ""
	}
	return url
}
