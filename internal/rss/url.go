package rss

import "net/url"

// CleanURL drops the query string and fragment from an article link,
// keeping scheme, host and path as they were. Input that is not an
// absolute URL is returned unchanged.
func CleanURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw
	}
	return u.Scheme + "://" + u.Host + u.EscapedPath()
}
