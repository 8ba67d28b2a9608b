package canva

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// designPathMarker is the path segment that precedes the design id in
	// canonical share links, e.g. https://www.canva.com/design/<id>/view.
	designPathMarker = "design"

	// shareQueryParam carries the design id in share links whose path has
	// no marker segment.
	shareQueryParam = "utm_content"
)

// ErrDesignIDNotFound reports that a share link contains no recognizable
// design identifier. Unparsable URLs fail with the same error; callers have
// no use for a finer distinction.
var ErrDesignIDNotFound = errors.New("design id not found in URL")

// idMatcher attempts one extraction strategy against a parsed share link
// and reports whether the strategy applied. An applied strategy's result is
// final even when empty.
type idMatcher func(u *url.URL) (id string, ok bool)

// idMatchers are tried in order; the first strategy that applies wins.
var idMatchers = []idMatcher{matchDesignPath, matchShareQuery}

// ExtractDesignID extracts the design identifier from a Canva share or view
// link. Two strategies are tried in order: the path segment following the
// /design/ marker, then the utm_content query parameter. Links matching
// neither strategy, and links that do not parse at all, fail with
// ErrDesignIDNotFound.
func ExtractDesignID(shareURL string) (string, error) {
	u, err := url.Parse(shareURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDesignIDNotFound, err)
	}

	for _, match := range idMatchers {
		id, ok := match(u)
		if !ok {
			continue
		}
		if id == "" {
			// The strategy matched but the identifier is empty, as in a
			// link ending in "/design/". That is a failed extraction, not
			// a reason to try the next strategy.
			break
		}
		return id, nil
	}

	return "", ErrDesignIDNotFound
}

// matchDesignPath looks for the marker segment in the URL path and returns
// the segment immediately following it. A marker with nothing after it does
// not apply, which lets the query strategy run.
func matchDesignPath(u *url.URL) (string, bool) {
	segments := strings.Split(u.Path, "/")
	for i, segment := range segments {
		if segment == designPathMarker && i+1 < len(segments) {
			return segments[i+1], true
		}
	}
	return "", false
}

// matchShareQuery reads the well-known share query parameter. Blank values
// count as absent.
func matchShareQuery(u *url.URL) (string, bool) {
	id := u.Query().Get(shareQueryParam)
	return id, id != ""
}
