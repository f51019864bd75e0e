package slugs

import (
	"fmt"

	"github.com/gosimple/slug"
)

// ExistsFunc reports whether a candidate slug is already taken. Implementations
// typically query the store; tests can use a map.
type ExistsFunc func(candidate string) (bool, error)

// Unique normalizes base into a URL-safe slug and resolves collisions by
// suffixing -1, -2, ... until exists reports the candidate free. Slug
// generation itself never touches storage; the existence check is injected.
func Unique(base string, exists ExistsFunc) (string, error) {
	root := slug.Make(base)
	candidate := root
	for i := 1; ; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", root, i)
	}
}
