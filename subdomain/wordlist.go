package subdomain

import (
	"os"
	"strings"
)

// LoadWordlist returns the lines of path in file order. Lines are split on "\n" and a
// trailing "\r" is removed so files from either line-ending convention load the
// same. Otherwise fragments are returned verbatim. A missing file returns an error which
// satisfies errors.Is(err, fs.ErrNotExist).
func LoadWordlist(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return splitLines(string(b)), nil
}

func splitLines(s string) []string {
	if len(s) == 0 {
		return []string{}
	}
	s = strings.TrimSuffix(s, "\n") // A final terminator doesn't create an empty line
	lines := strings.Split(s, "\n")
	for ix, l := range lines {
		lines[ix] = strings.TrimSuffix(l, "\r")
	}

	return lines
}
