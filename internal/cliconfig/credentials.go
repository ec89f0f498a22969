package cliconfig

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bft-labs/scoreship/internal/domain"
)

// LoadCredentials reads one credential per line from path. Blank lines and
// lines starting with '#' are ignored. A missing file or a file without any
// credential yields domain.ErrNoCredentials.
func LoadCredentials(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoCredentials, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s has no entries", domain.ErrNoCredentials, path)
	}
	return out, nil
}
