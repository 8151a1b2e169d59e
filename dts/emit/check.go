package emit

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/vectype/vectype/errors"
)

// UpToDate compares freshly generated output against an existing
// declaration file, ignoring metadata lines that change on every run
// without representing an API change.
func UpToDate(generated string, existingPath string) (bool, error) {
	existing, err := os.ReadFile(existingPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to read %s", existingPath)
	}
	return filterMetadataLines([]byte(generated)) == filterMetadataLines(existing), nil
}

// filterMetadataLines drops the "// Source:" header line, which embeds the
// analyzed checkout's revision and differs between otherwise identical
// generations.
func filterMetadataLines(content []byte) string {
	var sb strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "// Source:") {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
