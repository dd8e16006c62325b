package writer

import (
	"os"
	"strings"
)

type implText struct{}

func (implText) Ext() string { return ".txt" }

func (implText) Write(path, _ string, lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
