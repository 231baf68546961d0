package flatfile

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/sandevgo/secretowatch/internal/core"
)

// Records are separated by an empty line. A record body keeps its own line
// breaks. Lines that are empty or made only of backslashes get one extra
// leading backslash on write, so a body may contain empty lines without
// being split in two.

const maxLineSize = 8 << 20

const recordSeparator = "\n\n"

// Decode reads records until EOF. A final record without a closing empty
// line is kept: end of file terminates it.
func Decode(r io.Reader) ([]core.Message, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var msgs []core.Message
	var lines []string

	flush := func() {
		if len(lines) == 0 {
			return
		}
		msgs = append(msgs, core.NewMessage(strings.Join(lines, "\n")))
		lines = lines[:0]
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			flush()
			continue
		}
		lines = append(lines, unescapeLine(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return msgs, nil
}

// Encode renders msgs as consecutive records. An empty body is written as
// a single escaped empty line.
func Encode(msgs []core.Message) []byte {
	var buf bytes.Buffer
	for _, m := range msgs {
		body := strings.ReplaceAll(m.Body, "\r\n", "\n")
		for i, line := range strings.Split(body, "\n") {
			if i > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(escapeLine(line))
		}
		buf.WriteString(recordSeparator)
	}
	return buf.Bytes()
}

func escapeLine(line string) string {
	if onlyBackslashes(line) {
		return `\` + line
	}
	return line
}

func unescapeLine(line string) string {
	if line != "" && onlyBackslashes(line) {
		return line[1:]
	}
	return line
}

// onlyBackslashes reports true for the empty string too.
func onlyBackslashes(s string) bool {
	return strings.Trim(s, `\`) == ""
}

// separatorFor returns what must be written after tail, the last bytes of
// a non-empty file, so the next record starts cleanly.
func separatorFor(tail []byte) string {
	switch {
	case len(tail) == 0, bytes.HasSuffix(tail, []byte(recordSeparator)):
		return ""
	case bytes.HasSuffix(tail, []byte("\n")):
		return "\n"
	default:
		return recordSeparator
	}
}
