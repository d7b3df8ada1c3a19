package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Prefix is written before every line by the client's logger.
const Prefix = "recipes"

const timeLayout = "2006/01/02 15:04:05"

// Entry is one parsed log line.
type Entry struct {
	Time    time.Time // zero when the line carries no timestamp
	Message string
	Problem bool // the line reports a failure
}

// Read returns at most maxLines entries from the end of the file at path.
// maxLines <= 0 returns every line. A missing file yields no entries.
func Read(path string, maxLines int) ([]Entry, error) {
	lines, err := tail(path, maxLines)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		return nil, nil
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Parse splits a "recipes 2006/01/02 15:04:05 message" line. Lines in any
// other shape are kept whole as the message.
func Parse(line string) Entry {
	rest := strings.TrimPrefix(line, Prefix+" ")
	entry := Entry{Message: rest}
	if len(rest) > len(timeLayout) {
		if ts, err := time.ParseInLocation(timeLayout, rest[:len(timeLayout)], time.Local); err == nil {
			entry.Time = ts
			entry.Message = strings.TrimSpace(rest[len(timeLayout):])
		}
	}
	entry.Problem = isProblem(entry.Message)
	return entry
}

func isProblem(msg string) bool {
	lower := strings.ToLower(msg)
	for _, marker := range []string{"failed", "error", "rejected", "refused"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// tail returns the last maxLines raw lines using a ring buffer.
func tail(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var all []string
		for scanner.Scan() {
			all = append(all, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return all, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
