package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/PolarWolf314/kpv/internal/utils"
)

// TimestampFormat is the layout of Entry.Timestamp.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Local username.
	Host      string `json:"host,omitempty"`
	Operation string `json:"op"` // save, link, delete.

	Key         string `json:"key,omitempty"`
	Source      string `json:"source,omitempty"`      // For save.
	Destination string `json:"destination,omitempty"` // For link.
	Unchanged   bool   `json:"unchanged,omitempty"`   // For save of an already linked file.
}

// NewEntry returns an entry for op with the user and host filled in.
func NewEntry(op, key string) Entry {
	entry := Entry{Operation: op, Key: key}

	if name, err := utils.GetUsername(); err == nil {
		entry.User = name
	}
	if host, err := utils.GetHostname(); err == nil {
		entry.Host = host
	}

	return entry
}

// Log appends entry to the audit log at logPath, creating the file and its
// directory if needed. ID and Timestamp are filled in when empty.
func Log(logPath string, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	_, err = f.Write(append(data, '\n'))
	return err
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(logPath string) ([]Entry, error) {
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// FilterByKey returns the entries recorded for key, oldest first.
func FilterByKey(entries []Entry, key string) []Entry {
	var filtered []Entry
	for _, entry := range entries {
		if entry.Key == key {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// Time parses the entry timestamp. The zero time is returned for malformed values.
func (e Entry) Time() time.Time {
	t, err := time.Parse(TimestampFormat, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
