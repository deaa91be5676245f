package sessionstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"roost/internal/domain/constants"
	"roost/internal/domain/entity"
	"roost/internal/domain/service"

	"github.com/pkg/errors"
)

// fileStore keeps one JSON blob per session on local disk. Read and
// write failures degrade to "no session" with a log line.
type fileStore struct {
	dir    string
	logger *slog.Logger
}

// NewFileStore creates a file-backed session store rooted at dir.
func NewFileStore(dir string, logger *slog.Logger) (service.SessionStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrap(err, "failed to create session store directory")
	}

	return &fileStore{dir: dir, logger: logger}, nil
}

// validSessionID rejects anything that could escape the store
// directory. Session IDs are generated UUIDs, so this only trips on
// tampered input.
func validSessionID(sessionID string) bool {
	if sessionID == "" || sessionID == "." || sessionID == ".." {
		return false
	}

	return !strings.ContainsAny(sessionID, "/\\")
}

func (s *fileStore) path(sessionID string) string {
	return filepath.Join(s.dir, constants.SessionKeyPrefix+"-"+sessionID+".json")
}

func (s *fileStore) Load(_ context.Context, sessionID string) *entity.Session {
	if !validSessionID(sessionID) {
		s.logger.Warn("rejecting malformed session id", slog.String("session_id", sessionID))

		return nil
	}

	raw, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read session blob, treating as signed out",
				slog.String("session_id", sessionID),
				slog.Any("error", err),
			)
		}

		return nil
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.logger.Warn("corrupt session blob, treating as signed out",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)

		return nil
	}

	return &session
}

func (s *fileStore) Save(_ context.Context, sessionID string, session *entity.Session) {
	if session == nil || !validSessionID(sessionID) {
		return
	}

	raw, err := json.Marshal(session)
	if err != nil {
		s.logger.Warn("failed to encode session blob",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)

		return
	}

	if err := os.WriteFile(s.path(sessionID), raw, 0o600); err != nil {
		s.logger.Warn("failed to write session blob",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
	}
}

func (s *fileStore) Delete(_ context.Context, sessionID string) {
	if !validSessionID(sessionID) {
		return
	}

	if err := os.Remove(s.path(sessionID)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to delete session blob",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
	}
}

func (s *fileStore) Keys(_ context.Context) []string {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("failed to list session store directory", slog.Any("error", err))

		return nil
	}

	prefix := constants.SessionKeyPrefix + "-"

	var keys []string
	for _, file := range files {
		name := file.Name()
		if file.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}

		keys = append(keys, strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".json"))
	}

	return keys
}

func (s *fileStore) DeleteAll(ctx context.Context) {
	for _, sessionID := range s.Keys(ctx) {
		s.Delete(ctx, sessionID)
	}
}
