package vcs

import (
	"github.com/localvcs/snap/internal/objects"
	"github.com/localvcs/snap/internal/vcserr"
)

// CatFile returns the raw bytes of a stored blob, or a log-style block
// (digest, date, message) for a stored commit, trying the blob store first
// then the commit store (SPEC_FULL.md §4.3).
func (s *Session) CatFile(digest string) (string, error) {
	if s.Store.HasBlob(digest) {
		b, err := s.Store.GetBlob(digest)
		if err != nil {
			return "", err
		}
		return string(b.Bytes), nil
	}
	if s.Store.HasCommit(digest) {
		c, err := s.Store.GetCommit(digest)
		if err != nil {
			return "", err
		}
		sum := objects.Summary{Parent1: c.Parent1, Parent2: c.Parent2, Timestamp: c.Timestamp, Message: c.Message}
		return formatCommitBlock(digest, sum), nil
	}
	return "", vcserr.User("No object with that id exists.")
}
