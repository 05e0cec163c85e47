package vcs

import "github.com/localvcs/snap/internal/config"

// SetConfig records key=value in the repository-local config file, or the
// global one when global is true (SPEC_FULL.md §4.2).
func (s *Session) SetConfig(key, value string, global bool) error {
	if global {
		return config.SetGlobal(key, value)
	}
	return config.SetLocal(s.Root, key, value)
}
