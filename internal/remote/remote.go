// Package remote implements spec.md §4.H: push, fetch, and pull between
// the local repository and a remote repository that is itself just another
// `.snap` directory on the same filesystem — no network transport, no
// authentication, matching spec.md's Non-goals. Grounded in the teacher's
// internal/remote/push.go, fetch.go, and pull.go for the overall shape of
// the three operations, but with the teacher's HTTP client
// (internal/remote/http) and packfile compaction dropped entirely, since
// both only exist to serve a network protocol this system doesn't have.
package remote

import (
	"fmt"
	"path/filepath"

	"github.com/localvcs/snap/internal/control"
	"github.com/localvcs/snap/internal/graph"
	"github.com/localvcs/snap/internal/objects"
	"github.com/localvcs/snap/internal/vcserr"
)

// Normalize converts a remote path into the platform separator form
// spec.md §4.H asks add-remote to store.
func Normalize(path string) string {
	return filepath.FromSlash(filepath.ToSlash(path))
}

func lookupIn(store objects.Store) graph.Lookup {
	return func(digest string) (string, string, bool) {
		c, err := store.GetCommit(digest)
		if err != nil {
			return "", "", false
		}
		return c.Parent1, c.Parent2, true
	}
}

// Open loads the control record and object store rooted at remotePath, the
// way any local command loads its own repository.
func Open(remotePath string) (control.Record, objects.Store, error) {
	store := objects.Store{Root: remotePath}
	if !store.Exists() {
		return control.Record{}, objects.Store{}, vcserr.User("Remote directory not found.")
	}
	rec, err := control.Load(remotePath)
	if err != nil {
		return control.Record{}, objects.Store{}, err
	}
	return rec, store, nil
}

// copyChain copies every commit strictly after `from` (exclusive) up to and
// including `to` along to's first-parent chain, plus every blob each copied
// commit references, from src into dst. from == "" copies the entire chain.
// Each copied commit's summary is recorded in dstRec.Summaries, so the
// destination's graph.Lookup (backed by Summaries, not the object store) can
// see the copied history for split-point/ancestry traversal.
func copyChain(src, dst objects.Store, dstRec *control.Record, from, to string) error {
	if to == "" {
		return nil
	}
	chain := graph.FirstParentWalk(to, lookupIn(src))
	for _, digest := range chain {
		if digest == from {
			break
		}
		c, err := src.GetCommit(digest)
		if err != nil {
			return err
		}
		for _, blobDigest := range c.Tracked {
			if dst.HasBlob(blobDigest) {
				continue
			}
			b, err := src.GetBlob(blobDigest)
			if err != nil {
				return err
			}
			if _, err := dst.PutBlob(b); err != nil {
				return err
			}
		}
		if _, err := dst.PutCommit(c); err != nil {
			return err
		}
		dstRec.Summaries[digest] = objects.Summary{
			Parent1:   c.Parent1,
			Parent2:   c.Parent2,
			Timestamp: c.Timestamp,
			Message:   c.Message,
		}
	}
	return nil
}

// Push implements spec.md §4.H's push: the remote branch tip must already
// be part of local history (a fast-forward from the remote's perspective),
// or the push is rejected.
func Push(localRoot string, localStore objects.Store, local control.Record, remotePath, branch string) error {
	remoteRec, remoteStore, err := Open(remotePath)
	if err != nil {
		return err
	}

	tip, ok := remoteRec.Refs.Branches[branch]
	if !ok {
		tip = remoteRec.Refs.Head
	}

	head := local.Refs.Head
	if tip != "" {
		reachable := graph.ReachableViaParent1(head, lookupIn(localStore))
		if !reachable[tip] {
			return vcserr.User("Please pull down remote changes before pushing.")
		}
	}

	if err := copyChain(localStore, remoteStore, &remoteRec, tip, head); err != nil {
		return fmt.Errorf("failed to push commits: %w", err)
	}

	remoteRec.Refs.Branches[branch] = head
	if remoteRec.Refs.ActiveBranch == branch {
		remoteRec.Refs.Head = head
	}
	return control.Save(remotePath, remoteRec)
}

// Fetch implements spec.md §4.H's fetch: copy everything new on the
// remote branch into the local store, and point a local tracking branch
// `remote/branch` at the fetched tip.
func Fetch(localRoot string, localStore objects.Store, local *control.Record, remoteName, remotePath, branch string) error {
	remoteRec, remoteStore, err := Open(remotePath)
	if err != nil {
		return err
	}

	tip, ok := remoteRec.Refs.Branches[branch]
	if !ok {
		return vcserr.User("That remote does not have that branch: %s", branch)
	}

	if err := copyChain(remoteStore, localStore, local, "", tip); err != nil {
		return fmt.Errorf("failed to fetch commits: %w", err)
	}

	trackingBranch := remoteName + "/" + branch
	local.Refs.Branches[trackingBranch] = tip
	return nil
}

// Pull implements spec.md §4.H's pull: fetch, then merge the fetched
// tracking branch into the active branch. The caller supplies mergeFn so
// this package doesn't need to depend on the full merge orchestration
// (split-point lookup, preflight, commit creation) that the top-level
// command layer already assembles.
func Pull(localRoot string, localStore objects.Store, local *control.Record, remoteName, remotePath, branch string, mergeFn func(otherBranch string) error) error {
	if err := Fetch(localRoot, localStore, local, remoteName, remotePath, branch); err != nil {
		return err
	}
	return mergeFn(remoteName + "/" + branch)
}
