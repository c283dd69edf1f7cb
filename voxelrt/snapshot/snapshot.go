// Package snapshot batches a client's chunk mutations into edit sessions,
// each stamped with a stable uuid.UUID so a caller can log, replay, or
// correlate a batch of voxel edits with an external event (an editor
// undo step, a network packet, a test assertion).
//
// Follows world.go's dirty-chunk bookkeeping (DirtySectors,
// StructureDirty), generalized from an unnamed dirty set to a named,
// ordered batch of edits.
package snapshot

import (
	"github.com/google/uuid"

	voxelcore "github.com/voxelcore/bvxcore"
	"github.com/voxelcore/bvxcore/voxelrt/spatialkey"
	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
)

// EditKind identifies which mutation an Edit records.
type EditKind int

const (
	EditSetBitVoxel EditKind = iota
	EditUnsetBitVoxel
	EditToggleBitVoxel
	EditFillVoxel
	EditEmptyVoxel
	EditSetMetadata
)

// Edit is one recorded mutation against a single chunk.
type Edit struct {
	Chunk    spatialkey.MortonKey
	Voxel    voxelidx.Index
	Kind     EditKind
	Metadata uint32 // only meaningful for EditSetMetadata
}

// Session is a named, ordered batch of edits. The zero value is not
// usable; construct one with Journal.Begin.
type Session struct {
	ID    uuid.UUID
	Edits []Edit
}

// Record appends e to the session.
func (s *Session) Record(e Edit) {
	s.Edits = append(s.Edits, e)
}

// Journal accumulates committed sessions and logs each commit at Debug
// level, the way a world logs chunk insert/remove.
type Journal struct {
	log      voxelcore.Logger
	sessions []Session
}

// NewJournal creates an empty journal. A nil logger is replaced with a
// no-op one.
func NewJournal(log voxelcore.Logger) *Journal {
	if log == nil {
		log = voxelcore.NewNopLogger()
	}
	return &Journal{log: log}
}

// Begin opens a new session with a fresh random id.
func (j *Journal) Begin() *Session {
	return &Session{ID: uuid.New()}
}

// Commit appends s to the journal's committed history and logs its id
// and edit count.
func (j *Journal) Commit(s *Session) {
	j.sessions = append(j.sessions, *s)
	j.log.Debugf("snapshot: committed session %s with %d edits", s.ID, len(s.Edits))
}

// Sessions returns every committed session, oldest first.
func (j *Journal) Sessions() []Session {
	return j.sessions
}

// Len returns the number of committed sessions.
func (j *Journal) Len() int {
	return len(j.sessions)
}
