package snapshot

import (
	"testing"

	"github.com/voxelcore/bvxcore/voxelrt/spatialkey"
	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
)

func TestBeginAssignsDistinctIDs(t *testing.T) {
	j := NewJournal(nil)
	a := j.Begin()
	b := j.Begin()
	if a.ID == b.ID {
		t.Fatal("two sessions from Begin should not share an id")
	}
}

func TestRecordAndCommit(t *testing.T) {
	j := NewJournal(nil)
	s := j.Begin()
	key := spatialkey.NewMortonKey(1, 1, 1)
	idx := voxelidx.New(1, 1, 1, 1, 1, 1)

	s.Record(Edit{Chunk: key, Voxel: idx, Kind: EditSetBitVoxel})
	s.Record(Edit{Chunk: key, Voxel: idx, Kind: EditSetMetadata, Metadata: 7})

	if len(s.Edits) != 2 {
		t.Fatalf("len(s.Edits) = %d, want 2", len(s.Edits))
	}

	j.Commit(s)
	if j.Len() != 1 {
		t.Fatalf("j.Len() = %d, want 1", j.Len())
	}
	got := j.Sessions()[0]
	if got.ID != s.ID {
		t.Fatal("committed session id should match the session that was recorded")
	}
	if len(got.Edits) != 2 {
		t.Fatalf("committed session edit count = %d, want 2", len(got.Edits))
	}
}

func TestCommitPreservesOrder(t *testing.T) {
	j := NewJournal(nil)
	first := j.Begin()
	j.Commit(first)
	second := j.Begin()
	j.Commit(second)

	sessions := j.Sessions()
	if sessions[0].ID != first.ID || sessions[1].ID != second.ID {
		t.Fatal("sessions should commit in the order they were committed")
	}
}
