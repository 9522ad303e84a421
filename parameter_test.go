package allpairs_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/combinatest/allpairs"
)

func TestNewParameter(t *testing.T) {
	is := is.New(t)

	parts := []*allpairs.Partition{
		allpairs.NewConstant("a", 1),
		allpairs.NewConstant("b", 2),
	}
	p, err := allpairs.NewParameter("P", parts)
	is.NoErr(err)
	is.Equal(p.Name, "P")
	is.Equal(len(p.Partitions), 2)
	is.Equal(parts[0].Parameter(), p) // back-reference set on construction
	is.Equal(parts[1].Parameter(), p)
}

func TestNewParameterRejectsEmptyName(t *testing.T) {
	_, err := allpairs.NewParameter("", []*allpairs.Partition{})
	if !errors.Is(err, allpairs.ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestNewParameterRejectsNilPartitionList(t *testing.T) {
	_, err := allpairs.NewParameter("P", nil)
	if !errors.Is(err, allpairs.ErrNilPartitions) {
		t.Errorf("expected ErrNilPartitions, got %v", err)
	}
}

func TestNewParameterAllowsEmptyPartitionList(t *testing.T) {
	p, err := allpairs.NewParameter("P", []*allpairs.Partition{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Partitions) != 0 {
		t.Errorf("expected no partitions, got %d", len(p.Partitions))
	}
}

func TestNewParameterRejectsReparenting(t *testing.T) {
	part := allpairs.NewConstant("a", 1)
	if _, err := allpairs.NewParameter("P", []*allpairs.Partition{part}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := allpairs.NewParameter("Q", []*allpairs.Partition{part})
	if !errors.Is(err, allpairs.ErrReparented) {
		t.Errorf("expected ErrReparented, got %v", err)
	}
}

func TestNewParameterRejectsDuplicatePartitionNames(t *testing.T) {
	_, err := allpairs.NewParameter("P", []*allpairs.Partition{
		allpairs.NewConstant("a", 1),
		allpairs.NewConstant("a", 2),
	})
	if err == nil {
		t.Error("expected error for duplicate partition names")
	}
}

func TestNewParameterRejectsNilPartition(t *testing.T) {
	_, err := allpairs.NewParameter("P", []*allpairs.Partition{nil})
	if err == nil {
		t.Error("expected error for nil partition")
	}
}

func TestParameterPartitionLookup(t *testing.T) {
	is := is.New(t)

	p := allpairs.MustParameter("P", []*allpairs.Partition{
		allpairs.NewConstant("a", 1),
		allpairs.NewConstant("b", 2),
	})
	is.Equal(p.Partition("b").Name(), "b")
	is.Equal(p.Partition("missing"), nil)
}

func TestMustParameterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustParameter with empty name to panic")
		}
	}()
	allpairs.MustParameter("", nil)
}
