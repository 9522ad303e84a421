package allpairs_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/combinatest/allpairs"
)

func TestCombinationSetValue(t *testing.T) {
	is := is.New(t)

	params := browserMatrix(t)
	c := allpairs.NewCombination(params)

	is.Equal(c.Len(), 3)
	is.True(!c.Filled())

	is.NoErr(c.SetValue(0, params[0].Partition("Chrome")))
	is.NoErr(c.SetValue(1, params[1].Partition("Linux")))
	is.NoErr(c.SetValue(2, params[2].Partition("4k")))
	is.True(c.Filled())
	is.Equal(c.Value(0).Name(), "Chrome")
}

// SetValue(0, nil) is rejected and slot 0 remains unset afterwards.
func TestCombinationRejectsNilValue(t *testing.T) {
	params := browserMatrix(t)
	c := allpairs.NewCombination(params)

	err := c.SetValue(0, nil)
	if !errors.Is(err, allpairs.ErrNilValue) {
		t.Errorf("expected ErrNilValue, got %v", err)
	}
	if c.Value(0) != nil {
		t.Error("slot 0 must remain unset after a rejected assignment")
	}
}

func TestCombinationRejectsWrongOwner(t *testing.T) {
	params := browserMatrix(t)
	c := allpairs.NewCombination(params)

	// An OS partition cannot go in the Browser slot.
	err := c.SetValue(0, params[1].Partition("Linux"))
	if !errors.Is(err, allpairs.ErrOwnerMismatch) {
		t.Errorf("expected ErrOwnerMismatch, got %v", err)
	}
	if c.Value(0) != nil {
		t.Error("slot 0 must remain unset after a rejected assignment")
	}
}

func TestCombinationRejectsSlotOutOfRange(t *testing.T) {
	params := browserMatrix(t)
	c := allpairs.NewCombination(params)

	for _, i := range []int{-1, 3, 99} {
		err := c.SetValue(i, params[0].Partition("Chrome"))
		if !errors.Is(err, allpairs.ErrSlotRange) {
			t.Errorf("slot %d: expected ErrSlotRange, got %v", i, err)
		}
	}
}

func TestCombinationKey(t *testing.T) {
	params := browserMatrix(t)

	a := allpairs.NewCombination(params)
	b := allpairs.NewCombination(params)

	if a.Key() != b.Key() {
		t.Error("empty combinations must share a key")
	}

	if err := a.SetValue(0, params[0].Partition("Chrome")); err != nil {
		t.Fatal(err)
	}
	if err := b.SetValue(0, params[0].Partition("Chrome")); err != nil {
		t.Fatal(err)
	}
	if a.Key() != b.Key() {
		t.Error("identical assignments must produce identical keys")
	}

	if err := b.SetValue(1, params[1].Partition("Linux")); err != nil {
		t.Fatal(err)
	}
	if a.Key() == b.Key() {
		t.Error("differing assignments must produce differing keys")
	}
}

func TestCombinationConflicts(t *testing.T) {
	params := browserMatrix(t)
	if _, err := allpairs.Propagate(params); err != nil {
		t.Fatal(err)
	}

	c := allpairs.NewCombination(params)
	if err := c.SetValue(0, params[0].Partition("Safari")); err != nil {
		t.Fatal(err)
	}
	if err := c.SetValue(1, params[1].Partition("Windows")); err != nil {
		t.Fatal(err)
	}
	if !c.Conflicts() {
		t.Error("Safari + Windows must conflict")
	}

	ok := allpairs.NewCombination(params)
	if err := ok.SetValue(0, params[0].Partition("Safari")); err != nil {
		t.Fatal(err)
	}
	if err := ok.SetValue(1, params[1].Partition("macOS")); err != nil {
		t.Fatal(err)
	}
	if ok.Conflicts() {
		t.Error("Safari + macOS must not conflict")
	}
}

func TestCombinationRowReadsValues(t *testing.T) {
	is := is.New(t)

	params := browserMatrix(t)
	c := allpairs.NewCombination(params)
	is.NoErr(c.SetValue(0, params[0].Partition("Chrome")))
	is.NoErr(c.SetValue(1, params[1].Partition("Linux")))
	is.NoErr(c.SetValue(2, params[2].Partition("1080p")))

	row := c.Row()
	is.Equal(len(row), 4)
	is.Equal(row[0], c.Key())
	is.Equal(row[1], "116.0")
	is.Equal(row[2], "6.5")
	is.Equal(row[3], "1920x1080")
}

func TestFrozenCombinationRejectsWrites(t *testing.T) {
	params := browserMatrix(t)
	table, err := allpairs.NewGenerator(allpairs.WithSeed(1)).Combinatorial(params, 99)
	if err != nil {
		t.Fatal(err)
	}
	combos := table.Combinations()
	if len(combos) == 0 {
		t.Fatal("expected combinations")
	}

	err = combos[0].SetValue(0, params[0].Partition("Chrome"))
	if !errors.Is(err, allpairs.ErrFrozen) {
		t.Errorf("expected ErrFrozen, got %v", err)
	}
}
