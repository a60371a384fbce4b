package scalar

import (
	"testing"

	"github.com/agbru/fixcalc/internal/scalar/mocks"
	"github.com/golang/mock/gomock"
)

func TestRandomize_TruncatesEachDraw(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Uint64().Return(uint64(0x1122334455667788)),
		src.EXPECT().Uint64().Return(uint64(0xaabb)),
		src.EXPECT().Uint64().Return(uint64(0xff00ff00ffffffff)),
	)

	x := New[uint16](3).Randomize(src)
	if want := FromWords[uint16](0x7788, 0xaabb, 0xffff); !x.Eq(want) {
		t.Errorf("Randomize = %v, want %v", x, want)
	}
}

func TestRandomize_OneDrawPerWord(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Uint64().Return(uint64(1)).Times(5)

	x := Random[uint64](5, src)
	for i := range x.Len() {
		if x.Word(i) != 1 {
			t.Errorf("word %d = %x, want 1", i, x.Word(i))
		}
	}
}

func TestSources(t *testing.T) {
	t.Parallel()

	a := Random[uint64](4, NewSeededSource(42))
	b := Random[uint64](4, NewSeededSource(42))
	if !a.Eq(b) {
		t.Error("seeded sources with the same seed diverged")
	}

	p, err := NewPRNGSource()
	if err != nil {
		t.Fatalf("NewPRNGSource: %v", err)
	}
	x := Random[uint64](4, p)
	y := Random[uint64](4, DefaultSource())
	// 2^-256 chance of a false failure.
	if x.IsZero() || y.IsZero() || x.Eq(y) {
		t.Errorf("secure sources produced degenerate output: %v, %v", x, y)
	}
}
