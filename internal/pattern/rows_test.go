package pattern

import (
	"bytes"
	"testing"

	"github.com/abdul-hamid-achik/pixgen/internal/apperror"
)

func mustFrame(t *testing.T, width, height int, p Pattern) *Frame {
	t.Helper()
	f, err := NewFrame(width, height, p)
	if err != nil {
		t.Fatalf("NewFrame(%d, %d) error: %v", width, height, err)
	}
	return f
}

func rowAt(t *testing.T, f *Frame, y int) []byte {
	t.Helper()
	row := make([]byte, f.RowBytes())
	f.RowAt(row, y)
	return row
}

func TestNewFrame_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		p      Pattern
	}{
		{"zero width", 0, 10, NewSolid(White)},
		{"negative height", 10, -5, NewSolid(White)},
		{"both zero", 0, 0, NewSolid(White)},
		{"zero pattern", 10, 10, Pattern{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrame(tt.width, tt.height, tt.p)
			if err == nil {
				t.Fatal("NewFrame() expected error, got nil")
			}
			if !apperror.Is(err, apperror.ErrInvalidParameter) {
				t.Errorf("error kind = %q, want invalid_parameter", apperror.Code(err))
			}
		})
	}
}

func TestSolid_Row(t *testing.T) {
	f := mustFrame(t, 3, 2, NewSolid(Color{10, 20, 30}))

	want := []byte{10, 20, 30, 10, 20, 30, 10, 20, 30}
	for y := 0; y < 2; y++ {
		if got := rowAt(t, f, y); !bytes.Equal(got, want) {
			t.Errorf("row %d = %v, want %v", y, got, want)
		}
	}
}

func TestStripes_ExactThirds(t *testing.T) {
	// Width 9 splits into perfect thirds: columns 0-2 red, 3-5 green,
	// 6-8 blue, in canonical RGB order.
	f := mustFrame(t, 9, 1, Default(Stripes))

	for x := 0; x < 9; x++ {
		var want Color
		switch {
		case x < 3:
			want = Red
		case x < 6:
			want = Green
		default:
			want = Blue
		}
		if got := f.ColorAt(x, 0); got != want {
			t.Errorf("column %d = %v, want %v", x, got, want)
		}
	}
}

func TestStripes_RemainderWidensThirdBand(t *testing.T) {
	// Width 10: band edges at 10/3=3 and 2*(10/3)=6, so the third
	// band covers columns 6-9.
	f := mustFrame(t, 10, 1, Default(Stripes))

	if got := f.ColorAt(2, 0); got != Red {
		t.Errorf("column 2 = %v, want red", got)
	}
	if got := f.ColorAt(3, 0); got != Green {
		t.Errorf("column 3 = %v, want green", got)
	}
	if got := f.ColorAt(6, 0); got != Blue {
		t.Errorf("column 6 = %v, want blue", got)
	}
	if got := f.ColorAt(9, 0); got != Blue {
		t.Errorf("column 9 = %v, want blue", got)
	}
}

func TestCheckerboard_TileParity(t *testing.T) {
	f := mustFrame(t, 64, 64, Default(Checkerboard))

	tests := []struct {
		x, y int
		want Color
	}{
		{0, 0, White},
		{15, 15, White},
		{16, 0, Black},
		{0, 16, Black},
		{16, 16, White},
		{31, 31, White},
		{32, 0, White},
		{47, 16, Black},
	}

	for _, tt := range tests {
		if got := f.ColorAt(tt.x, tt.y); got != tt.want {
			t.Errorf("ColorAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGradientVertical_Endpoints(t *testing.T) {
	f := mustFrame(t, 4, 10, Default(GradientVertical))

	if got := f.ColorAt(0, 0); got != Black {
		t.Errorf("top row = %v, want black", got)
	}
	if got := f.ColorAt(0, 9); got != White {
		t.Errorf("bottom row = %v, want white", got)
	}
}

func TestGradientVertical_SingleRowIsEndColor(t *testing.T) {
	// A one-row gradient uses ratio 1.0: the end color exactly, not
	// the midpoint.
	for _, width := range []int{1, 3, 17} {
		f := mustFrame(t, width, 1, NewGradientVertical(Black, Color{200, 100, 50}))
		for x := 0; x < width; x++ {
			if got := f.ColorAt(x, 0); got != (Color{200, 100, 50}) {
				t.Errorf("width %d, column %d = %v, want end color", width, x, got)
			}
		}
	}
}

func TestGradientHorizontal_SingleColumnIsEndColor(t *testing.T) {
	f := mustFrame(t, 1, 5, NewGradientHorizontal(Black, White))
	for y := 0; y < 5; y++ {
		if got := f.ColorAt(0, y); got != White {
			t.Errorf("row %d = %v, want white", y, got)
		}
	}
}

func TestGradient_TruncatesTowardZero(t *testing.T) {
	// Height 3, black to white: middle row ratio is 0.5, so each
	// channel is int(127.5) = 127, not 128.
	f := mustFrame(t, 1, 3, Default(GradientVertical))

	if got := f.ColorAt(0, 1); got != (Color{127, 127, 127}) {
		t.Errorf("middle row = %v, want (127,127,127)", got)
	}
}

func TestGradient_RowConstant(t *testing.T) {
	f := mustFrame(t, 8, 16, NewGradientVertical(Color{0, 50, 100}, Color{255, 150, 200}))

	for y := 0; y < 16; y++ {
		first := f.ColorAt(0, y)
		for x := 1; x < 8; x++ {
			if got := f.ColorAt(x, y); got != first {
				t.Fatalf("row %d not constant: column %d = %v, column 0 = %v", y, x, got, first)
			}
		}
	}
}

func TestColorBars_Palette(t *testing.T) {
	// Width 8: one column per bar, in the fixed order.
	f := mustFrame(t, 8, 1, NewColorBars())

	want := []Color{White, Yellow, Cyan, Green, Magenta, Red, Blue, Black}
	for x, c := range want {
		if got := f.ColorAt(x, 0); got != c {
			t.Errorf("bar %d = %v, want %v", x, got, c)
		}
	}
}

func TestColorBars_IndexClamped(t *testing.T) {
	// Real-valued bar width keeps the last column in bar 7 for widths
	// that do not divide evenly.
	for _, width := range []int{8, 9, 100, 1921} {
		f := mustFrame(t, width, 1, NewColorBars())
		if got := f.ColorAt(width-1, 0); got != Black {
			t.Errorf("width %d last column = %v, want black", width, got)
		}
		if got := f.ColorAt(0, 0); got != White {
			t.Errorf("width %d first column = %v, want white", width, got)
		}
	}
}

func TestGrayscaleBars_Levels(t *testing.T) {
	f := mustFrame(t, 8, 1, NewGrayscaleBars())

	// 255 - int(bar * 255 / 7), truncated.
	want := []uint8{255, 219, 183, 146, 110, 73, 37, 0}
	for x, v := range want {
		got := f.ColorAt(x, 0)
		if got != (Color{v, v, v}) {
			t.Errorf("bar %d = %v, want gray %d", x, got, v)
		}
	}
}

func TestGrayscaleBars_MonotonicNonIncreasing(t *testing.T) {
	for _, width := range []int{8, 13, 640, 1000} {
		f := mustFrame(t, width, 1, NewGrayscaleBars())
		prev := f.ColorAt(0, 0).R
		for x := 1; x < width; x++ {
			g := f.ColorAt(x, 0)
			if g.R != g.G || g.G != g.B {
				t.Fatalf("width %d column %d not gray: %v", width, x, g)
			}
			if g.R > prev {
				t.Fatalf("width %d: gray increases at column %d (%d > %d)", width, x, g.R, prev)
			}
			prev = g.R
		}
	}
}

func TestRows_CountAndLength(t *testing.T) {
	f := mustFrame(t, 5, 7, Default(Stripes))

	count := 0
	for row := range f.Rows() {
		if len(row) != 15 {
			t.Fatalf("row length = %d, want 15", len(row))
		}
		count++
	}
	if count != 7 {
		t.Errorf("yielded %d rows, want 7", count)
	}
}

func TestRows_Restartable(t *testing.T) {
	f := mustFrame(t, 6, 4, Default(Checkerboard))

	collect := func() [][]byte {
		var rows [][]byte
		for row := range f.Rows() {
			rows = append(rows, append([]byte(nil), row...))
		}
		return rows
	}

	first, second := collect(), collect()
	if len(first) != len(second) {
		t.Fatalf("passes yielded %d and %d rows", len(first), len(second))
	}
	for i := range first {
		if !bytes.Equal(first[i], second[i]) {
			t.Errorf("row %d differs between passes", i)
		}
	}
}

func TestRows_EarlyStop(t *testing.T) {
	f := mustFrame(t, 2, 1000, Default(GradientVertical))

	count := 0
	for range f.Rows() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("consumed %d rows, want 3", count)
	}
}

func TestRowAt_MatchesColorAt(t *testing.T) {
	for _, k := range Kinds() {
		f := mustFrame(t, 19, 9, Default(k))
		for y := 0; y < 9; y++ {
			row := rowAt(t, f, y)
			for x := 0; x < 19; x++ {
				want := f.ColorAt(x, y)
				got := Color{row[x*3], row[x*3+1], row[x*3+2]}
				if got != want {
					t.Fatalf("%v: pixel (%d,%d) = %v, want %v", k, x, y, got, want)
				}
			}
		}
	}
}
