package domain

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

func TestDropDiskStacksFromBottom(t *testing.T) {
	b := NewBoard(DefaultColumns, DefaultRows)

	row, err := b.DropDisk(3, First)
	if err != nil || row != DefaultRows-1 {
		t.Fatalf("first drop landed at row %d err %v, want bottom row", row, err)
	}
	row, _ = b.DropDisk(3, Second)
	if row != DefaultRows-2 {
		t.Fatalf("second drop landed at row %d, want %d", row, DefaultRows-2)
	}
	if got := b.LowestEmptyRow(3); got != DefaultRows-3 {
		t.Errorf("LowestEmptyRow = %d, want %d", got, DefaultRows-3)
	}
	if b.ColorAt(3, DefaultRows-1) != First || b.ColorAt(3, DefaultRows-2) != Second {
		t.Errorf("unexpected colors in column 3:\n%s", b)
	}
}

func TestDropDiskFullColumn(t *testing.T) {
	b := NewBoard(3, 2)
	b.Drop(0, First)
	b.Drop(0, Second)

	if _, err := b.DropDisk(0, First); !errors.Is(err, ErrColumnFull) {
		t.Fatalf("err = %v, want ErrColumnFull", err)
	}
	if b.LowestEmptyRow(0) != -1 {
		t.Errorf("full column should report -1")
	}
	if b.IsValidMove(0) || !b.IsValidMove(1) {
		t.Errorf("IsValidMove mismatch")
	}
	b.Drop(0, First) // no-op
	if b.TokenCount() != 2 {
		t.Errorf("TokenCount = %d, want 2", b.TokenCount())
	}
	if _, err := b.DropDisk(5, First); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("out of range column err = %v", err)
	}
}

func TestOutOfBoundsReadPanics(t *testing.T) {
	b := NewBoard(7, 6)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out of range slot")
		}
	}()
	b.IsFilled(7, 0)
}

func TestParseBoardRoundTrip(t *testing.T) {
	rows := []string{
		".......",
		".......",
		".......",
		"...O...",
		"..XX...",
		"..OXO..",
	}
	b := mustParse(t, rows...)
	want := ""
	for _, r := range rows {
		want += r + "\n"
	}
	if b.String() != want {
		t.Errorf("String() =\n%s\nwant\n%s", b, want)
	}
	if b.ColumnCount() != 7 || b.RowCount() != 6 {
		t.Errorf("dimensions %dx%d", b.ColumnCount(), b.RowCount())
	}
}

func TestParseBoardRejectsFloatingToken(t *testing.T) {
	_, err := ParseBoard(
		"...",
		".X.",
		"...",
	)
	if !errors.Is(err, ErrFloatingToken) {
		t.Fatalf("err = %v, want ErrFloatingToken", err)
	}
}

func TestParseBoardRejectsRaggedRows(t *testing.T) {
	if _, err := ParseBoard("...", ".."); !errors.Is(err, ErrBoardShape) {
		t.Fatalf("err = %v, want ErrBoardShape", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(4, 4)
	c := b.Clone()
	c.Drop(0, First)
	if b.TokenCount() != 0 {
		t.Fatal("mutating the clone changed the original")
	}
}
