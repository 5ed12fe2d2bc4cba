// Package grid builds the year-calendar dot grid.
package grid

import "time"

// Columns is the fixed grid width, one column per weekday (Monday first).
const Columns = 7

// Status classifies a day relative to the current day of year.
type Status int

const (
	StatusPast Status = iota
	StatusToday
	StatusFuture
)

// Cell is one slot in the grid. Day is 1-based; a zero Day marks a
// padding cell before Jan 1 in the first row.
type Cell struct {
	Day    int
	Status Status
}

// Empty reports whether the cell is week-alignment padding.
func (c Cell) Empty() bool {
	return c.Day == 0
}

// Grid is the full-year layout. Rebuilt wholesale on every calendar
// update; never partially mutated.
type Grid struct {
	Year  int
	Today int // current day of year at build time
	Rows  [][]Cell
}

// Leap reports whether year is a leap year.
func Leap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if Leap(year) {
		return 366
	}
	return 365
}

// DayOfYear returns the 1-based ordinal of t within its year.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// jan1Offset returns the Monday-indexed weekday of Jan 1 (Monday=0).
func jan1Offset(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	return (int(jan1.Weekday()) + 6) % 7
}

// Build lays out year as rows of 7 cells. The first jan1Offset cells are
// padding so day 1 lands on its weekday column; remaining cells get
// sequential days classified against currentDayOfYear. The caller
// guarantees a valid calendar year and currentDayOfYear in [1, days].
func Build(year, currentDayOfYear int) Grid {
	offset := jan1Offset(year)
	totalDays := DaysInYear(year)
	totalCells := offset + totalDays
	rowCount := (totalCells + Columns - 1) / Columns

	rows := make([][]Cell, rowCount)
	day := 1
	for r := 0; r < rowCount; r++ {
		row := make([]Cell, Columns)
		for c := 0; c < Columns; c++ {
			idx := r*Columns + c
			if idx < offset || day > totalDays {
				continue // padding stays zero
			}
			row[c] = Cell{Day: day, Status: statusFor(day, currentDayOfYear)}
			day++
		}
		rows[r] = row
	}

	return Grid{Year: year, Today: currentDayOfYear, Rows: rows}
}

func statusFor(day, current int) Status {
	switch {
	case day < current:
		return StatusPast
	case day == current:
		return StatusToday
	default:
		return StatusFuture
	}
}

// DayCount returns the number of non-empty cells.
func (g Grid) DayCount() int {
	n := 0
	for _, row := range g.Rows {
		for _, c := range row {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}

// Padding returns the number of padding cells in the first row.
func (g Grid) Padding() int {
	if len(g.Rows) == 0 {
		return 0
	}
	n := 0
	for _, c := range g.Rows[0] {
		if c.Empty() {
			n++
		}
	}
	return n
}

// TodayPosition returns the row and column of the today cell, or
// (-1, -1) if no cell is marked today.
func (g Grid) TodayPosition() (row, col int) {
	for r, cells := range g.Rows {
		for c, cell := range cells {
			if cell.Status == StatusToday && !cell.Empty() {
				return r, c
			}
		}
	}
	return -1, -1
}
