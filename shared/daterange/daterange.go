// Package daterange models stays as half-open ranges of calendar dates.
//
// Every date handled here is a calendar day pinned to 00:00 UTC, so values
// compare with == and map onto postgres DATE columns without drift.
package daterange

import (
	"fmt"
	"time"

	"stayledger/shared/constant"
	"stayledger/shared/failure"
	"stayledger/shared/timezone"

	"github.com/jinzhu/now"
)

const day = 24 * time.Hour

// Range is [CheckIn, CheckOut).
type Range struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Day truncates t to its calendar day in t's own location and re-anchors it at UTC midnight.
func Day(t time.Time) time.Time {
	start := now.With(t).BeginningOfDay()

	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
}

// Today is the current calendar day in the application timezone.
func Today() time.Time {
	return Day(timezone.Now())
}

func New(checkIn, checkOut time.Time) (Range, error) {
	r := Range{CheckIn: Day(checkIn), CheckOut: Day(checkOut)}
	if !r.CheckOut.After(r.CheckIn) {
		return Range{}, failure.BadRequestFromString(fmt.Sprintf("check-out %s must be after check-in %s",
			r.CheckOut.Format(constant.DateOnlyFormat), r.CheckIn.Format(constant.DateOnlyFormat)))
	}

	return r, nil
}

// Parse reads two YYYY-MM-DD dates.
func Parse(checkIn, checkOut string) (Range, error) {
	in, err := time.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return Range{}, failure.BadRequestFromString(fmt.Sprintf("invalid check-in date %q", checkIn))
	}

	out, err := time.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return Range{}, failure.BadRequestFromString(fmt.Sprintf("invalid check-out date %q", checkOut))
	}

	return New(in, out)
}

// Nights is the number of dates in the range.
func (r Range) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn) / day)
}

// Dates lists every calendar date from check-in inclusive to check-out exclusive.
func (r Range) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.CheckIn; d.Before(r.CheckOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	return dates
}

func (r Range) Overlaps(o Range) bool {
	return r.CheckIn.Before(o.CheckOut) && r.CheckOut.After(o.CheckIn)
}

func (r Range) Contains(date time.Time) bool {
	d := Day(date)

	return !d.Before(r.CheckIn) && d.Before(r.CheckOut)
}

// Extend returns the range grown by n nights and the window that was added.
func (r Range) Extend(nights int) (extended, window Range) {
	newCheckOut := r.CheckOut.AddDate(0, 0, nights)

	return Range{CheckIn: r.CheckIn, CheckOut: newCheckOut}, Range{CheckIn: r.CheckOut, CheckOut: newCheckOut}
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.CheckIn.Format(constant.DateOnlyFormat), r.CheckOut.Format(constant.DateOnlyFormat))
}
