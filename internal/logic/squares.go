package logic

import "fmt"

func minutes(n uint32) uint32 { return n * 60000 }
func seconds(n uint32) uint32 { return n * 1000 }

// Squares is the interval table of the reference five-minute timer.
// Cell i of the strip follows Squares[i].
var Squares = [NumCells]Interval{
	{Color: Green, Start: 0, End: minutes(1)},
	{Color: Green, Start: minutes(1), End: minutes(2)},
	{Color: Green, Start: minutes(2), End: minutes(3), Notify: minutes(2) + seconds(30)},
	{Color: Yellow, Start: minutes(3), End: minutes(4)},
	{Color: Yellow, Start: minutes(4), End: minutes(5), Notify: minutes(4) + seconds(30)},
}

// BrightnessLevels are the selectable global brightness values.
var BrightnessLevels = [...]uint8{255, 32, 64, 128}

// ValidateIntervals checks that every interval in a table has a non-empty window and, when
// set, a notify threshold strictly inside it.
func ValidateIntervals(table []Interval) error {
	for i, iv := range table {
		if iv.Start >= iv.End {
			return fmt.Errorf("interval %d: start %d not before end %d", i, iv.Start, iv.End)
		}
		if iv.HasNotify() && (iv.Notify <= iv.Start || iv.Notify >= iv.End) {
			return fmt.Errorf("interval %d: notify %d outside (%d, %d)", i, iv.Notify, iv.Start, iv.End)
		}
	}
	return nil
}
