package amphipod

import "strings"

// Render draws s in the same diagram format Parse reads.
func (b *Burrow) Render(s State) []string {
	width := b.hallLen + 2
	lines := make([]string, 0, b.depth+3)
	lines = append(lines, strings.Repeat("#", width))

	var hall strings.Builder
	hall.WriteByte('#')
	for i := 0; i < b.hallLen; i++ {
		hall.WriteByte(s.Hall(i).Byte())
	}
	hall.WriteByte('#')
	lines = append(lines, hall.String())

	// Lower levels only span the room block, like the puzzle text.
	left, right := b.doors[0], b.doors[0]+2
	for _, door := range b.doors {
		left = min(left, door)
		right = max(right, door+2)
	}

	for j := 0; j < b.depth; j++ {
		row := []byte(strings.Repeat("#", width))
		if j > 0 {
			for c := range row {
				if c < left || c > right {
					row[c] = ' '
				}
			}
		}
		for r, door := range b.doors {
			row[door+1] = s.Room(r, j).Byte()
		}
		lines = append(lines, strings.TrimRight(string(row), " "))
	}

	return append(lines, strings.Repeat(" ", left)+strings.Repeat("#", right-left+1))
}
