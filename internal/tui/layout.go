package tui

// rect is a pane's outer box in terminal cells.
type rect struct{ x, y, w, h int }

// inner is the content area: inside the border and horizontal padding, below
// the title row.
func (r rect) inner() rect {
	return rect{x: r.x + 2, y: r.y + 2, w: max(0, r.w-4), h: max(0, r.h-3)}
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type layout struct {
	mapPane     rect
	chartPane   rect
	listPane    rect
	drillPane   rect
	detailsPane rect
}

const headerHeight = 2 // controls row + legend row

// computeLayout splits the screen into a map/chart column on the left and a
// list/drill/details column on the right.
func computeLayout(width, height, footerHeight int) layout {
	bodyH := max(12, height-headerHeight-footerHeight)
	rightW := min(48, max(26, width/3))
	if width < 60 {
		rightW = max(10, width/2)
	}
	leftW := max(10, width-rightW)

	mapH := bodyH * 3 / 5
	chartH := bodyH - mapH
	listH := bodyH * 2 / 5
	drillH := bodyH / 4
	detailsH := bodyH - listH - drillH

	y := headerHeight
	return layout{
		mapPane:     rect{x: 0, y: y, w: leftW, h: mapH},
		chartPane:   rect{x: 0, y: y + mapH, w: leftW, h: chartH},
		listPane:    rect{x: leftW, y: y, w: rightW, h: listH},
		drillPane:   rect{x: leftW, y: y + listH, w: rightW, h: drillH},
		detailsPane: rect{x: leftW, y: y + listH + drillH, w: rightW, h: detailsH},
	}
}
