package viewer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"copyline/internal/host"
)

func (v *Viewer) draw() {
	v.mu.Lock()
	defer v.mu.Unlock()

	width, height := v.screen.Size()
	if width == 0 || height < 3 {
		return
	}
	v.screen.Clear()

	textHeight := height - 2

	// Keep the cursor visible.
	if v.cursor < v.top {
		v.top = v.cursor
	}
	if v.cursor >= v.top+textHeight {
		v.top = v.cursor - textHeight + 1
	}

	gutter := 0
	if v.cfg.ShowLineNumbers {
		gutter = len(fmt.Sprint(len(v.lines))) + 1
	}

	for row := 0; row < textHeight; row++ {
		idx := v.top + row
		if idx >= len(v.lines) {
			break
		}
		if gutter > 0 {
			num := fmt.Sprintf("%*d ", gutter-1, idx+1)
			drawText(v.screen, 0, row, tcell.StyleDefault.Dim(true), num)
		}
		style := tcell.StyleDefault
		if idx == v.cursor {
			style = style.Reverse(true)
		}
		drawText(v.screen, gutter, row, style, expandTabs(v.lines[idx]))
	}

	// Status line: path and cursor position.
	statusStyle := tcell.StyleDefault.Reverse(true)
	fillLine(v.screen, height-2, width, statusStyle)
	status := fmt.Sprintf(" %s [%d/%d]", v.path, v.cursor+1, len(v.lines))
	drawText(v.screen, 0, height-2, statusStyle, status)

	// Notification line: latest message, styled by level.
	if v.notice.text != "" {
		drawText(v.screen, 0, height-1, noticeStyle(v.notice.level), v.notice.text)
	}

	v.screen.Show()
}

func noticeStyle(level host.NotificationLevel) tcell.Style {
	switch level {
	case host.NotifyError:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case host.NotifyWarning:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func fillLine(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", "    ")
}
