package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/renderer"
	"echoshift/pkg/game/state"
)

var htmlClasses = map[renderer.Kind]string{
	renderer.KindVoid:   "void",
	renderer.KindFloor:  "floor",
	renderer.KindPath:   "path",
	renderer.KindWall:   "wall",
	renderer.KindProp:   "prop",
	renderer.KindLoot:   "loot",
	renderer.KindEnemy:  "enemy",
	renderer.KindPortal: "portal",
	renderer.KindPlayer: "player",
}

// ScreenshotHTML renders the whole map as a standalone HTML page.
func ScreenshotHTML(s *state.Session) string {
	var out strings.Builder

	out.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>echoshift - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #888; }
        .path { color: #aaa; }
        .prop { color: #aaaa00; }
        .loot { color: #ffcc66; font-weight: bold; }
        .enemy { color: #ff4444; font-weight: bold; }
        .portal { color: #bb86fc; font-weight: bold; }
        .void { color: #1a1a2e; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&out, `    <div class="header">%s, seed %d, %d rooms</div>`+"\n",
		html.EscapeString(s.LastReport.Strategy), s.Source.Seed(), len(s.Layout.Rooms))

	out.WriteString(`    <div class="map-container">` + "\n")
	scene := s.Scene()
	if bounds, ok := scene.Bounds(); ok {
		top := bounds.Y + bounds.H - 1
		for y := top; y >= bounds.Y; y-- {
			out.WriteString(`        <div class="map-row">`)
			for x := bounds.X; x < bounds.X+bounds.W; x++ {
				kind := scene.KindAt(world.Pos(x, y))
				icon := html.EscapeString(string(renderer.ASCII[kind]))
				fmt.Fprintf(&out, `<span class="%s">%s</span>`, htmlClasses[kind], icon)
			}
			out.WriteString("</div>\n")
		}
	}
	out.WriteString(`    </div>` + "\n")
	out.WriteString("</body>\n</html>\n")
	return out.String()
}

// SaveScreenshotHTML writes ScreenshotHTML to a timestamped file and returns its name.
func SaveScreenshotHTML(s *state.Session) (string, error) {
	filename := fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	if err := os.WriteFile(filename, []byte(ScreenshotHTML(s)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
