package web

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/san-kum/pendulum/internal/physics"
	"github.com/san-kum/pendulum/internal/render"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Double Pendulum</title>
<style>
body { margin: 0; font-family: sans-serif; }
.gradient {
  min-height: 100vh;
  display: flex;
  flex-direction: column;
  align-items: center;
  background: linear-gradient(160deg, #e8ecf8 0%, #b8c0e0 100%);
}
header { padding: 1.5rem; font-weight: bold; letter-spacing: 0.2em; color: #596594; }
</style>
</head>
<body>
<div class="gradient">
<header>UNDER CONSTRUCTION</header>
<svg id="pendulum" xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
{{.Elements}}</svg>
</div>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "{{.SocketPath}}");
  function set(el, attrs) {
    for (var k in attrs) {
      if (k !== "id") el.setAttribute(k, attrs[k]);
    }
  }
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type !== "frame") return;
    msg.shapes.arms.concat(msg.shapes.bobs).forEach(function (s) {
      var el = document.getElementById(s.id);
      if (el) set(el, s);
    });
  };
})();
</script>
</body>
</html>
`))

type pageData struct {
	Width      int
	Height     int
	Elements   template.HTML
	SocketPath string
}

// renderPage executes the page template into a buffer so a template error
// never leaves a half-written response.
func renderPage(scene render.Scene, pos physics.BobPosition) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Width:      scene.Width,
		Height:     scene.Height,
		Elements:   template.HTML(render.SVGElements(scene.Shapes(pos))),
		SocketPath: SocketPath,
	})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}
