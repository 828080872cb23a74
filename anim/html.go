package anim

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"os"
)

var player = template.Must(template.New("player").Parse(`<div class="transect-anim" id="{{.ID}}">
<img id="{{.ID}}-img" src="{{.First}}" alt="{{.FirstLabel}}" style="max-width:100%">
<div>
<button id="{{.ID}}-first" title="first">&#8676;</button>
<button id="{{.ID}}-prev" title="previous">&#8592;</button>
<button id="{{.ID}}-play" title="play/pause">&#9654;</button>
<button id="{{.ID}}-next" title="next">&#8594;</button>
<button id="{{.ID}}-last" title="last">&#8677;</button>
<input id="{{.ID}}-slider" type="range" min="0" max="{{.Last}}" value="0" style="width:50%">
<span id="{{.ID}}-label">{{.FirstLabel}}</span>
</div>
</div>
<script>
(function() {
  var id = {{.ID}};
  var frames = {{.Sources}};
  var labels = {{.Labels}};
  var interval = {{.Interval}};
  var loop = {{.Loop}};
  var img = document.getElementById(id + "-img");
  var slider = document.getElementById(id + "-slider");
  var label = document.getElementById(id + "-label");
  var i = 0, timer = null;
  function show(k) {
    i = k;
    img.src = frames[i];
    img.alt = labels[i];
    label.textContent = labels[i];
    slider.value = i;
  }
  function step() {
    if (i + 1 < frames.length) { show(i + 1); return; }
    if (loop) { show(0); return; }
    pause();
  }
  function play() { if (timer === null) { timer = setInterval(step, interval); } }
  function pause() { if (timer !== null) { clearInterval(timer); timer = null; } }
  document.getElementById(id + "-play").onclick = function() { timer === null ? play() : pause(); };
  document.getElementById(id + "-first").onclick = function() { pause(); show(0); };
  document.getElementById(id + "-last").onclick = function() { pause(); show(frames.length - 1); };
  document.getElementById(id + "-prev").onclick = function() { pause(); show(Math.max(i - 1, 0)); };
  document.getElementById(id + "-next").onclick = function() { pause(); show(Math.min(i + 1, frames.length - 1)); };
  slider.oninput = function() { pause(); show(parseInt(slider.value, 10)); };
})();
</script>
`))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
{{.Body}}
</body>
</html>
`))

var mime = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
}

// Sources returns each frame as a data URI, in playback order.
func (a *Animation) Sources() ([]string, error) {
	srcs := make([]string, len(a.Frames))
	for i, f := range a.Frames {
		mt, ok := mime[f.Format]
		if !ok {
			return nil, fmt.Errorf("anim: frame %d has unknown format %q", i, f.Format)
		}
		srcs[i] = "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
	}
	return srcs, nil
}

// HTML writes the animation as a self-contained HTML fragment with a small player,
// suitable for inline display.
func (a *Animation) HTML(w io.Writer) error {
	if len(a.Frames) == 0 {
		return fmt.Errorf("anim: no frames")
	}
	srcs, err := a.Sources()
	if err != nil {
		return err
	}
	labels := make([]string, len(a.Frames))
	for i, f := range a.Frames {
		labels[i] = f.Title
	}
	return player.Execute(w, struct {
		ID         string
		First      template.URL
		FirstLabel string
		Last       int
		Sources    []string
		Labels     []string
		Interval   int64
		Loop       bool
	}{
		ID:         a.ID,
		First:      template.URL(srcs[0]),
		FirstLabel: labels[0],
		Last:       len(srcs) - 1,
		Sources:    srcs,
		Labels:     labels,
		Interval:   a.Interval.Milliseconds(),
		Loop:       a.Loop,
	})
}

// HTMLString returns the embeddable fragment.
func (a *Animation) HTMLString() (string, error) {
	var buf bytes.Buffer
	if err := a.HTML(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WritePage saves the animation as a stand-alone HTML page.
func (a *Animation) WritePage(fp, title string) error {
	body, err := a.HTMLString()
	if err != nil {
		return err
	}
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("anim.WritePage: %w", err)
	}
	if err := page.Execute(f, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body)}); err != nil {
		f.Close()
		return fmt.Errorf("anim.WritePage: %w", err)
	}
	return f.Close()
}
