package figure

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/tooltip"
)

// TooltipID is the DOM id of the tooltip panel
const TooltipID = "tooltip-container"

var errNoInjectionPoint = errors.New("rendered chart has no injection point")

type seriesStyle struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type pageScript struct {
	ChartID    string            `json:"chartId"`
	TooltipID  string            `json:"tooltipId"`
	HoverURL   string            `json:"hoverUrl"`
	Anchor     string            `json:"anchor"`
	Series     []seriesStyle     `json:"series"`
	PhotoIndex int               `json:"photoIndex"`
	SizeIndex  int               `json:"sizeIndex"`
	ImageStyle map[string]string `json:"imageStyle"`
}

var headTmpl = template.Must(template.New("head").Parse(`{{if .MobileViewport}}<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="mobile-web-app-capable" content="yes">
{{end}}<style>
body { margin: 0; }
.container { position: relative; height: 100vh; }
</style>
`))

var bodyTmpl = template.Must(template.New("body").Parse(`<div id="{{.Script.TooltipID}}" style="{{.PanelStyle}}"></div>
<script type="text/javascript">
(function () {
	var cfg = {{.Script}};
	var chart = echarts.getInstanceByDom(document.getElementById(cfg.chartId));
	var panel = document.getElementById(cfg.tooltipId);
	if (!chart || !panel) { return; }

	chart.setOption({series: cfg.series.map(function (s) {
		return {name: s.name, symbol: s.symbol, symbolSize: function (v) { return v[cfg.sizeIndex]; }};
	})});

	var seq = 0;
	var pointer = {x: 0, y: 0};

	function css(style) {
		return Object.keys(style).sort().map(function (k) { return k + ": " + style[k] + ";"; }).join(" ");
	}

	function apply(state) {
		panel.setAttribute("style", css(state.style));
		if (cfg.anchor === "follow" && state.visible) {
			panel.style.left = (pointer.x + 15) + "px";
			panel.style.top = (pointer.y + 15) + "px";
		}
		panel.innerHTML = "";
		if (!state.content) { return; }
		var img = document.createElement("img");
		img.src = state.content.image_url;
		img.setAttribute("style", css(cfg.imageStyle));
		var caption = document.createElement("p");
		caption.textContent = state.content.caption;
		panel.appendChild(img);
		panel.appendChild(caption);
	}

	// Rejected or failed hovers must not leave a stale panel on screen
	function hide() {
		panel.style.visibility = "hidden";
		panel.innerHTML = "";
	}

	function send(payload) {
		var id = ++seq;
		fetch(cfg.hoverUrl, {
			method: "POST",
			headers: {"Content-Type": "application/json"},
			body: JSON.stringify(payload)
		}).then(function (res) { return res.json(); }).then(function (res) {
			// A newer hover supersedes this one
			if (id !== seq) { return; }
			if (!res.data) { hide(); return; }
			apply(res.data);
		}).catch(function () {
			if (id === seq) { hide(); }
		});
	}

	chart.on("mouseover", function (p) {
		if (p.event && p.event.event) {
			pointer = {x: p.event.event.offsetX, y: p.event.event.offsetY};
		}
		var v = p.value || [];
		send({points: [{
			customdata: [v[cfg.photoIndex], v[cfg.photoIndex + 1]],
			seriesIndex: p.seriesIndex,
			dataIndex: p.dataIndex
		}]});
	});
	chart.on("mouseout", function () { send(null); });
})();
</script>
`))

// Render writes the complete plot page: chart, hidden tooltip panel and the
// script forwarding hover events to the server.
func Render(w io.Writer, p *dataset.Provider, o Options) error {
	var chartHTML bytes.Buffer
	if err := Build(p, o).Render(&chartHTML); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	var head, body bytes.Buffer
	if err := headTmpl.Execute(&head, o); err != nil {
		return fmt.Errorf("failed to render page head: %w", err)
	}
	if err := bodyTmpl.Execute(&body, struct {
		Script     pageScript
		PanelStyle template.CSS
	}{
		Script:     scriptConfig(p, o),
		PanelStyle: template.CSS(tooltip.CSS(tooltip.PanelStyle(o.TooltipAnchor, false))),
	}); err != nil {
		return fmt.Errorf("failed to render tooltip panel: %w", err)
	}

	page, err := inject(chartHTML.Bytes(), head.Bytes(), body.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(page)
	return err
}

func scriptConfig(p *dataset.Provider, o Options) pageScript {
	types := p.PlantTypes()
	series := make([]seriesStyle, len(types))
	for i, t := range types {
		series[i] = seriesStyle{Name: t, Symbol: SymbolFor(i)}
	}
	return pageScript{
		ChartID:    ChartID,
		TooltipID:  TooltipID,
		HoverURL:   o.HoverURL,
		Anchor:     o.TooltipAnchor,
		Series:     series,
		PhotoIndex: ValuePhotoRoute,
		SizeIndex:  ValueSize,
		ImageStyle: tooltip.ImageStyle(),
	}
}

// inject places head before </head> and body before </body>
func inject(page, head, body []byte) ([]byte, error) {
	headEnd := bytes.Index(page, []byte("</head>"))
	bodyEnd := bytes.LastIndex(page, []byte("</body>"))
	if headEnd < 0 || bodyEnd < 0 || bodyEnd < headEnd {
		return nil, errNoInjectionPoint
	}

	out := make([]byte, 0, len(page)+len(head)+len(body))
	out = append(out, page[:headEnd]...)
	out = append(out, head...)
	out = append(out, page[headEnd:bodyEnd]...)
	out = append(out, body...)
	out = append(out, page[bodyEnd:]...)
	return out, nil
}
