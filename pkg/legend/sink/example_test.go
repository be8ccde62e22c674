package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/legend/sink"
	"github.com/matzehuels/legendkit/pkg/textmetrics"
)

func ExampleRenderSVG() {
	data := model.Data{DataPoints: []model.DataPoint{
		{Identity: "a", Label: "Apples", Color: "#c0392b"},
		{Identity: "b", Label: "Pears", Color: "#27ae60", Marker: "square"},
	}}
	engine := layout.New(layout.DefaultConfig(), textmetrics.NewEstimator(), nil)
	l, _, err := engine.Compute(data, model.Viewport{Width: 400, Height: 300}, layout.NewState(model.PositionTop), true)
	if err != nil {
		fmt.Println(err)
		return
	}

	svg := string(sink.RenderSVG(l, data))
	fmt.Println("SVG starts with:", svg[:4])
	fmt.Println("Items:", strings.Count(svg, `class="legendItem"`))
	// Output:
	// SVG starts with: <svg
	// Items: 2
}
