package layout_test

import (
	"fmt"

	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/textmetrics"
)

func ExampleEngine_Compute() {
	engine := layout.New(layout.DefaultConfig(), textmetrics.NewEstimator(), nil)
	data := model.Data{
		Title: "Fruit",
		DataPoints: []model.DataPoint{
			{Identity: "apple", Label: "Apples", Color: "#c0392b"},
			{Identity: "pear", Label: "Pears", Color: "#27ae60"},
		},
	}

	l, _, err := engine.Compute(data, model.Viewport{Width: 640, Height: 400},
		layout.NewState(model.PositionTop), true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(l.NumberOfItems, l.Title.Text, len(l.NavigationArrows))
	// Output: 2 Fruit 0
}

func ExampleState_Advance() {
	st := layout.State{StartIndex: 0, WindowSize: 4}
	st = st.Advance(layout.Increase)
	fmt.Println(st.StartIndex)
	st = st.Advance(layout.Decrease)
	fmt.Println(st.StartIndex)
	// Output:
	// 4
	// 0
}
