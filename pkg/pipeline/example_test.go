package pipeline_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/pipeline"
)

func ExampleRunner_Execute() {
	runner := pipeline.NewRunner(nil, nil, nil, nil)
	defer runner.Close()

	data := model.Data{DataPoints: []model.DataPoint{
		{Identity: "a", Label: "Apples", Color: "#c0392b"},
		{Identity: "b", Label: "Pears", Color: "#27ae60"},
	}}
	res, err := runner.Execute(context.Background(), data, pipeline.Options{
		Position: model.PositionBottom,
		Formats:  []string{pipeline.FormatJSON},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Layout.NumberOfItems, res.Layout.Position, len(res.Artifacts["json"]) > 0)
	// Output: 2 Bottom true
}
