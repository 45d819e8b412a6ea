package cmd

import (
	"github.com/etnz/divsheet/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var providers = predict.Set{"yahoo", "eodhd"}

// Completion returns the shell completion of the divsheet command line.
//
// Install it with COMP_INSTALL=1 divsheet.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"refresh": {Flags: map[string]complete.Predictor{
				"w":        predict.Files("*.xlsx"),
				"sheet":    predict.Something,
				"provider": providers,
				"dry-run":  predict.Nothing,
			}},
			"init": {
				Flags: map[string]complete.Predictor{
					"currency": predict.Something,
					"sheet":    predict.Something,
				},
				Args: predict.Files("*.xlsx"),
			},
			"columns": {},
			"quote": {
				Flags: map[string]complete.Predictor{
					"currency": predict.Something,
					"provider": providers,
					"cells":    predict.Nothing,
				},
				Args: predict.Something,
			},
			"fx": {
				Flags: map[string]complete.Predictor{"provider": providers},
				Args:  predict.Something,
			},
			"config": {},
			"topic": {
				Flags: map[string]complete.Predictor{"list": predict.Nothing},
				Args:  predict.Set(topics),
			},
		},
	}
}
