package cmd

import (
	"github.com/etnz/txf/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion requests for the program name.
// It returns only if the program is not run by the shell for completion.
//
// To install the completion: COMP_INSTALL=1 eac2txf
func Complete(name string) {
	topics, _ := docs.GetAllTopics()
	statements := predict.Files("*")

	cmd := &complete.Command{
		Sub: map[string]*complete.Command{
			"convert": {
				Flags: map[string]complete.Predictor{
					"text":        predict.Nothing,
					"xlsx":        predict.Nothing,
					"k":           predict.Nothing,
					"attribution": predict.Something,
				},
				Args: statements,
			},
			"summary": {
				Flags: map[string]complete.Predictor{
					"text": predict.Nothing,
					"k":    predict.Nothing,
					"md":   predict.Nothing,
				},
				Args: statements,
			},
			"text": {
				Flags: map[string]complete.Predictor{"text": predict.Nothing, "n": predict.Nothing},
				Args:  statements,
			},
			"topic": {Args: predict.Set(topics)},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
	}
	cmd.Complete(name)
}
