package cmd

import (
	"flag"

	"github.com/etnz/networth"
	"github.com/etnz/networth/docs"
	"github.com/etnz/networth/settings"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the application, with the global flags of
// root and every command in Commands.
func Completion(root *flag.FlagSet) *complete.Command {
	c := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(root),
	}
	for _, sub := range Commands {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		c.Sub[sub.Name()] = &complete.Command{
			Flags: flagPredictors(fs),
			Args:  argsPredictor(sub.Name()),
		}
	}
	return c
}

func windowLabels() predict.Set {
	var labels predict.Set
	for _, w := range networth.Windows() {
		labels = append(labels, w.String())
	}
	return labels
}

// flagPredictors predicts the values of the flags known to the application, and accepts
// anything for the others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			flags[f.Name] = windowLabels()
		case "o":
			flags[f.Name] = predict.Files("*.html")
		case "settings-file":
			flags[f.Name] = predict.Files("*.yaml")
		case "v":
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func argsPredictor(command string) complete.Predictor {
	switch command {
	case "settings":
		keys := predict.Set{"true", "false"}
		for k := range settings.Defaults {
			keys = append(keys, k)
		}
		return keys
	case "topic":
		topics, err := docs.GetAllTopics()
		if err != nil {
			return predict.Nothing
		}
		return predict.Set(append(topics, "readme"))
	}
	return predict.Nothing
}
