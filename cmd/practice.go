package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/exgen/internal/app"
	"github.com/abhisek/exgen/internal/engine"
	"github.com/abhisek/exgen/internal/screens/home"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, _ := cmd.Flags().GetInt("questions")
		if questions == 0 {
			questions = cfg.Practice.Questions
		}

		d, reg, err := newDispatcher(runSeed())
		if err != nil {
			return err
		}

		return app.Run(app.Options{
			Source: d,
			Topics: homeTopics(d, reg),
			Limit:  questions,
			Window: cfg.Practice.RecentWindow,
		})
	},
}

func init() {
	practiceCmd.Flags().IntP("questions", "q", 0, "Questions per session (default from config)")
}

// homeTopics lists the enabled topics for the topic menu.
func homeTopics(d *engine.Dispatcher, reg *engine.Registry) []home.Topic {
	var topics []home.Topic
	for _, name := range reg.Topics() {
		keys, err := d.Difficulties(name)
		if err != nil {
			warn("topic %s unavailable: %v", name, err)
			continue
		}
		topics = append(topics, home.Topic{
			Name:    name,
			Aliases: reg.Aliases(name),
			Keys:    keys,
		})
	}
	return topics
}
