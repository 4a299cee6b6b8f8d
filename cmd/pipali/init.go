package main

import (
	"context"
	"fmt"
	"os"

	"github.com/CodeCanna/pipali/pkg/logger"
	"github.com/CodeCanna/pipali/pkg/presenter"
	"github.com/CodeCanna/pipali/pkg/skills"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <skill-name>",
	Short: "Create a new skill directory from the built-in template",
	Long: `Create a new skill directory under the skills root, containing a template
SKILL.md plus scripts/, references/, and assets/ example files.

Skill name requirements:
  - Hyphen-case (e.g., 'my-skill')
  - Lowercase letters, digits, and hyphens only
  - Max 64 characters

Example:
  pipali init my-new-skill
  pipali my-new-skill
  pipali init my-new-skill --skills-dir /tmp/skills`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		name := args[0]

		presenter.Info(fmt.Sprintf("Initializing skill: %s", name))
		presenter.Info("")

		skill, err := initSkill(ctx, name)
		if err != nil {
			presenter.Error(err, "Failed to initialize skill")
			logger.G(ctx).WithError(err).WithField("skill", name).Error("Skill initialization failed")
			os.Exit(1)
		}

		presenter.Info("")
		presenter.Success(fmt.Sprintf("Skill '%s' initialized at %s", skill.Name, skill.Directory))
		presenter.Info("")
		presenter.Info("Next steps:")
		presenter.Info("1. Edit SKILL.md to complete the TODO items")
		presenter.Info("2. Customize or delete the example files in scripts/, references/, and assets/")
		logger.G(ctx).WithField("skill", skill.Name).WithField("directory", skill.Directory).Info("Skill initialized successfully")
	},
}

func initSkill(ctx context.Context, name string) (*skills.Skill, error) {
	scaffolder, err := skills.NewScaffolder(skills.WithProgress(presenter.Info))
	if err != nil {
		return nil, err
	}
	return scaffolder.Initialize(ctx, name)
}
