package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeCanna/pipali/pkg/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSkill(t *testing.T) {
	skillsDir := t.TempDir()
	t.Setenv("PIPALI_SKILLS_DIR", skillsDir)

	skill, err := initSkill(context.Background(), "cmd-test-skill")
	require.NoError(t, err)

	assert.Equal(t, "cmd-test-skill", skill.Name)
	assert.Equal(t, filepath.Join(skillsDir, "cmd-test-skill"), skill.Directory)

	for _, path := range []string{
		"SKILL.md",
		"scripts/example.py",
		"references/reference.md",
		"assets/example.txt",
	} {
		_, err := os.Stat(filepath.Join(skill.Directory, filepath.FromSlash(path)))
		assert.NoError(t, err, "expected %s to exist", path)
	}
}

func TestInitSkillAlreadyExists(t *testing.T) {
	t.Setenv("PIPALI_SKILLS_DIR", t.TempDir())

	_, err := initSkill(context.Background(), "dup-skill")
	require.NoError(t, err)

	_, err = initSkill(context.Background(), "dup-skill")
	assert.ErrorIs(t, err, skills.ErrAlreadyExists)
}

func TestInitSkillInvalidName(t *testing.T) {
	skillsDir := t.TempDir()
	t.Setenv("PIPALI_SKILLS_DIR", skillsDir)

	_, err := initSkill(context.Background(), "Not_Valid")
	assert.ErrorIs(t, err, skills.ErrInvalidName)

	entries, err := os.ReadDir(skillsDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected names must not create anything")
}

func TestInitCmdArgs(t *testing.T) {
	assert.Error(t, initCmd.Args(initCmd, []string{}), "missing skill name should be rejected")
	assert.NoError(t, initCmd.Args(initCmd, []string{"my-skill"}))
	assert.Error(t, initCmd.Args(initCmd, []string{"one", "two"}), "extra arguments should be rejected")
}
