package acceptance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSkillCommand(t *testing.T) {
	skillsDir := t.TempDir()

	cmd := pipaliCommand(t, "init", "acceptance-skill")
	cmd.Env = append(os.Environ(), "PIPALI_SKILLS_DIR="+skillsDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "init command failed: %s", string(output))

	outputStr := string(output)
	assert.Contains(t, outputStr, "Initializing skill: acceptance-skill")
	assert.Contains(t, outputStr, "Created SKILL.md")
	assert.Contains(t, outputStr, "Next steps:")

	skillDir := filepath.Join(skillsDir, "acceptance-skill")
	for _, path := range []string{
		"SKILL.md",
		"scripts/example.py",
		"references/reference.md",
		"assets/example.txt",
	} {
		_, err := os.Stat(filepath.Join(skillDir, filepath.FromSlash(path)))
		assert.NoError(t, err, "expected %s to exist", path)
	}

	content, err := os.ReadFile(filepath.Join(skillDir, "SKILL.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "name: acceptance-skill")
	assert.Contains(t, string(content), "# Acceptance Skill")

	info, err := os.Stat(filepath.Join(skillDir, "scripts", "example.py"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestInitSkillCommandForwardedFromRoot(t *testing.T) {
	skillsDir := t.TempDir()

	// A bare skill name without the init subcommand should also scaffold
	cmd := pipaliCommand(t, "forwarded-skill")
	cmd.Env = append(os.Environ(), "PIPALI_SKILLS_DIR="+skillsDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "forwarded command failed: %s", string(output))

	_, err = os.Stat(filepath.Join(skillsDir, "forwarded-skill", "SKILL.md"))
	assert.NoError(t, err)
}

func TestInitSkillCommandAlreadyExists(t *testing.T) {
	skillsDir := t.TempDir()
	env := append(os.Environ(), "PIPALI_SKILLS_DIR="+skillsDir)

	cmd := pipaliCommand(t, "init", "dup-skill")
	cmd.Env = env
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "first init failed: %s", string(output))

	cmd = pipaliCommand(t, "init", "dup-skill")
	cmd.Env = env
	output, err = cmd.CombinedOutput()
	require.Error(t, err, "second init should fail")
	assert.Contains(t, string(output), "already exists")
}

func TestInitSkillCommandInvalidName(t *testing.T) {
	skillsDir := t.TempDir()

	cmd := pipaliCommand(t, "init", "Invalid_Name")
	cmd.Env = append(os.Environ(), "PIPALI_SKILLS_DIR="+skillsDir)
	output, err := cmd.CombinedOutput()
	require.Error(t, err, "invalid name should fail")
	assert.Contains(t, string(output), "hyphen-case")

	entries, err := os.ReadDir(skillsDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "invalid name must not create any files")
}

func TestInitSkillCommandMissingArgument(t *testing.T) {
	cmd := pipaliCommand(t, "init")
	output, err := cmd.CombinedOutput()
	require.Error(t, err, "missing skill name should fail")
	assert.Contains(t, string(output), "accepts 1 arg")
}

func TestRootCommandNoArguments(t *testing.T) {
	skillsDir := t.TempDir()

	cmd := pipaliCommand(t)
	cmd.Env = append(os.Environ(), "PIPALI_SKILLS_DIR="+skillsDir)
	output, err := cmd.CombinedOutput()
	require.Error(t, err, "bare invocation should exit non-zero")

	outputStr := string(output)
	assert.Contains(t, outputStr, "Usage:")
	assert.Contains(t, outputStr, "Skill name requirements")
	assert.Contains(t, outputStr, "pipali my-new-skill", "help should show an example invocation")

	entries, err := os.ReadDir(skillsDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "help-only invocation must not write anything")
}
