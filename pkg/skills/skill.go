// Package skills provides skill scaffolding: creating new skill directories
// from a built-in template. Skills are packaged as directories containing a
// SKILL.md file with YAML frontmatter describing the skill's purpose, plus
// scripts/, references/, and assets/ resource directories.
package skills

import "strings"

const skillFileName = "SKILL.md"

// Skill represents a scaffolded skill
type Skill struct {
	Name      string // Hyphen-case name from the CLI, also the directory name
	Title     string // Human-readable title derived from the name
	Directory string // Full path to the skill directory
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// titleFromName converts a hyphen-case skill name to a spaced Title Case
// title, e.g. "my-skill" becomes "My Skill". Words starting with a digit
// are kept as-is.
func titleFromName(name string) string {
	words := strings.Split(name, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
