package skills

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CodeCanna/pipali/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ErrAlreadyExists is returned when the target skill directory already exists.
var ErrAlreadyExists = errors.New("skill directory already exists")

// ProgressFunc receives a human-readable message as each part of a skill is created.
type ProgressFunc func(message string)

// resource describes one example file scaffolded into a skill subdirectory.
type resource struct {
	dir        string
	file       string
	template   string
	executable bool
}

// resources lists the example files created for every new skill, in creation order.
var resources = []resource{
	{dir: "scripts", file: "example.py", template: "example.py.tmpl", executable: true},
	{dir: "references", file: "reference.md", template: "reference.md.tmpl"},
	{dir: "assets", file: "example.txt", template: "asset.txt.tmpl"},
}

// Scaffolder creates new skill directories from the built-in template
type Scaffolder struct {
	root     string
	progress ProgressFunc
}

// Option is a function that configures a Scaffolder
type Option func(*Scaffolder) error

// WithRoot sets a custom skills root directory
func WithRoot(root string) Option {
	return func(s *Scaffolder) error {
		if root == "" {
			return errors.New("skills root must not be empty")
		}
		s.root = root
		return nil
	}
}

// WithProgress sets a callback that receives progress messages as skill files are created
func WithProgress(fn ProgressFunc) Option {
	return func(s *Scaffolder) error {
		s.progress = fn
		return nil
	}
}

// NewScaffolder creates a new skill scaffolder. Unless WithRoot is given, the
// skills root is resolved from configuration, falling back to ~/.pipali/skills.
func NewScaffolder(opts ...Option) (*Scaffolder, error) {
	s := &Scaffolder{
		progress: func(string) {},
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.root == "" {
		root, err := ResolveRoot()
		if err != nil {
			return nil, err
		}
		s.root = root
	}

	return s, nil
}

// Root returns the skills root directory new skills are created under.
func (s *Scaffolder) Root() string {
	return s.root
}

// DefaultRoot returns the default skills root under the user's home directory.
func DefaultRoot() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(homeDir, ".pipali", "skills"), nil
}

// ResolveRoot returns the configured skills root. The skills_dir config key
// (PIPALI_SKILLS_DIR environment variable) takes precedence over the default.
func ResolveRoot() (string, error) {
	if dir := viper.GetString("skills_dir"); dir != "" {
		return dir, nil
	}
	return DefaultRoot()
}

// Initialize creates the directory layout for a new skill under the skills
// root and fills it with template content. The name is validated before any
// path is constructed, and the skill directory is created exclusively so two
// concurrent runs cannot both succeed for the same name. Creation is not
// transactional: on failure, files created so far are left in place.
func (s *Scaffolder) Initialize(ctx context.Context, name string) (*Skill, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	skill := &Skill{
		Name:      name,
		Title:     titleFromName(name),
		Directory: filepath.Join(s.root, name),
	}
	log := logger.G(ctx).WithField("skill", name)

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create skills root directory")
	}

	if err := os.Mkdir(skill.Directory, 0o755); err != nil {
		if os.IsExist(err) {
			return nil, errors.Wrap(ErrAlreadyExists, skill.Directory)
		}
		return nil, errors.Wrap(err, "failed to create skill directory")
	}
	log.WithField("directory", skill.Directory).Debug("Created skill directory")
	s.progress(fmt.Sprintf("Created skill directory: %s", skill.Directory))

	content, err := renderTemplate("skill.md.tmpl", templateData{Name: skill.Name, Title: skill.Title})
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(skill.Directory, skillFileName), content, 0o644); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", skillFileName)
	}
	s.progress("Created " + skillFileName)

	for _, res := range resources {
		if err := s.createResource(skill, res); err != nil {
			return nil, err
		}
		s.progress(fmt.Sprintf("Created %s/%s", res.dir, res.file))
	}

	log.WithField("directory", skill.Directory).Debug("Skill initialized")
	return skill, nil
}

// createResource creates one resource subdirectory with its example file.
func (s *Scaffolder) createResource(skill *Skill, res resource) error {
	dir := filepath.Join(skill.Directory, res.dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s directory", res.dir)
	}

	content, err := renderTemplate(res.template, templateData{Name: skill.Name, Title: skill.Title})
	if err != nil {
		return err
	}

	path := filepath.Join(dir, res.file)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s/%s", res.dir, res.file)
	}

	if res.executable {
		// chmod explicitly so the umask cannot strip the execute bits
		if err := os.Chmod(path, 0o755); err != nil {
			return errors.Wrapf(err, "failed to mark %s/%s executable", res.dir, res.file)
		}
	}

	return nil
}
