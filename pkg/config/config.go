package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stackb/javimp/pkg/classdir"
	"github.com/stackb/javimp/pkg/procutil"
)

const (
	// DefaultConfigName is the name of the optional config file kept next to
	// the executable.
	DefaultConfigName = "javimp.yaml"
	// DefaultTimeout bounds each remote fetch in update mode.
	DefaultTimeout = 60 * time.Second
)

const (
	ConfigEnv       procutil.EnvVar = "JAVIMP_CONFIG"
	ClassListEnv    procutil.EnvVar = "JAVIMP_CLASS_LIST"
	JavacEnv        procutil.EnvVar = "JAVIMP_JAVAC"
	OfflineEnv      procutil.EnvVar = "JAVIMP_OFFLINE"
	DebugEnv        procutil.EnvVar = "JAVIMP_DEBUG"
	AfterPackageEnv procutil.EnvVar = "JAVIMP_AFTER_PACKAGE"
	TimeoutEnv      procutil.EnvVar = "JAVIMP_TIMEOUT"
)

// Source describes an HTML page listing classes.  Links are selected either
// by their target attribute or by the CSS class of an enclosing element.
type Source struct {
	Name         string `yaml:"name"`
	URL          string `yaml:"url"`
	AnchorTarget string `yaml:"anchorTarget,omitempty"`
	ParentClass  string `yaml:"parentClass,omitempty"`
	TrimPrefix   string `yaml:"trimPrefix,omitempty"`
}

// Config is the runtime configuration of javimp.
type Config struct {
	// ClassList is the path or URL of the persisted class list.
	ClassList string `yaml:"classList"`
	// Javac is the compiler used to find missing symbols.
	Javac     string   `yaml:"javac"`
	JavacArgs []string `yaml:"javacArgs,omitempty"`
	// Offline disables the network class sources.
	Offline bool `yaml:"offline"`
	// AfterPackage inserts new imports after the package declaration.
	AfterPackage bool          `yaml:"afterPackage"`
	Debug        bool          `yaml:"debug"`
	Timeout      time.Duration `yaml:"timeout"`
	Sources      []*Source     `yaml:"sources"`
	// Jars are glob patterns of local jar files to index.
	Jars []string `yaml:"jars,omitempty"`
}

// DefaultSources lists the javadoc class index of the Java 7 standard
// library and the Android reference class index.
func DefaultSources() []*Source {
	return []*Source{
		{
			Name:         "java",
			URL:          "http://docs.oracle.com/javase/7/docs/api/allclasses-frame.html",
			AnchorTarget: "classFrame",
		},
		{
			Name:        "android",
			URL:         "https://developer.android.com/reference/classes.html",
			ParentClass: "jd-linkcol",
			TrimPrefix:  "https://developer.android.com/reference/",
		},
	}
}

// Default returns the configuration used when nothing is overridden.  The
// class list lives in baseDir.
func Default(baseDir string) *Config {
	return &Config{
		ClassList: filepath.Join(baseDir, classdir.DefaultListName),
		Javac:     "javac",
		Timeout:   DefaultTimeout,
		Sources:   DefaultSources(),
	}
}

// Load builds the configuration for an executable located in baseDir:
// defaults, then the YAML file (JAVIMP_CONFIG, or javimp.yaml in baseDir if
// present), then environment variables.
func Load(baseDir string) (*Config, error) {
	cfg := Default(baseDir)

	filename := procutil.LookupStringEnv(ConfigEnv, "")
	explicit := filename != ""
	if !explicit {
		filename = filepath.Join(baseDir, DefaultConfigName)
	}
	if err := cfg.ReadFile(filename); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile merges the YAML file into c.  A relative classList is resolved
// against the directory of the file.
func (c *Config) ReadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read config %s: %w", filename, err)
	}
	return c.Parse(data, filepath.Dir(filename))
}

// Parse merges YAML data into c.
func (c *Config) Parse(data []byte, dir string) error {
	before := c.ClassList
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if c.ClassList != before && !filepath.IsAbs(c.ClassList) && !strings.Contains(c.ClassList, "://") {
		c.ClassList = filepath.Join(dir, c.ClassList)
	}
	return nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	c.ClassList = procutil.LookupStringEnv(ClassListEnv, c.ClassList)
	c.Javac = procutil.LookupStringEnv(JavacEnv, c.Javac)
	c.Offline = procutil.LookupBoolEnv(OfflineEnv, c.Offline)
	c.Debug = procutil.LookupBoolEnv(DebugEnv, c.Debug)
	c.AfterPackage = procutil.LookupBoolEnv(AfterPackageEnv, c.AfterPackage)
	c.Timeout = procutil.LookupDurationEnv(TimeoutEnv, c.Timeout)
}

// Validate checks the configuration for required values.
func (c *Config) Validate() error {
	if c.ClassList == "" {
		return fmt.Errorf("classList must not be empty")
	}
	if c.Javac == "" {
		return fmt.Errorf("javac must not be empty")
	}
	for i, src := range c.Sources {
		if src.URL == "" {
			return fmt.Errorf("sources[%d] (%s): url must not be empty", i, src.Name)
		}
		if src.AnchorTarget == "" && src.ParentClass == "" {
			return fmt.Errorf("sources[%d] (%s): one of anchorTarget or parentClass is required", i, src.Name)
		}
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}
