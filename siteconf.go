package scribe

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SocialLink is one entry in the social icon strip rendered by the page
// chrome. Icon is a path relative to the site root, typically pointing into
// the copied static files.
type SocialLink struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon"`
}

// ServeConf configures the dev server started by the dev command.
type ServeConf struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (s ServeConf) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type SiteConf struct {
	Author    string `yaml:"author"`
	AuthorURI string `yaml:"author_uri"`
	BaseURL   string `yaml:"base_url"`
	SiteTitle string `yaml:"site_title"`

	// TemplateDir overrides the built-in templates. Files present in the
	// directory win over their embedded counterparts, file by file.
	TemplateDir string `yaml:"template_dir"`

	WritingDir           string `yaml:"writing_dir"`
	WritingFileExtension string `yaml:"writing_file_extension"`
	StaticFilesDir       string `yaml:"static_files_dir"`

	OutDir     string `yaml:"out_dir"`
	TagsOutDir string `yaml:"tags_out_dir"`

	MaxPostsOnIndex         int `yaml:"max_posts_on_index"`
	NumFrequentTags         int `yaml:"num_frequent_tags"`
	MinPostsForFrequentTags int `yaml:"min_posts_for_frequent_tags"`
	MaxFrequentTagAgeMonths int `yaml:"max_frequent_tag_age_months"`

	Social []SocialLink `yaml:"social"`
	Theme  Theme        `yaml:"theme"`
	Serve  ServeConf    `yaml:"serve"`
}

// ReadConf loads a site configuration from a YAML file, fills in defaults,
// and resolves relative paths against the config file's directory so the
// executable can be called from anywhere.
func ReadConf(fileName string) (*SiteConf, error) {
	rawConf, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("read config %v: %w", fileName, err)
	}

	conf := SiteConf{}
	if err = yaml.Unmarshal(rawConf, &conf); err != nil {
		return nil, fmt.Errorf("parse config %v: %w", fileName, err)
	}

	if conf.WritingDir == "" {
		return nil, fmt.Errorf("config %v: writing_dir is required", fileName)
	}
	if conf.OutDir == "" {
		return nil, fmt.Errorf("config %v: out_dir is required", fileName)
	}

	// Populate with defaults
	if conf.WritingFileExtension == "" {
		conf.WritingFileExtension = ".md"
	}
	if conf.StaticFilesDir == "" {
		conf.StaticFilesDir = filepath.Join(conf.WritingDir, "static")
	}
	if conf.TagsOutDir == "" {
		conf.TagsOutDir = "tags"
	}
	if conf.MaxPostsOnIndex == 0 {
		conf.MaxPostsOnIndex = 10
	}
	if conf.NumFrequentTags == 0 {
		conf.NumFrequentTags = 6
	}
	if conf.MinPostsForFrequentTags == 0 {
		conf.MinPostsForFrequentTags = 2
	}
	if conf.MaxFrequentTagAgeMonths == 0 {
		conf.MaxFrequentTagAgeMonths = 24
	}
	if conf.Serve.Host == "" {
		conf.Serve.Host = "localhost"
	}
	if conf.Serve.Port == 0 {
		conf.Serve.Port = 9999
	}
	conf.Theme = conf.Theme.withDefaults()

	// Normalize relative paths because the executable can be called from anywhere
	baseDir := filepath.Dir(fileName)
	conf.WritingDir = normalizePath(conf.WritingDir, baseDir)
	conf.StaticFilesDir = normalizePath(conf.StaticFilesDir, baseDir)
	conf.OutDir = normalizePath(conf.OutDir, baseDir)
	if conf.TemplateDir != "" {
		conf.TemplateDir = normalizePath(conf.TemplateDir, baseDir)
		if conf.TemplateDir, err = filepath.Abs(conf.TemplateDir); err != nil {
			return nil, err
		}
	}

	return &conf, nil
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path)
	}
	return path
}
