package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anchorhq/anchor/internal/markdown"
	"github.com/anchorhq/anchor/internal/model"
)

// LibraryService serves the curated coping-strategy library from
// markdown files under CONTENT_PATH/strategies, one file per strategy,
// with title/category/summary/tags in the frontmatter.
type LibraryService struct {
	parser      *markdown.Parser
	contentPath string
}

func NewLibraryService(contentPath string) *LibraryService {
	return &LibraryService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
	}
}

func (s *LibraryService) Strategies() ([]*model.LibraryStrategy, error) {
	pattern := filepath.Join(s.contentPath, "strategies", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var strategies []*model.LibraryStrategy
	for _, file := range files {
		slug := strings.TrimSuffix(filepath.Base(file), ".md")
		strategy, err := s.Strategy(slug)
		if err != nil {
			continue
		}
		strategies = append(strategies, strategy)
	}

	sort.Slice(strategies, func(i, j int) bool {
		if strategies[i].Category != strategies[j].Category {
			return strategies[i].Category < strategies[j].Category
		}
		return strategies[i].Title < strategies[j].Title
	})

	return strategies, nil
}

func (s *LibraryService) Strategy(slug string) (*model.LibraryStrategy, error) {
	path := filepath.Join(s.contentPath, "strategies", slug+".md")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("strategy not found: %s", slug)
	}

	htmlContent, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, err
	}

	strategy := &model.LibraryStrategy{
		Slug:        slug,
		HTMLContent: string(htmlContent),
	}

	title, ok := meta["title"].(string)
	if ok {
		strategy.Title = title
	}

	category, ok := meta["category"].(string)
	if ok {
		strategy.Category = category
	}

	summary, ok := meta["summary"].(string)
	if ok {
		strategy.Summary = summary
	}

	tags, ok := meta["tags"].([]any)
	if ok {
		for _, tag := range tags {
			tagStr, ok := tag.(string)
			if ok {
				strategy.Tags = append(strategy.Tags, tagStr)
			}
		}
	}

	return strategy, nil
}

func (s *LibraryService) StrategiesByCategory(category string) ([]*model.LibraryStrategy, error) {
	all, err := s.Strategies()
	if err != nil {
		return nil, err
	}

	var strategies []*model.LibraryStrategy
	for _, strategy := range all {
		if strings.EqualFold(strategy.Category, category) {
			strategies = append(strategies, strategy)
		}
	}

	return strategies, nil
}
